package domain_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cardnest/payment-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCardNumber(t *testing.T) {
	t.Run("accepts valid card numbers", func(t *testing.T) {
		valid := []string{
			"4532015112830366",
			"5425233430109903",
			"378282246310005",
			"2222405343248877",
		}

		for _, number := range valid {
			card, err := domain.NewCardNumber(number)

			require.NoError(t, err, "card %s", number)
			assert.Equal(t, number, card.Value())
		}
	})

	t.Run("strips spaces and hyphens", func(t *testing.T) {
		card, err := domain.NewCardNumber("2222 4053-4324 8877")

		require.NoError(t, err)
		assert.Equal(t, "2222405343248877", card.Value())
	})

	t.Run("rejects blank input", func(t *testing.T) {
		for _, raw := range []string{"", "   "} {
			_, err := domain.NewCardNumber(raw)

			assert.True(t, domain.IsErrorCode(err, "card_number.required"))
		}
	})

	t.Run("rejects non-digit characters before checking length", func(t *testing.T) {
		// Too short as well, but format is checked first.
		_, err := domain.NewCardNumber("4111a")

		assert.True(t, domain.IsErrorCode(err, "card_number.invalid_format"))
	})

	t.Run("rejects numbers outside 14-19 digits", func(t *testing.T) {
		// 13-digit number that passes Luhn; length is checked before checksum.
		_, err := domain.NewCardNumber("4111111111111")
		assert.True(t, domain.IsErrorCode(err, "card_number.invalid_length"))

		_, err = domain.NewCardNumber(strings.Repeat("1", 20))
		assert.True(t, domain.IsErrorCode(err, "card_number.invalid_length"))
	})

	t.Run("rejects failed checksums", func(t *testing.T) {
		invalid := []string{
			"4532015112830367",
			"1234567890123456",
		}

		for _, number := range invalid {
			_, err := domain.NewCardNumber(number)

			assert.True(t, domain.IsErrorCode(err, "card_number.invalid_checksum"), "card %s", number)
		}
	})
}

func TestCardNumber_Masking(t *testing.T) {
	t.Run("masks everything but the last four digits", func(t *testing.T) {
		card, err := domain.NewCardNumber("4532015112830366")
		require.NoError(t, err)

		assert.Equal(t, "0366", card.LastFour())
		assert.Equal(t, "************0366", card.Masked())
	})

	t.Run("mask length follows the card length", func(t *testing.T) {
		card, err := domain.NewCardNumber("378282246310005")
		require.NoError(t, err)

		assert.Equal(t, "***********0005", card.Masked())
	})

	t.Run("formatting never exposes the full number", func(t *testing.T) {
		card, err := domain.NewCardNumber("4532015112830366")
		require.NoError(t, err)

		assert.Equal(t, card.Masked(), fmt.Sprintf("%v", card))
	})
}
