package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/cardnest/payment-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpiryDate(t *testing.T) {
	now := time.Now().UTC()

	t.Run("accepts a future expiry", func(t *testing.T) {
		expiry, err := domain.NewExpiryDate(12, now.Year()+1)

		require.NoError(t, err)
		assert.Equal(t, 12, expiry.Month())
		assert.Equal(t, now.Year()+1, expiry.Year())
	})

	t.Run("accepts the current month", func(t *testing.T) {
		_, err := domain.NewExpiryDate(int(now.Month()), now.Year())

		assert.NoError(t, err)
	})

	t.Run("rejects out-of-range months", func(t *testing.T) {
		for _, month := range []int{0, 13, -1} {
			_, err := domain.NewExpiryDate(month, now.Year()+1)

			assert.True(t, domain.IsErrorCode(err, "expiry_month.invalid"), "month %d", month)
		}
	})

	t.Run("rejects a past year", func(t *testing.T) {
		_, err := domain.NewExpiryDate(12, now.Year()-1)

		assert.True(t, domain.IsErrorCode(err, "expiry_year.expired"))
	})

	t.Run("rejects a past month in the current year", func(t *testing.T) {
		if now.Month() == time.January {
			t.Skip("no past month exists within the current year in January")
		}

		_, err := domain.NewExpiryDate(int(now.Month())-1, now.Year())

		assert.True(t, domain.IsErrorCode(err, "expiry_date.expired"))
	})

	t.Run("rejects a year too far in the future", func(t *testing.T) {
		_, err := domain.NewExpiryDate(12, now.Year()+25)

		assert.True(t, domain.IsErrorCode(err, "expiry_year.invalid"))
	})
}

func TestExpiryDate_Format(t *testing.T) {
	year := time.Now().UTC().Year() + 1
	expiry, err := domain.NewExpiryDate(3, year)
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("03/%d", year), expiry.Format())
	assert.Equal(t, expiry.Format(), expiry.String())
}
