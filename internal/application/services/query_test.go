package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/cardnest/payment-gateway/internal/application"
	"github.com/cardnest/payment-gateway/internal/application/services"
	"github.com/cardnest/payment-gateway/internal/domain"
	"github.com/cardnest/payment-gateway/internal/infrastructure/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedAuthorizedPayment(t *testing.T, store *memstore.PaymentStore) *domain.Payment {
	t.Helper()

	card, err := domain.NewCardNumber("2222405343248877")
	require.NoError(t, err)

	expiry, err := domain.NewExpiryDate(12, time.Now().UTC().Year()+1)
	require.NoError(t, err)

	currency, err := domain.NewCurrency("GBP")
	require.NoError(t, err)

	money, err := domain.NewMoney(2500, currency)
	require.NoError(t, err)

	payment, err := domain.NewAuthorizedPayment(domain.NewPaymentID(), card, expiry, money, "auth-456")
	require.NoError(t, err)

	require.NoError(t, store.Add(payment))
	return payment
}

func TestQueryService_GetPayment(t *testing.T) {
	t.Run("projects a stored payment without the authorization code", func(t *testing.T) {
		store := memstore.NewPaymentStore()
		service := services.NewQueryService(store)
		payment := storedAuthorizedPayment(t, store)

		result, err := service.GetPayment(context.Background(), payment.ID().String())

		require.NoError(t, err)
		assert.Equal(t, payment.ID().String(), result.ID)
		assert.Equal(t, string(domain.StatusAuthorized), result.Status)
		assert.Equal(t, "8877", result.LastFourCardDigits)
		assert.Equal(t, 12, result.ExpiryMonth)
		assert.Equal(t, "GBP", result.Currency)
		assert.Equal(t, int64(2500), result.Amount)
		assert.Nil(t, result.AuthorizationCode, "lookups never expose the authorization code")
	})

	t.Run("repeated lookups return equal projections", func(t *testing.T) {
		store := memstore.NewPaymentStore()
		service := services.NewQueryService(store)
		payment := storedAuthorizedPayment(t, store)

		first, err := service.GetPayment(context.Background(), payment.ID().String())
		require.NoError(t, err)

		second, err := service.GetPayment(context.Background(), payment.ID().String())
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("rejects malformed identifiers as validation failures", func(t *testing.T) {
		service := services.NewQueryService(memstore.NewPaymentStore())

		_, err := service.GetPayment(context.Background(), "not-a-uuid")

		assert.True(t, domain.IsErrorCode(err, "payment_id.invalid"))
	})

	t.Run("reports unknown identifiers as not found", func(t *testing.T) {
		service := services.NewQueryService(memstore.NewPaymentStore())

		_, err := service.GetPayment(context.Background(), domain.NewPaymentID().String())

		svcErr, ok := application.IsServiceError(err)
		require.True(t, ok)
		assert.Equal(t, application.ErrCodePaymentNotFound, svcErr.Code)
		assert.Equal(t, 404, svcErr.HTTPStatus)
	})
}
