package memstore_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cardnest/payment-gateway/internal/application"
	"github.com/cardnest/payment-gateway/internal/domain"
	"github.com/cardnest/payment-gateway/internal/infrastructure/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStore_AddAndGet(t *testing.T) {
	store := memstore.NewPaymentStore()
	payment := declinedPayment(t)

	require.NoError(t, store.Add(payment))

	got, err := store.Get(payment.ID())
	require.NoError(t, err)
	assert.Same(t, payment, got)
}

func TestPaymentStore_GetUnknownID(t *testing.T) {
	store := memstore.NewPaymentStore()

	_, err := store.Get(domain.NewPaymentID())

	assert.True(t, errors.Is(err, application.ErrPaymentNotFound))
}

func TestPaymentStore_AddDuplicate(t *testing.T) {
	store := memstore.NewPaymentStore()
	payment := declinedPayment(t)

	require.NoError(t, store.Add(payment))

	err := store.Add(payment)
	assert.True(t, errors.Is(err, application.ErrDuplicatePayment))
}

func TestPaymentStore_ConcurrentAdds(t *testing.T) {
	store := memstore.NewPaymentStore()

	const workers = 50
	payments := make([]*domain.Payment, workers)
	for i := range payments {
		payments[i] = declinedPayment(t)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(p *domain.Payment) {
			defer wg.Done()
			assert.NoError(t, store.Add(p))

			// An add must be immediately visible to a subsequent get.
			got, err := store.Get(p.ID())
			assert.NoError(t, err)
			assert.Same(t, p, got)
		}(payments[i])
	}
	wg.Wait()
}

func TestPaymentStore_ConcurrentDuplicateAdds(t *testing.T) {
	store := memstore.NewPaymentStore()
	payment := declinedPayment(t)

	const workers = 20
	results := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- store.Add(payment)
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, failed int
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			failed++
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one concurrent add may win")
	assert.Equal(t, workers-1, failed)
}

func declinedPayment(t *testing.T) *domain.Payment {
	t.Helper()

	card, err := domain.NewCardNumber("2222405343248877")
	require.NoError(t, err)

	expiry, err := domain.NewExpiryDate(12, time.Now().UTC().Year()+1)
	require.NoError(t, err)

	currency, err := domain.NewCurrency("USD")
	require.NoError(t, err)

	money, err := domain.NewMoney(1000, currency)
	require.NoError(t, err)

	payment, err := domain.NewDeclinedPayment(domain.NewPaymentID(), card, expiry, money)
	require.NoError(t, err)

	return payment
}
