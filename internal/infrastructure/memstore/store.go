// Package memstore keeps terminal payments in a concurrent in-memory map.
package memstore

import (
	"fmt"
	"sync"

	"github.com/cardnest/payment-gateway/internal/application"
	"github.com/cardnest/payment-gateway/internal/domain"
)

// PaymentStore is an add-once concurrent store keyed by payment
// identifier. Insertion is a single atomic insert-if-absent, so there is
// no check-then-act window between concurrent adds, and a stored payment
// is visible to every subsequent Get.
type PaymentStore struct {
	payments sync.Map
}

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{}
}

// Add stores a payment under its identifier. Identifiers are generated
// fresh per attempt, so a duplicate is an invariant violation.
func (s *PaymentStore) Add(payment *domain.Payment) error {
	if _, loaded := s.payments.LoadOrStore(payment.ID().String(), payment); loaded {
		return fmt.Errorf("%w: %s", application.ErrDuplicatePayment, payment.ID())
	}
	return nil
}

// Get looks up a payment by identifier.
func (s *PaymentStore) Get(id domain.PaymentID) (*domain.Payment, error) {
	value, ok := s.payments.Load(id.String())
	if !ok {
		return nil, fmt.Errorf("%w: %s", application.ErrPaymentNotFound, id)
	}
	return value.(*domain.Payment), nil
}
