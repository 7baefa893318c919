// Package application owns the ports, the error taxonomy, and the
// orchestration services of the payment gateway.
package application

import (
	"context"
	"errors"

	"github.com/cardnest/payment-gateway/internal/domain"
)

// BankClient is the port for the acquiring bank.
type BankClient interface {
	Authorize(ctx context.Context, req BankAuthorizationRequest) (*BankAuthorizationResponse, error)
}

// PaymentStore is the port for persistence of terminal payments. Add is
// add-once: identifiers are generated fresh per attempt, so a duplicate
// signals a broken invariant rather than a business failure.
type PaymentStore interface {
	Add(payment *domain.Payment) error
	Get(id domain.PaymentID) (*domain.Payment, error)
}

var (
	// ErrPaymentNotFound is returned by PaymentStore.Get for unknown identifiers.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrDuplicatePayment is returned by PaymentStore.Add when the identifier
	// is already taken.
	ErrDuplicatePayment = errors.New("payment with this ID already exists")
)
