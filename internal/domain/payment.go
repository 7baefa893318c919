// Package domain holds the validated value types and the payment
// aggregate of the authorization pipeline.
package domain

import (
	"errors"
	"time"
)

// PaymentStatus is the terminal outcome of an authorization attempt
type PaymentStatus string

const (
	StatusAuthorized PaymentStatus = "AUTHORIZED"
	StatusDeclined   PaymentStatus = "DECLINED"
	StatusRejected   PaymentStatus = "REJECTED"
)

// Payment is the aggregate recorded once per authorization attempt. It is
// immutable after construction: there is no mutator, and the three factory
// functions are the only way to build one. A payment only ever carries an
// authorization code when its status is AUTHORIZED.
type Payment struct {
	id                PaymentID
	cardNumber        CardNumber
	expiryDate        ExpiryDate
	money             Money
	status            PaymentStatus
	authorizationCode string
	createdAt         time.Time
}

// NewAuthorizedPayment records a payment the bank approved, together with
// the bank's authorization code.
func NewAuthorizedPayment(id PaymentID, card CardNumber, expiry ExpiryDate, money Money, authorizationCode string) (*Payment, error) {
	if authorizationCode == "" {
		return nil, errors.New("authorization code is required for an authorized payment")
	}
	payment, err := newPayment(id, card, expiry, money, StatusAuthorized)
	if err != nil {
		return nil, err
	}
	payment.authorizationCode = authorizationCode
	return payment, nil
}

// NewDeclinedPayment records a payment the bank declined.
func NewDeclinedPayment(id PaymentID, card CardNumber, expiry ExpiryDate, money Money) (*Payment, error) {
	return newPayment(id, card, expiry, money, StatusDeclined)
}

// NewRejectedPayment records a payment that never reached the bank
// because validation rejected it.
func NewRejectedPayment(id PaymentID, card CardNumber, expiry ExpiryDate, money Money) (*Payment, error) {
	return newPayment(id, card, expiry, money, StatusRejected)
}

func newPayment(id PaymentID, card CardNumber, expiry ExpiryDate, money Money, status PaymentStatus) (*Payment, error) {
	if id.IsZero() {
		return nil, errors.New("payment ID is required")
	}
	return &Payment{
		id:         id,
		cardNumber: card,
		expiryDate: expiry,
		money:      money,
		status:     status,
		createdAt:  time.Now().UTC(),
	}, nil
}

func (p *Payment) ID() PaymentID {
	return p.id
}

func (p *Payment) CardNumber() CardNumber {
	return p.cardNumber
}

func (p *Payment) ExpiryDate() ExpiryDate {
	return p.expiryDate
}

func (p *Payment) Money() Money {
	return p.money
}

func (p *Payment) Status() PaymentStatus {
	return p.status
}

// AuthorizationCode returns the bank's code and whether one is present.
// Only authorized payments carry one.
func (p *Payment) AuthorizationCode() (string, bool) {
	return p.authorizationCode, p.authorizationCode != ""
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}
