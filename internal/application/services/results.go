package services

import "github.com/cardnest/payment-gateway/internal/domain"

// PaymentResult is the projection of a stored payment returned to the
// caller. AuthorizationCode is nil unless the payment is authorized, and
// is omitted entirely on lookups.
type PaymentResult struct {
	ID                 string
	Status             string
	LastFourCardDigits string
	ExpiryMonth        int
	ExpiryYear         int
	Currency           string
	Amount             int64
	AuthorizationCode  *string
}

func toResult(payment *domain.Payment, includeAuthorizationCode bool) *PaymentResult {
	result := &PaymentResult{
		ID:                 payment.ID().String(),
		Status:             string(payment.Status()),
		LastFourCardDigits: payment.CardNumber().LastFour(),
		ExpiryMonth:        payment.ExpiryDate().Month(),
		ExpiryYear:         payment.ExpiryDate().Year(),
		Currency:           payment.Money().Currency().Code(),
		Amount:             payment.Money().Amount(),
	}

	if includeAuthorizationCode {
		if code, ok := payment.AuthorizationCode(); ok {
			result.AuthorizationCode = &code
		}
	}

	return result
}
