package rest

import "github.com/cardnest/payment-gateway/internal/application/services"

// PaymentResponse is the wire shape of a payment projection.
type PaymentResponse struct {
	ID                 string  `json:"id"`
	Status             string  `json:"status"`
	LastFourCardDigits string  `json:"last_four_card_digits"`
	ExpiryMonth        int     `json:"expiry_month"`
	ExpiryYear         int     `json:"expiry_year"`
	Currency           string  `json:"currency"`
	Amount             int64   `json:"amount"`
	AuthorizationCode  *string `json:"authorization_code,omitempty"`
}

func ToPaymentResponse(result *services.PaymentResult) PaymentResponse {
	return PaymentResponse{
		ID:                 result.ID,
		Status:             result.Status,
		LastFourCardDigits: result.LastFourCardDigits,
		ExpiryMonth:        result.ExpiryMonth,
		ExpiryYear:         result.ExpiryYear,
		Currency:           result.Currency,
		Amount:             result.Amount,
		AuthorizationCode:  result.AuthorizationCode,
	}
}
