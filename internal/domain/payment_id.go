package domain

import (
	"strings"

	"github.com/google/uuid"
)

// PaymentID is the opaque identifier of a payment attempt, generated
// fresh for every authorization.
type PaymentID struct {
	value string
}

// NewPaymentID generates a fresh identifier.
func NewPaymentID() PaymentID {
	return PaymentID{value: uuid.NewString()}
}

// ParsePaymentID parses a client-supplied identifier. Malformed input is
// a validation failure, not an internal error.
func ParsePaymentID(raw string) (PaymentID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return PaymentID{}, NewValidationError("payment_id.invalid", "payment id must be a valid UUID")
	}
	return PaymentID{value: id.String()}, nil
}

func (id PaymentID) String() string {
	return id.value
}

func (id PaymentID) IsZero() bool {
	return id.value == ""
}
