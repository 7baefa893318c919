package application

import (
	"errors"
	"fmt"
)

// BankAuthorizationRequest is the wire body sent to the bank's
// POST /payments endpoint.
type BankAuthorizationRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	Cvv        string `json:"cvv"`
}

// BankAuthorizationResponse is the bank's decision. A declined payment is
// a successful response with Authorized=false; AuthorizationCode is only
// present when the bank authorized.
type BankAuthorizationResponse struct {
	Authorized        bool    `json:"authorized"`
	AuthorizationCode *string `json:"authorizationCode"`
}

// Bank error sub-codes, one per external failure mode.
const (
	ErrCodeBankUnavailable     = "bank.unavailable"
	ErrCodeBankBadRequest      = "bank.bad_request"
	ErrCodeBankInvalidResponse = "bank.invalid_response"
	ErrCodeBankConnection      = "bank.connection_error"
	ErrCodeBankTimeout         = "bank.timeout"
	ErrCodeBankUnexpected      = "bank.unexpected_error"
)

// BankError is an External-kind failure talking to the bank: transport
// faults, protocol violations, and non-success statuses.
type BankError struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *BankError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("bank error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("bank error [%s]: %s", e.Code, e.Message)
}

// IsRetryable reports whether the failure is the transient-unavailable
// signal. Nothing else is retried: a rejected request cannot succeed on
// retry, and a declined payment is not a failure at all.
func (e *BankError) IsRetryable() bool {
	return e.Code == ErrCodeBankUnavailable
}

func IsBankError(err error) (*BankError, bool) {
	var bankErr *BankError
	ok := errors.As(err, &bankErr)
	return bankErr, ok
}
