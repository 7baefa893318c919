package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cardnest/payment-gateway/internal/domain"
)

// ServiceError wraps orchestration-level failures with the HTTP status
// the REST layer should answer with.
type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInternal        = "internal_error"
	ErrCodePaymentNotFound = "payment.not_found"
)

// NewInternalError marks genuinely unexpected faults, such as a broken
// store invariant.
func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "an internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewNotFoundError(id domain.PaymentID) *ServiceError {
	return &ServiceError{
		Code:       ErrCodePaymentNotFound,
		Message:    fmt.Sprintf("payment %s not found", id),
		HTTPStatus: http.StatusNotFound,
		Err:        ErrPaymentNotFound,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// ToHTTPStatus maps any pipeline error to the status the caller sees:
// validation 400, not found 404, external bank failure 502, anything
// unclassified 500.
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if _, ok := domain.IsValidationError(err); ok {
		return http.StatusBadRequest
	}

	if errors.Is(err, ErrPaymentNotFound) {
		return http.StatusNotFound
	}

	if _, ok := IsBankError(err); ok {
		return http.StatusBadGateway
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	return http.StatusInternalServerError
}

// ToErrorCode extracts the machine-readable code for API responses.
func ToErrorCode(err error) string {
	if valErr, ok := domain.IsValidationError(err); ok {
		return valErr.Code
	}

	if errors.Is(err, ErrPaymentNotFound) {
		return ErrCodePaymentNotFound
	}

	if bankErr, ok := IsBankError(err); ok {
		return bankErr.Code
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	return ErrCodeInternal
}
