package domain

import (
	"errors"
	"fmt"
)

// ValidationError represents a broken input rule. Code is a stable
// machine-readable identifier such as "card_number.invalid_length";
// Message is for humans.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: message,
	}
}

// IsValidationError checks whether err carries a *ValidationError
// and returns it for errors.Is/As style matching
func IsValidationError(err error) (*ValidationError, bool) {
	var valErr *ValidationError
	ok := errors.As(err, &valErr)
	return valErr, ok
}

// IsErrorCode checks if an error is a ValidationError with a specific code
func IsErrorCode(err error, code string) bool {
	if valErr, ok := IsValidationError(err); ok {
		return valErr.Code == code
	}
	return false
}
