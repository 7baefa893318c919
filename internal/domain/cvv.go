package domain

import "log/slog"

const cvvMask = "***"

// Cvv is a validated card verification value. The raw digits are only
// reachable through Value for the outbound bank request; every display
// and logging path renders the fixed mask.
type Cvv struct {
	value string
}

// NewCvv validates a raw CVV. Checks run in order: required, digits only,
// length 3-4.
func NewCvv(raw string) (Cvv, error) {
	if raw == "" {
		return Cvv{}, NewValidationError("cvv.required", "cvv is required")
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return Cvv{}, NewValidationError("cvv.invalid_format", "cvv must contain only digits")
		}
	}
	if len(raw) < 3 || len(raw) > 4 {
		return Cvv{}, NewValidationError("cvv.invalid_length", "cvv must be 3 or 4 digits")
	}

	return Cvv{value: raw}, nil
}

// Value returns the raw digits for the outbound bank request.
func (c Cvv) Value() string {
	return c.value
}

func (c Cvv) String() string {
	return cvvMask
}

// LogValue keeps the CVV out of structured logs.
func (c Cvv) LogValue() slog.Value {
	return slog.StringValue(cvvMask)
}
