package domain

import "strings"

// supportedCurrencies is the fixed set of ISO 4217 codes the gateway
// accepts. Never mutated after init.
var supportedCurrencies = map[string]struct{}{
	"USD": {},
	"GBP": {},
	"EUR": {},
}

// Currency is a validated, upper-cased ISO 4217 currency code.
type Currency struct {
	code string
}

// NewCurrency validates a raw currency code. Checks run in order:
// required, exactly 3 characters after trim+uppercase, member of the
// supported set.
func NewCurrency(raw string) (Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))

	if code == "" {
		return Currency{}, NewValidationError("currency.required", "currency is required")
	}
	if len(code) != 3 {
		return Currency{}, NewValidationError("currency.invalid_length", "currency must be a 3-letter code")
	}
	if _, ok := supportedCurrencies[code]; !ok {
		return Currency{}, NewValidationError("currency.unsupported", "currency must be one of USD, GBP, EUR")
	}

	return Currency{code: code}, nil
}

func (c Currency) Code() string {
	return c.code
}

func (c Currency) String() string {
	return c.code
}
