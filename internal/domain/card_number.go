package domain

import "strings"

const (
	minCardNumberLength = 14
	maxCardNumberLength = 19
)

var cardSeparators = strings.NewReplacer(" ", "", "-", "")

// CardNumber is a validated primary account number. Only the bank request
// builder reads the full value; everything else sees the masked form.
type CardNumber struct {
	value string
}

// NewCardNumber validates a raw card number. Checks run in a fixed order
// and the first broken rule determines the returned code: required,
// digits-only after stripping spaces/hyphens, length 14-19, Luhn checksum.
func NewCardNumber(raw string) (CardNumber, error) {
	if strings.TrimSpace(raw) == "" {
		return CardNumber{}, NewValidationError("card_number.required", "card number is required")
	}

	normalized := cardSeparators.Replace(raw)
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return CardNumber{}, NewValidationError("card_number.invalid_format", "card number must contain only digits")
		}
	}

	if len(normalized) < minCardNumberLength || len(normalized) > maxCardNumberLength {
		return CardNumber{}, NewValidationError("card_number.invalid_length", "card number must be between 14 and 19 digits")
	}

	if !luhnValid(normalized) {
		return CardNumber{}, NewValidationError("card_number.invalid_checksum", "card number failed checksum validation")
	}

	return CardNumber{value: normalized}, nil
}

// Value returns the full card number for the outbound bank request.
func (c CardNumber) Value() string {
	return c.value
}

// LastFour returns the last four digits of the card number.
func (c CardNumber) LastFour() string {
	return c.value[len(c.value)-4:]
}

// Masked returns the display form: every digit but the last four
// replaced with '*'.
func (c CardNumber) Masked() string {
	return strings.Repeat("*", len(c.value)-4) + c.LastFour()
}

// String returns the masked representation so the full number never
// leaks through fmt or logging.
func (c CardNumber) String() string {
	return c.Masked()
}

// luhnValid walks the digits from the least significant end, doubling
// every second digit (subtracting 9 when the double exceeds 9) and
// accepting the number when the sum is divisible by 10.
func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
