package domain

import "fmt"

// MaxAmountMinorUnits is the largest amount a single authorization may
// carry, in minor units.
const MaxAmountMinorUnits int64 = 9_999_999

// Money is a positive amount in minor units paired with its currency.
// All supported currencies use two decimal places.
type Money struct {
	amount   int64
	currency Currency
}

// NewMoney validates an amount against a currency that has already been
// validated. Checks run in order: amount strictly positive, amount within
// the configured ceiling.
func NewMoney(amount int64, currency Currency) (Money, error) {
	if amount <= 0 {
		return Money{}, NewValidationError("amount.invalid", "amount must be greater than zero")
	}
	if amount > MaxAmountMinorUnits {
		return Money{}, NewValidationError("amount.too_large", fmt.Sprintf("amount must not exceed %d", MaxAmountMinorUnits))
	}

	return Money{amount: amount, currency: currency}, nil
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Currency() Currency {
	return m.currency
}

// MajorUnits converts minor units to major units (1000 -> 10.00).
func (m Money) MajorUnits() float64 {
	return float64(m.amount) / 100
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.MajorUnits(), m.currency.Code())
}
