package domain

import (
	"fmt"
	"time"
)

// maxExpiryYearsAhead bounds how far in the future a card may expire.
const maxExpiryYearsAhead = 20

// ExpiryDate is a validated (month, year) card expiry pair.
type ExpiryDate struct {
	month int
	year  int
}

// NewExpiryDate validates an expiry against the current UTC month and year.
// Checks run in order: month range, year not in the past, month not in the
// past within the current year, year not more than 20 years ahead.
func NewExpiryDate(month, year int) (ExpiryDate, error) {
	now := time.Now().UTC()

	if month < 1 || month > 12 {
		return ExpiryDate{}, NewValidationError("expiry_month.invalid", "expiry month must be between 1 and 12")
	}
	if year < now.Year() {
		return ExpiryDate{}, NewValidationError("expiry_year.expired", "expiry year is in the past")
	}
	if year == now.Year() && month < int(now.Month()) {
		return ExpiryDate{}, NewValidationError("expiry_date.expired", "card has expired")
	}
	if year > now.Year()+maxExpiryYearsAhead {
		return ExpiryDate{}, NewValidationError("expiry_year.invalid", fmt.Sprintf("expiry year must be within %d years", maxExpiryYearsAhead))
	}

	return ExpiryDate{month: month, year: year}, nil
}

func (e ExpiryDate) Month() int {
	return e.month
}

func (e ExpiryDate) Year() int {
	return e.year
}

// Format renders the expiry as MM/YYYY, the form the bank expects.
func (e ExpiryDate) Format() string {
	return fmt.Sprintf("%02d/%04d", e.month, e.year)
}

func (e ExpiryDate) String() string {
	return e.Format()
}
