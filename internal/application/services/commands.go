package services

// AuthorizeCommand carries the raw, untrusted input of an authorization
// attempt. Validation happens inside the service, not here.
type AuthorizeCommand struct {
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	Amount      int64
	CVV         string
}
