package models

// CheckoutRequest asks for a hosted checkout session for a booking. Amount
// is in major currency units (e.g. dollars), converted to minor units by the
// payment adapter.
type CheckoutRequest struct {
	BookingID   string            `json:"bookingId"`
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
}

// CheckoutSession is the provider-hosted transaction reference returned to
// the client for redirect.
type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}
