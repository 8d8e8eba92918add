package models

import "fmt"

// ValidationError reports missing or malformed required input. Surfaced as
// HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a missing trip, booking or user. Surfaced as 404.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// InvalidStateError reports an operation attempted on a booking in the wrong
// lifecycle state. Surfaced as 409.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// ProviderError wraps a failed call to an external collaborator (payment,
// email, SMS, database). Surfaced as 500; the provider code and message are
// carried through for diagnostics.
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s [%s]: %s", e.Provider, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// PaymentInitError reports a failed or URL-less checkout session creation.
type PaymentInitError struct {
	Message string
	Err     error
}

func (e *PaymentInitError) Error() string {
	return e.Message
}

func (e *PaymentInitError) Unwrap() error {
	return e.Err
}
