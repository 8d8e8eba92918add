package notification

import (
	"context"

	"tourvisto/models"
)

// EmailNotifier sends a multi-part ticket email and reports the normalized
// result. Failures are expected to be caught and logged by the caller; they
// never roll back a confirmed booking.
type EmailNotifier interface {
	Send(ctx context.Context, to, subject, html, text string) (*models.EmailResult, error)
}

// SMSNotifier sends a text message to a free-form phone number, normalizing
// it first.
type SMSNotifier interface {
	Send(ctx context.Context, to, message string) (*models.SMSResult, error)
}
