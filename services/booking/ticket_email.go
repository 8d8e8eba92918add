package booking

import (
	"context"

	"tourvisto/models"

	"go.uber.org/zap"
)

// ResendTicketEmail re-sends the ticket email for a confirmed booking. Like
// reminders it may be invoked repeatedly; sends are not deduplicated. Unlike
// the confirm fan-out the send failure is returned to the caller, since
// resending is the whole point of the operation.
func (s *DefaultBookingService) ResendTicketEmail(ctx context.Context, bookingID string) (*models.EmailResult, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.BookingStatus != models.BookingStatusConfirmed {
		return nil, &models.InvalidStateError{Message: "cannot send ticket email for unconfirmed booking"}
	}

	ticket, err := BuildTicket(*booking)
	if err != nil {
		return nil, err
	}

	result, err := s.Email.Send(ctx, booking.Email, ticket.Subject, ticket.HTML, ticket.Text)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("Ticket email re-sent",
		zap.String("bookingId", bookingID),
		zap.String("messageId", result.MessageID),
	)
	return result, nil
}
