package booking

import (
	"context"

	"tourvisto/models"

	"go.uber.org/zap"
)

// SendReminder sends the travel-reminder SMS for a confirmed booking. It may
// be invoked repeatedly; sends are not deduplicated.
func (s *DefaultBookingService) SendReminder(ctx context.Context, bookingID string) (*models.SMSResult, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.BookingStatus != models.BookingStatusConfirmed {
		return nil, &models.InvalidStateError{Message: "cannot send reminder for unconfirmed booking"}
	}

	result, err := s.SMS.Send(ctx, booking.Phone, BuildReminderSMS(*booking))
	if err != nil {
		return nil, err
	}

	s.Logger.Info("Booking reminder sent",
		zap.String("bookingId", bookingID),
		zap.String("messageId", result.MessageID),
	)
	return result, nil
}
