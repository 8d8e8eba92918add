package booking

import (
	"context"

	"tourvisto/models"

	"go.uber.org/zap"
)

// InitiatePayment creates a hosted checkout session for a pending booking.
// It does not mutate booking state; the booking transitions only on the
// provider's success callback.
func (s *DefaultBookingService) InitiatePayment(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	if req.BookingID == "" || req.Amount <= 0 {
		return nil, &models.ValidationError{Message: "booking ID and amount are required"}
	}

	booking, err := s.Repo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	return s.Payments.CreateSession(ctx, booking, req)
}

// ConfirmBooking is the payment-success transition. The status update is
// unconditional on the provider callback: the session reference is recorded
// but not re-verified against the provider. After the update the email and
// SMS notifications are attempted independently; neither failure blocks the
// other nor rolls back the confirmation.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, bookingID, sessionID string) (*models.ConfirmationResult, error) {
	if bookingID == "" {
		return nil, &models.ValidationError{Message: "booking ID is required"}
	}

	updated, err := s.Repo.UpdateStatus(ctx, bookingID, models.BookingStatusConfirmed, models.PaymentStatusCompleted)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("Booking confirmed",
		zap.String("bookingId", bookingID),
		zap.String("sessionId", sessionID),
	)

	result := &models.ConfirmationResult{
		Success: true,
		Booking: updated,
		Message: "Booking confirmed successfully. Email and SMS notifications sent.",
	}

	ticket, err := BuildTicket(*updated)
	if err != nil {
		s.Logger.Error("Ticket build failed, skipping notifications",
			zap.String("bookingId", bookingID), zap.Error(err))
		return result, nil
	}

	if emailRes, err := s.Email.Send(ctx, updated.Email, ticket.Subject, ticket.HTML, ticket.Text); err != nil {
		s.Logger.Error("Ticket email failed",
			zap.String("bookingId", bookingID), zap.Error(err))
	} else {
		result.EmailSent = true
		result.EmailMessageID = emailRes.MessageID
	}

	if smsRes, err := s.SMS.Send(ctx, updated.Phone, ticket.SMSText); err != nil {
		s.Logger.Error("Confirmation SMS failed",
			zap.String("bookingId", bookingID), zap.Error(err))
	} else {
		result.SMSSent = true
		result.SMSMessageID = smsRes.MessageID
	}

	return result, nil
}
