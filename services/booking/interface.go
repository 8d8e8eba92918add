package booking

import (
	"context"

	bookingRepo "tourvisto/database/repository/booking"
	"tourvisto/models"
	"tourvisto/services/notification"
	"tourvisto/services/payment"

	"go.uber.org/zap"
)

// BookingService drives a booking through its lifecycle: creation in
// (pending, pending), payment initiation, confirmation with notification
// fan-out, and reminders.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	InitiatePayment(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error)
	ConfirmBooking(ctx context.Context, bookingID, sessionID string) (*models.ConfirmationResult, error)
	SendReminder(ctx context.Context, bookingID string) (*models.SMSResult, error)
	ResendTicketEmail(ctx context.Context, bookingID string) (*models.EmailResult, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListUserBookings(ctx context.Context, userID string, limit, offset int64) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Payments payment.CheckoutService
	Email    notification.EmailNotifier
	SMS      notification.SMSNotifier
	Planner  FlightPlanner
	Logger   *zap.Logger
}

// GetBooking returns a booking by ID.
func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, bookingID)
}

// ListUserBookings returns a user's bookings, newest first.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string, limit, offset int64) ([]models.Booking, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}
