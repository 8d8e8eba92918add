package booking

import (
	"context"
	"strings"
	"time"

	"tourvisto/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates the booking form, generates the immutable flight
// fields and seat assignments, and persists the booking in
// (pending, pending).
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}

	travelDate, err := parseTravelDate(req.TravelDate)
	if err != nil {
		return nil, err
	}

	// Pin the invariants: one member name per seat, lead traveler first.
	members := req.MemberNames
	if len(members) == 0 {
		members = []string{req.TravelerName}
	}
	if members[0] != req.TravelerName {
		return nil, &models.ValidationError{Message: "first member name must equal the traveler name"}
	}
	travelers := req.NumberOfMembers
	if travelers <= 0 {
		travelers = len(members)
	}
	if travelers != len(members) {
		return nil, &models.ValidationError{Message: "memberNames must contain one entry per member"}
	}

	plan := s.Planner.Plan(travelDate, travelers)

	booking := models.Booking{
		ID:               uuid.New().String(),
		TripID:           req.TripID,
		UserID:           req.UserID,
		TravelerName:     req.TravelerName,
		Email:            req.Email,
		Phone:            req.Phone,
		NumberOfMembers:  travelers,
		MemberNames:      members,
		DepartureAirport: req.DepartureAirport,
		Destination:      req.Destination,
		TravelDate:       req.TravelDate,
		FlightID:         plan.FlightID,
		DepartureTime:    plan.DepartureTime,
		ArrivalTime:      plan.ArrivalTime,
		SeatAssignments:  plan.Seats,
		BookingStatus:    models.BookingStatusPending,
		PaymentStatus:    models.PaymentStatusPending,
		CreatedAt:        time.Now(),
	}

	if _, err := s.Repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.Logger.Info("Booking created",
		zap.String("bookingId", booking.ID),
		zap.String("tripId", booking.TripID),
		zap.String("flightId", booking.FlightID),
		zap.Int("members", booking.NumberOfMembers),
	)
	return &booking, nil
}

func validateBookingRequest(req models.BookingRequest) error {
	var missing []string
	if req.TripID == "" {
		missing = append(missing, "tripId")
	}
	if req.UserID == "" {
		missing = append(missing, "userId")
	}
	if req.TravelerName == "" {
		missing = append(missing, "travelerName")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Phone == "" {
		missing = append(missing, "phone")
	}
	if req.TravelDate == "" {
		missing = append(missing, "travelDate")
	}
	if len(missing) > 0 {
		return &models.ValidationError{Message: "missing required fields: " + strings.Join(missing, ", ")}
	}
	return nil
}

func parseTravelDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, &models.ValidationError{Message: "invalid travelDate, expected YYYY-MM-DD"}
}
