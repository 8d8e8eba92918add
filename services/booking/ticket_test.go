package booking

import (
	"errors"
	"testing"
	"time"

	"tourvisto/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ticketBooking() models.Booking {
	return models.Booking{
		ID:               "abc123456789",
		TripID:           "trip-1",
		UserID:           "user-1",
		TravelerName:     "Alice",
		Email:            "alice@example.com",
		Phone:            "+919876543210",
		NumberOfMembers:  2,
		MemberNames:      []string{"Alice", "Bob"},
		DepartureAirport: "DEL",
		Destination:      "Tokyo",
		FlightID:         "AI1234",
		DepartureTime:    time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC),
		ArrivalTime:      time.Date(2026, 3, 15, 17, 30, 0, 0, time.UTC),
		SeatAssignments:  []string{"12A", "12B"},
	}
}

func TestTravelID(t *testing.T) {
	assert.Equal(t, "TR456789", TravelID("abc123456789"))
	assert.Equal(t, "TRAB12", TravelID("ab12"))
	assert.Equal(t, "TR456789", TravelID("abc123456789"), "deterministic")
}

func TestBuildTicket(t *testing.T) {
	b := ticketBooking()
	ticket, err := BuildTicket(b)
	require.NoError(t, err)

	assert.Equal(t, "TR456789", ticket.TravelID)
	assert.Equal(t, "✈️ Your Travel Ticket - Tokyo", ticket.Subject)

	assert.Contains(t, ticket.HTML, "TR456789")
	assert.Contains(t, ticket.HTML, "AI1234")
	assert.Contains(t, ticket.HTML, "Bob - Seat 12B")
	assert.Contains(t, ticket.HTML, "TR456789-AI1234-6789")

	assert.Contains(t, ticket.Text, "Travel ID: TR456789")
	assert.Contains(t, ticket.Text, "Seats: 12A, 12B")

	assert.Contains(t, ticket.SMSText, "BOOKING CONFIRMED")
	assert.Contains(t, ticket.SMSText, "TR456789")
	assert.Contains(t, ticket.SMSText, "2 seat(s)")
}

func TestBuildTicket_MissingOptionalFields(t *testing.T) {
	b := ticketBooking()
	b.NumberOfMembers = 3
	b.MemberNames = []string{"Alice", "Bob"}
	b.SeatAssignments = []string{"12A"}

	ticket, err := BuildTicket(b)
	require.NoError(t, err)

	// Members and seats beyond what was recorded render as N/A.
	assert.Contains(t, ticket.HTML, "Bob - Seat N/A")
	assert.Contains(t, ticket.HTML, "N/A - Seat N/A")
}

func TestBuildTicket_SingleTravelerOmitsMemberList(t *testing.T) {
	b := ticketBooking()
	b.NumberOfMembers = 1
	b.MemberNames = []string{"Alice"}
	b.SeatAssignments = []string{"12A"}

	ticket, err := BuildTicket(b)
	require.NoError(t, err)
	assert.NotContains(t, ticket.HTML, "All Members")
}

func TestBuildTicket_RejectsIncompleteBooking(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Booking)
	}{
		{"missing id", func(b *models.Booking) { b.ID = "" }},
		{"missing destination", func(b *models.Booking) { b.Destination = "" }},
		{"missing departure time", func(b *models.Booking) { b.DepartureTime = time.Time{} }},
		{"missing arrival time", func(b *models.Booking) { b.ArrivalTime = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ticketBooking()
			tt.mutate(&b)

			ticket, err := BuildTicket(b)
			assert.Nil(t, ticket)

			var verr *models.ValidationError
			require.True(t, errors.As(err, &verr))
		})
	}
}

func TestBuildReminderSMS(t *testing.T) {
	msg := BuildReminderSMS(ticketBooking())
	assert.Contains(t, msg, "TRAVEL REMINDER")
	assert.Contains(t, msg, "Tokyo")
	assert.Contains(t, msg, "TR456789")
	assert.Contains(t, msg, "AI1234")
}
