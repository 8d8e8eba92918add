package models

import "time"

// Booking lifecycle states. A booking moves from (pending, pending) to
// (confirmed, completed) exactly once; there is no cancellation state.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// Booking links a user to a trip with traveler details, generated flight
// fields and payment state. Flight fields are set once at creation and never
// mutated afterward.
type Booking struct {
	ID               string    `bson:"id" json:"id"`
	TripID           string    `bson:"tripId" json:"tripId"`
	UserID           string    `bson:"userId" json:"userId"`
	TravelerName     string    `bson:"travelerName" json:"travelerName"`
	Email            string    `bson:"email" json:"email"`
	Phone            string    `bson:"phone" json:"phone"`
	NumberOfMembers  int       `bson:"numberOfMembers" json:"numberOfMembers"`
	MemberNames      []string  `bson:"memberNames" json:"memberNames"` // first entry is the lead traveler
	DepartureAirport string    `bson:"departureAirport" json:"departureAirport"`
	Destination      string    `bson:"destination" json:"destination"`
	TravelDate       string    `bson:"travelDate" json:"travelDate"` // "YYYY-MM-DD"
	FlightID         string    `bson:"flightId" json:"flightId"`
	DepartureTime    time.Time `bson:"departureTime" json:"departureTime"`
	ArrivalTime      time.Time `bson:"arrivalTime" json:"arrivalTime"`
	SeatAssignments  []string  `bson:"seatAssignments" json:"seatAssignments"` // one per member, same order
	BookingStatus    string    `bson:"bookingStatus" json:"bookingStatus"`
	PaymentStatus    string    `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingRequest carries the booking form fields submitted by a user.
type BookingRequest struct {
	TripID           string   `json:"tripId"`
	UserID           string   `json:"userId"`
	TravelerName     string   `json:"travelerName"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	NumberOfMembers  int      `json:"numberOfMembers"`
	MemberNames      []string `json:"memberNames"`
	DepartureAirport string   `json:"departureAirport"`
	Destination      string   `json:"destination"`
	TravelDate       string   `json:"travelDate"`
}

// ConfirmationResult reports the outcome of a booking confirmation,
// including which best-effort notifications went out.
type ConfirmationResult struct {
	Success        bool     `json:"success"`
	Booking        *Booking `json:"booking"`
	Message        string   `json:"message"`
	EmailSent      bool     `json:"emailSent"`
	SMSSent        bool     `json:"smsSent"`
	EmailMessageID string   `json:"emailMessageId,omitempty"`
	SMSMessageID   string   `json:"smsMessageId,omitempty"`
}
