package booking

import (
	"fmt"
	"strings"

	"tourvisto/models"
)

// TicketContent is the rendered ticket bundle for a confirmed booking.
type TicketContent struct {
	Subject  string
	HTML     string
	Text     string
	SMSText  string
	TravelID string
}

// TravelID derives the short human-facing travel code from a booking ID.
// Deterministic: the same booking ID always yields the same code.
func TravelID(bookingID string) string {
	id := bookingID
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	return "TR" + strings.ToUpper(id)
}

// memberAt pairs a member name with a seat assignment, falling back to "N/A"
// for missing entries rather than failing.
func memberAt(b models.Booking, i int) (name, seat string) {
	name, seat = "N/A", "N/A"
	if i < len(b.MemberNames) {
		name = b.MemberNames[i]
	}
	if i < len(b.SeatAssignments) {
		seat = b.SeatAssignments[i]
	}
	return name, seat
}

// BuildTicket renders the ticket bundle for a confirmed booking. Optional
// fields (member names beyond the lead, seat assignments) degrade to "N/A";
// a booking without an ID, destination or flight times is meaningless as a
// ticket and is rejected.
func BuildTicket(b models.Booking) (*TicketContent, error) {
	if b.ID == "" || b.Destination == "" || b.DepartureTime.IsZero() || b.ArrivalTime.IsZero() {
		return nil, &models.ValidationError{Message: "ticket requires booking id, destination and flight times"}
	}

	travelID := TravelID(b.ID)
	subject := fmt.Sprintf("✈️ Your Travel Ticket - %s", b.Destination)

	last4 := b.ID
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	barcode := fmt.Sprintf("%s-%s-%s", travelID, b.FlightID, strings.ToUpper(last4))

	// Timestamps are rendered in the runtime's local zone, no conversion.
	travelDate := b.DepartureTime.Format("1/2/2006")
	departureTime := b.DepartureTime.Format("3:04:05 PM")
	arrivalTime := b.ArrivalTime.Format("3:04:05 PM")

	var members strings.Builder
	if b.NumberOfMembers > 1 {
		members.WriteString(`<div class="section"><div class="label">All Members:</div><ul>`)
		leadName, leadSeat := memberAt(b, 0)
		fmt.Fprintf(&members, "<li>%s (Lead Traveler) - Seat %s</li>", leadName, leadSeat)
		for i := 1; i < b.NumberOfMembers; i++ {
			name, seat := memberAt(b, i)
			fmt.Fprintf(&members, "<li>%s - Seat %s</li>", name, seat)
		}
		members.WriteString("</ul></div>")
	}

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>%[1]s</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #2563eb; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .ticket { border: 2px solid #2563eb; margin: 20px 0; padding: 20px; border-radius: 0 0 8px 8px; }
        .section { margin: 20px 0; }
        .section h3 { color: #2563eb; border-bottom: 1px solid #e5e7eb; padding-bottom: 5px; }
        .label { font-weight: bold; color: #2563eb; margin-bottom: 5px; }
        .value { margin-bottom: 15px; color: #374151; }
        .barcode { text-align: center; font-family: monospace; letter-spacing: 2px; background: #f3f4f6; padding: 15px; border-radius: 4px; margin: 20px 0; }
        .footer { background: #f9fafb; padding: 20px; text-align: center; margin-top: 20px; border-radius: 8px; }
        .contact { margin-top: 20px; color: #2563eb; font-weight: bold; }
        .disclaimer { margin-top: 15px; color: #6b7280; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>✈️ Your Travel Ticket</h1>
            <p>Tourvisto - Your Journey Begins Here</p>
        </div>
        <div class="ticket">
            <div class="section">
                <h3>🧳 Travel Information</h3>
                <div class="label">Travel ID:</div><div class="value">%[2]s</div>
                <div class="label">Destination:</div><div class="value">%[3]s</div>
                <div class="label">Flight:</div><div class="value">%[4]s</div>
                <div class="label">Departure Airport:</div><div class="value">%[5]s</div>
                <div class="label">Travel Date:</div><div class="value">%[6]s</div>
                <div class="label">Departure Time:</div><div class="value">%[7]s</div>
                <div class="label">Arrival Time:</div><div class="value">%[8]s</div>
                <div class="label">Status:</div><div class="value">✅ Confirmed</div>
            </div>
            <div class="section">
                <h3>👤 Traveler Details</h3>
                <div class="label">Lead Traveler:</div><div class="value">%[9]s</div>
                <div class="label">Email:</div><div class="value">%[10]s</div>
                <div class="label">Phone:</div><div class="value">%[11]s</div>
                <div class="label">Number of Members:</div><div class="value">%[12]d</div>
                <div class="label">Seat Assignments:</div><div class="value">%[13]s</div>
            </div>
            %[14]s
            <div class="barcode">📱 %[15]s</div>
        </div>
        <div class="footer">
            <h4>📋 Important Travel Instructions</h4>
            <ul>
                <li>Arrive at the airport at least 2 hours before departure</li>
                <li>Carry a valid photo ID for check-in</li>
                <li>Check baggage restrictions with the airline</li>
                <li>Keep this ticket handy during your journey</li>
                <li>Complete online check-in 24 hours before departure</li>
            </ul>
            <div class="contact">🆘 Need help? Contact us at support@tourvisto.com</div>
            <div class="disclaimer">This is an automated email. Please do not reply.<br>© 2025 Tourvisto. All rights reserved.</div>
        </div>
    </div>
</body>
</html>`,
		subject, travelID, b.Destination, b.FlightID, b.DepartureAirport,
		travelDate, departureTime, arrivalTime,
		b.TravelerName, b.Email, b.Phone, b.NumberOfMembers,
		strings.Join(b.SeatAssignments, ", "), members.String(), barcode,
	)

	text := fmt.Sprintf(`Your Travel Ticket - %s

Travel ID: %s
Flight: %s
Destination: %s
Departure: %s
Arrival: %s

Traveler: %s
Email: %s
Phone: %s
Members: %d
Seats: %s

Status: Confirmed ✅

Important: Arrive at airport 2 hours before departure.
Contact: support@tourvisto.com

Tourvisto - Your Journey Begins Here`,
		b.Destination, travelID, b.FlightID, b.Destination,
		b.DepartureTime.Format("1/2/2006, 3:04:05 PM"),
		b.ArrivalTime.Format("1/2/2006, 3:04:05 PM"),
		b.TravelerName, b.Email, b.Phone, b.NumberOfMembers,
		strings.Join(b.SeatAssignments, ", "),
	)

	return &TicketContent{
		Subject:  subject,
		HTML:     html,
		Text:     text,
		SMSText:  BuildConfirmationSMS(b),
		TravelID: travelID,
	}, nil
}

// BuildConfirmationSMS renders the booking-confirmed text message.
func BuildConfirmationSMS(b models.Booking) string {
	return fmt.Sprintf(`🎫 BOOKING CONFIRMED!

Travel ID: %s
✈️ %s
📅 %s %s
🛫 %s
👤 %s
🎟️ %d seat(s)

✅ Your ticket has been confirmed! Check your email for detailed information.

Need help? Contact support@tourvisto.com

- Tourvisto Team`,
		TravelID(b.ID), b.Destination,
		b.DepartureTime.Format("1/2/2006"), b.DepartureTime.Format("3:04:05 PM"),
		b.FlightID, b.TravelerName, b.NumberOfMembers,
	)
}

// BuildReminderSMS renders the travel-reminder text message.
func BuildReminderSMS(b models.Booking) string {
	return fmt.Sprintf(`⏰ TRAVEL REMINDER

Your flight to %s is tomorrow!

Travel ID: %s
📅 %s %s
🛫 %s

🚨 Remember:
• Arrive 2 hours early
• Carry valid photo ID
• Complete online check-in

Safe travels!
- Tourvisto Team`,
		b.Destination, TravelID(b.ID),
		b.DepartureTime.Format("1/2/2006"), b.DepartureTime.Format("3:04:05 PM"),
		b.FlightID,
	)
}
