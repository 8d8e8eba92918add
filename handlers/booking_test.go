package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tourvisto/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBookingService struct {
	booking    *models.Booking
	bookings   []models.Booking
	confirmRes *models.ConfirmationResult
	smsRes     *models.SMSResult
	emailRes   *models.EmailResult
	err        error
}

func (s *stubBookingService) CreateBooking(context.Context, models.BookingRequest) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) InitiatePayment(context.Context, models.CheckoutRequest) (*models.CheckoutSession, error) {
	return nil, s.err
}

func (s *stubBookingService) ConfirmBooking(context.Context, string, string) (*models.ConfirmationResult, error) {
	return s.confirmRes, s.err
}

func (s *stubBookingService) SendReminder(context.Context, string) (*models.SMSResult, error) {
	return s.smsRes, s.err
}

func (s *stubBookingService) ResendTicketEmail(context.Context, string) (*models.EmailResult, error) {
	return s.emailRes, s.err
}

func (s *stubBookingService) GetBooking(context.Context, string) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) ListUserBookings(context.Context, string, int64, int64) ([]models.Booking, error) {
	return s.bookings, s.err
}

func bookingRouter(svc *stubBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())
	r := gin.New()
	r.POST("/api/bookings", h.CreateBooking)
	r.POST("/api/bookings/confirm", h.ConfirmBooking)
	r.POST("/api/bookings/:bookingId/reminder", h.SendReminder)
	r.POST("/api/bookings/:bookingId/ticket-email", h.SendTicketEmail)
	r.GET("/api/bookings/:bookingId", h.GetBooking)
	r.GET("/api/users/:userId/bookings", h.ListUserBookings)
	return r
}

func TestCreateBookingHandler(t *testing.T) {
	svc := &stubBookingService{booking: &models.Booking{ID: "b-1"}}
	r := bookingRouter(svc)

	body, _ := json.Marshal(models.BookingRequest{TripID: "trip-1", TravelerName: "Alice"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "b-1", resp["id"])
	assert.Equal(t, "success", resp["status"])
}

func TestCreateBookingHandler_MalformedJSON(t *testing.T) {
	r := bookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid input")
}

func TestCreateBookingHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &models.ValidationError{Message: "missing required fields: email"}, http.StatusBadRequest},
		{"not found", &models.NotFoundError{Resource: "trip", ID: "t1"}, http.StatusNotFound},
		{"provider", &models.ProviderError{Provider: "database", Message: "down"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bookingRouter(&stubBookingService{err: tt.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte("{}")))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestConfirmBookingHandler(t *testing.T) {
	svc := &stubBookingService{confirmRes: &models.ConfirmationResult{
		Success:   true,
		Booking:   &models.Booking{ID: "b-1", BookingStatus: models.BookingStatusConfirmed},
		EmailSent: true,
		SMSSent:   true,
	}}
	r := bookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/confirm",
		bytes.NewReader([]byte(`{"bookingId":"b-1","sessionId":"cs_test_1"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var res models.ConfirmationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.True(t, res.EmailSent)
	assert.Equal(t, models.BookingStatusConfirmed, res.Booking.BookingStatus)
}

func TestSendReminderHandler(t *testing.T) {
	svc := &stubBookingService{smsRes: &models.SMSResult{Success: true, MessageID: "SM123"}}
	r := bookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/b-1/reminder", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SM123")
}

func TestSendReminderHandler_UnconfirmedConflict(t *testing.T) {
	svc := &stubBookingService{err: &models.InvalidStateError{Message: "cannot send reminder for unconfirmed booking"}}
	r := bookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/b-1/reminder", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSendTicketEmailHandler(t *testing.T) {
	svc := &stubBookingService{emailRes: &models.EmailResult{
		Success:   true,
		MessageID: "<msg@test>",
		Recipient: "alice@example.com",
	}}
	r := bookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/abc123456789/ticket-email", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "alice@example.com", resp["recipient"])
	assert.Equal(t, "TR456789", resp["travelId"])
	assert.Equal(t, "<msg@test>", resp["messageId"])
}

func TestSendTicketEmailHandler_UnconfirmedConflict(t *testing.T) {
	svc := &stubBookingService{err: &models.InvalidStateError{Message: "cannot send ticket email for unconfirmed booking"}}
	r := bookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/b-1/ticket-email", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListUserBookingsHandler(t *testing.T) {
	svc := &stubBookingService{bookings: []models.Booking{
		{ID: "b-1", UserID: "user-1"},
		{ID: "b-2", UserID: "user-1"},
	}}
	r := bookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/user-1/bookings", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Bookings []models.Booking `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Bookings, 2)
}

func TestListUserBookingsHandler_EmptyList(t *testing.T) {
	r := bookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/user-1/bookings", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bookings":[]`)
}

func TestGetBookingHandler_NotFound(t *testing.T) {
	svc := &stubBookingService{err: &models.NotFoundError{Resource: "booking", ID: "nope"}}
	r := bookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatusForError(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusForError(&models.ValidationError{Message: "bad"}))
	assert.Equal(t, http.StatusNotFound, statusForError(&models.NotFoundError{Resource: "trip", ID: "t1"}))
	assert.Equal(t, http.StatusConflict, statusForError(&models.InvalidStateError{Message: "pending"}))
	assert.Equal(t, http.StatusInternalServerError, statusForError(&models.ProviderError{Provider: "sms"}))
	assert.Equal(t, http.StatusInternalServerError, statusForError(errors.New("boom")))
}
