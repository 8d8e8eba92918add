package handlers

import (
	"net/http"
	"strconv"

	"tourvisto/models"
	"tourvisto/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("Booking creation failed", zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to create booking", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      created.ID,
		"status":  "success",
		"message": "Booking created successfully",
	})
}

// ConfirmBooking handles POST /api/bookings/confirm, the payment-success
// callback carrying the booking and checkout session references.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		BookingID string `json:"bookingId"`
		SessionID string `json:"sessionId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.ConfirmBooking(c.Request.Context(), input.BookingID, input.SessionID)
	if err != nil {
		h.Logger.Error("Booking confirmation failed",
			zap.String("bookingId", input.BookingID), zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to confirm booking", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// SendReminder handles POST /api/bookings/:bookingId/reminder.
func (h *BookingHandler) SendReminder(c *gin.Context) {
	bookingID := c.Param("bookingId")
	if bookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Booking ID is required"})
		return
	}

	result, err := h.Service.SendReminder(c.Request.Context(), bookingID)
	if err != nil {
		h.Logger.Error("Booking reminder failed",
			zap.String("bookingId", bookingID), zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to send booking reminder", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"messageId": result.MessageID,
		"message":   "Booking reminder sent successfully",
	})
}

// SendTicketEmail handles POST /api/bookings/:bookingId/ticket-email,
// re-sending the ticket email for a confirmed booking.
func (h *BookingHandler) SendTicketEmail(c *gin.Context) {
	bookingID := c.Param("bookingId")
	if bookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Booking ID is required"})
		return
	}

	result, err := h.Service.ResendTicketEmail(c.Request.Context(), bookingID)
	if err != nil {
		h.Logger.Error("Ticket email failed",
			zap.String("bookingId", bookingID), zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to send ticket email", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Ticket email sent successfully",
		"recipient": result.Recipient,
		"travelId":  booking.TravelID(bookingID),
		"messageId": result.MessageID,
	})
}

// ListUserBookings handles GET /api/users/:userId/bookings with limit/offset
// paging, newest first.
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	bookings, err := h.Service.ListUserBookings(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.Logger.Error("Booking listing failed", zap.String("userId", userID), zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to fetch bookings", "details": err.Error()})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBooking handles GET /api/bookings/:bookingId.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID := c.Param("bookingId")

	booking, err := h.Service.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Booking not found", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, booking)
}
