package handlers

import (
	"net/http"

	"tourvisto/models"
	"tourvisto/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes checkout session creation over HTTP.
type PaymentHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewPaymentHandler(svc booking.BookingService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Service: svc, Logger: logger}
}

// CreatePayment handles POST /api/payments. It returns the hosted checkout
// redirect URL for a pending booking.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.BookingID == "" || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Booking ID and amount are required"})
		return
	}

	sess, err := h.Service.InitiatePayment(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("Payment session creation failed",
			zap.String("bookingId", req.BookingID), zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Payment processing failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": sess.SessionID,
		"url":       sess.URL,
	})
}
