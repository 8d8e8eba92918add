package routes

import (
	"net/http"
	"time"

	"tourvisto/handlers"
	"tourvisto/middleware"
	"tourvisto/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers wired at startup.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Payment *handlers.PaymentHandler
	Trip    *handlers.TripHandler
	User    *handlers.UserHandler
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookings := r.Group("/api/bookings")
	{
		bookings.POST("", hb.Booking.CreateBooking)
		bookings.POST("/confirm", hb.Booking.ConfirmBooking)
		bookings.POST("/:bookingId/reminder", hb.Booking.SendReminder)
		bookings.POST("/:bookingId/ticket-email", hb.Booking.SendTicketEmail)
		bookings.GET("/:bookingId", hb.Booking.GetBooking)
	}

	r.GET("/api/users/:userId/bookings", hb.Booking.ListUserBookings)
	r.POST("/api/payments", hb.Payment.CreatePayment)
}

// RegisterTripRoutes sets up the read-only trip catalogue endpoints.
func RegisterTripRoutes(r *gin.Engine, hb *HandlerBundle) {
	trips := r.Group("/api/trips")
	{
		trips.GET("", hb.Trip.ListTrips)
		trips.GET("/:tripId", hb.Trip.GetTrip)
	}
}

// RegisterUserRoutes sets up the admin-guarded user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	users := r.Group("/api/users")
	{
		users.Use(middleware.JWTAuthAdminMiddleware())
		users.DELETE("/:userId", hb.User.DeleteUser)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Wrong-method requests get a 405 instead of gin's default 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	RegisterBookingRoutes(r, hb)
	RegisterTripRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterHealthRoute(r)
}
