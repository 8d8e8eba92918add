// File: tourvisto/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tourvisto/config"
	"tourvisto/database"
	bookingRepo "tourvisto/database/repository/booking"
	tripRepo "tourvisto/database/repository/trip"
	userRepo "tourvisto/database/repository/user"
	"tourvisto/handlers"
	"tourvisto/middleware"
	"tourvisto/routes"
	"tourvisto/services/booking"
	"tourvisto/services/notification"
	"tourvisto/services/payment"
	"tourvisto/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	trips := tripRepo.NewMongoTripRepo()
	users := userRepo.NewMongoUserRepo()
	bookings := bookingRepo.NewMongoBookingRepo()

	// notification senders. Misconfiguration is reported at send time as a
	// validation failure; a warning here keeps startup honest.
	emailCfg := notification.EmailConfig{
		Host: config.AppConfig.EmailHost,
		Port: config.AppConfig.EmailPort,
		User: config.AppConfig.EmailUser,
		Pass: config.AppConfig.EmailPass,
		From: config.AppConfig.EmailFrom,
	}
	if err := notification.ValidateEmailConfig(emailCfg); err != nil {
		logger.Warn("Email sender not fully configured", zap.Error(err))
	}
	emailSender := notification.NewEmailSender(emailCfg, logger)

	smsSender := notification.NewSMSSender(notification.SMSConfig{
		AccountSID: config.AppConfig.TwilioAccountSID,
		AuthToken:  config.AppConfig.TwilioAuthToken,
		FromNumber: config.AppConfig.TwilioPhoneNumber,
		Region:     notification.IndiaRegion,
	}, logger)

	checkoutService := payment.NewStripeCheckoutService(config.AppConfig.BaseURL, logger)

	bookingService := &booking.DefaultBookingService{
		Repo:     bookings,
		Payments: checkoutService,
		Email:    emailSender,
		SMS:      smsSender,
		Planner:  booking.NewFlightPlanner(time.Now().UnixNano()),
		Logger:   logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Payment: handlers.NewPaymentHandler(bookingService, logger),
		Trip:    handlers.NewTripHandler(trips, utils.GetCacheClient(), logger),
		User:    handlers.NewUserHandler(users, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
