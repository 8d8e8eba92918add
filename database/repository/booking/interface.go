package bookingRepo

import (
	"context"

	"tourvisto/config"
	"tourvisto/database"
	"tourvisto/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the CRUD contract over the bookings collection.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// UpdateStatus sets the lifecycle status pair and returns the updated
	// document. The document update is the only serialization point for
	// concurrent confirmations of the same booking.
	UpdateStatus(ctx context.Context, id, bookingStatus, paymentStatus string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string, limit, offset int64) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
