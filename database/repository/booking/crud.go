package bookingRepo

import (
	"context"
	"errors"
	"time"

	"tourvisto/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking document and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return "", &models.ProviderError{Provider: "database", Message: "failed to create booking", Err: err}
	}
	return booking.ID, nil
}

// GetByID returns a booking by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &models.NotFoundError{Resource: "booking", ID: id}
		}
		return nil, &models.ProviderError{Provider: "database", Message: "failed to fetch booking", Err: err}
	}
	return &booking, nil
}

// UpdateStatus sets the status pair and returns the document as updated.
func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id, bookingStatus, paymentStatus string) (*models.Booking, error) {
	update := bson.M{"$set": bson.M{
		"bookingStatus": bookingStatus,
		"paymentStatus": paymentStatus,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &models.NotFoundError{Resource: "booking", ID: id}
		}
		return nil, &models.ProviderError{Provider: "database", Message: "failed to update booking", Err: err}
	}
	return &updated, nil
}

// ListByUser returns a user's bookings, newest first.
func (r *mongoBookingRepo) ListByUser(ctx context.Context, userID string, limit, offset int64) ([]models.Booking, error) {
	opts := options.Find().
		SetLimit(limit).
		SetSkip(offset).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, &models.ProviderError{Provider: "database", Message: "failed to list bookings", Err: err}
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, &models.ProviderError{Provider: "database", Message: "failed to decode bookings", Err: err}
	}
	return bookings, nil
}
