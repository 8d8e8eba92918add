package tripRepo

import (
	"context"
	"errors"

	"tourvisto/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID returns a trip by its ID.
func (r *mongoTripRepo) GetByID(ctx context.Context, id string) (*models.Trip, error) {
	var trip models.Trip
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&trip)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &models.NotFoundError{Resource: "trip", ID: id}
		}
		return nil, &models.ProviderError{Provider: "database", Message: "failed to fetch trip", Err: err}
	}
	return &trip, nil
}

// List returns trips ordered by creation time descending, newest first.
func (r *mongoTripRepo) List(ctx context.Context, limit, offset int64) ([]models.Trip, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, &models.ProviderError{Provider: "database", Message: "failed to count trips", Err: err}
	}

	opts := options.Find().
		SetLimit(limit).
		SetSkip(offset).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, &models.ProviderError{Provider: "database", Message: "failed to list trips", Err: err}
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, 0, &models.ProviderError{Provider: "database", Message: "failed to decode trips", Err: err}
	}
	return trips, total, nil
}
