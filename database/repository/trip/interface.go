package tripRepo

import (
	"context"

	"tourvisto/config"
	"tourvisto/database"
	"tourvisto/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TripRepository is the read-only CRUD contract over the trips collection.
type TripRepository interface {
	GetByID(ctx context.Context, id string) (*models.Trip, error)
	List(ctx context.Context, limit, offset int64) ([]models.Trip, int64, error)
}

type mongoTripRepo struct {
	coll *mongo.Collection
}

// NewMongoTripRepo returns a TripRepository backed by MongoDB.
func NewMongoTripRepo() TripRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoTripRepo{
		coll: db.Collection("trips"),
	}
}
