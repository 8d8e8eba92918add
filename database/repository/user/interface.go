package userRepo

import (
	"context"

	"tourvisto/config"
	"tourvisto/database"
	"tourvisto/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository covers the user operations this service owns. Identity
// itself lives with the external auth provider; documents here only mirror it.
type UserRepository interface {
	GetByAccountID(ctx context.Context, accountID string) (*models.User, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a UserRepository backed by MongoDB.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoUserRepo{
		coll: db.Collection("users"),
	}
}
