package userRepo

import (
	"context"
	"errors"

	"tourvisto/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByAccountID returns the user document matching the auth-provider
// account ID.
func (r *mongoUserRepo) GetByAccountID(ctx context.Context, accountID string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"accountId": accountID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &models.NotFoundError{Resource: "user", ID: accountID}
		}
		return nil, &models.ProviderError{Provider: "database", Message: "failed to fetch user", Err: err}
	}
	return &user, nil
}

// DeleteByID removes a user document by ID.
func (r *mongoUserRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return &models.ProviderError{Provider: "database", Message: "failed to delete user", Err: err}
	}
	if res.DeletedCount == 0 {
		return &models.NotFoundError{Resource: "user", ID: id}
	}
	return nil
}
