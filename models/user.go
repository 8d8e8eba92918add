package models

import "time"

// User mirrors the user document kept in sync with the external auth
// provider. AccountID is the provider-side identity; ID is the document id.
type User struct {
	ID        string    `bson:"id" json:"id"`
	AccountID string    `bson:"accountId" json:"accountId"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	ImageURL  string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	JoinedAt  time.Time `bson:"joinedAt" json:"joinedAt"`
}
