package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a document in the `users` collection. The password hash and salt
// never leave the server: both carry `json:"-"` so every response that
// serializes a user strips them. Token holds the most recently issued
// access token; it is an audit value only and is never consulted when
// verifying requests.
type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name" json:"name"`
	Email     string               `bson:"email" json:"email"`
	Password  string               `bson:"password" json:"-"`
	Salt      string               `bson:"salt" json:"-"`
	Token     string               `bson:"token,omitempty" json:"token,omitempty"`
	TaskIDs   []primitive.ObjectID `bson:"tasks" json:"tasks"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
}
