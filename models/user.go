package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is referenced by id from List.OwnerID, List.MemberIDs and
// Item.CreatedByUserID. References are not integrity-checked; a list
// may point at a user that no longer exists.
type User struct {
	ID        bson.ObjectID `json:"id" bson:"_id"`
	Name      string        `json:"name" bson:"name"`
	Email     string        `json:"email" bson:"email"`
	IsActive  bool          `json:"is_active" bson:"is_active"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}
