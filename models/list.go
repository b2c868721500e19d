package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// List is a shopping list document. The owner is fixed at creation;
// members share item-level access but cannot rename, archive or delete.
type List struct {
	ID        bson.ObjectID   `json:"id" bson:"_id"`
	Title     string          `json:"title" bson:"title"`
	OwnerID   bson.ObjectID   `json:"owner_id" bson:"owner_id"`
	MemberIDs []bson.ObjectID `json:"member_ids" bson:"member_ids"`
	Items     []Item          `json:"items" bson:"items"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" bson:"updated_at"`
	// ArchivedAt is nil while the list is live. Once set the list
	// disappears from reads and refuses further item mutation.
	ArchivedAt *time.Time `json:"archived_at" bson:"archived_at"`
}

// Item is embedded in List.Items and has no identity outside its list.
type Item struct {
	ID              bson.ObjectID `json:"id" bson:"_id"`
	Name            string        `json:"name" bson:"name"`
	Quantity        int           `json:"quantity" bson:"quantity"`
	PurchasedAt     *time.Time    `json:"purchased_at" bson:"purchased_at"`
	CreatedByUserID bson.ObjectID `json:"created_by_user_id" bson:"created_by_user_id"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" bson:"updated_at"`
}
