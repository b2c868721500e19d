// Package store owns the MongoDB connection and collection bootstrap.
// The handle is opened once at process start and injected into the
// services; the process entry point is responsible for closing it.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	ListsCollection = "shopping_lists"
	UsersCollection = "users"
)

// Connect opens and pings a MongoDB client and returns the named
// database handle along with the client for shutdown.
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("unable to connect to mongodb - %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("unable to ping mongodb - %w", err)
	}

	return client, client.Database(database), nil
}

// EnsureIndexes creates the secondary indexes the list queries lean on.
// The compound indexes mirror the scope filters: owner or membership,
// then archival state, then descending id for the cursor walk.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	listIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "owner_id", Value: 1}, {Key: "archived_at", Value: 1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("owner_archived_id_idx"),
		},
		{
			Keys:    bson.D{{Key: "member_ids", Value: 1}, {Key: "archived_at", Value: 1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("members_archived_id_idx"),
		},
		{
			Keys:    bson.D{{Key: "archived_at", Value: 1}, {Key: "owner_id", Value: 1}},
			Options: options.Index().SetName("archived_owner_idx"),
		},
		{
			Keys:    bson.D{{Key: "member_ids", Value: 1}},
			Options: options.Index().SetName("members_idx"),
		},
		{
			Keys:    bson.D{{Key: "items._id", Value: 1}},
			Options: options.Index().SetName("items_id_idx"),
		},
		{
			Keys:    bson.D{{Key: "archived_at", Value: 1}, {Key: "member_ids", Value: 1}},
			Options: options.Index().SetName("archived_members_idx"),
		},
	}

	if _, err := db.Collection(ListsCollection).Indexes().CreateMany(ctx, listIndexes); err != nil {
		return fmt.Errorf("unable to create %s indexes - %w", ListsCollection, err)
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique_idx"),
		},
	}

	if _, err := db.Collection(UsersCollection).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("unable to create %s indexes - %w", UsersCollection, err)
	}

	return nil
}
