// Command seed drops and re-creates the fixture users and shopping
// lists, then ensures the secondary indexes. It reuses the same env
// configuration as the API server.
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"

	"cartly.io/api/config"
	"cartly.io/api/models"
	"cartly.io/api/store"
)

func oid(hex string) bson.ObjectID {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		log.Fatal().Err(err).Str("hex", hex).Msg("bad fixture id")
	}
	return id
}

func main() {
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load config")
	}

	ctx := context.Background()
	client, db, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to init mongo client")
	}
	defer client.Disconnect(ctx)

	now := time.Now().UTC()

	users := []models.User{
		{ID: oid("674e1a2b3c4d5e6f7a8b9c01"), Name: "James Smith", Email: "james.smith@example.com", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: oid("674e1a2b3c4d5e6f7a8b9c02"), Name: "Mary Johnson", Email: "mary.johnson@example.com", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: oid("674e1a2b3c4d5e6f7a8b9c03"), Name: "John Williams", Email: "john.williams@example.com", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: oid("674e1a2b3c4d5e6f7a8b9c04"), Name: "Patricia Brown", Email: "patricia.brown@example.com", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: oid("674e1a2b3c4d5e6f7a8b9c05"), Name: "Robert Jones", Email: "robert.jones@example.com", IsActive: false, CreatedAt: now, UpdatedAt: now},
	}

	item := func(hex, name string, quantity int, owner bson.ObjectID, purchased bool) models.Item {
		it := models.Item{
			ID:              oid(hex),
			Name:            name,
			Quantity:        quantity,
			CreatedByUserID: owner,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if purchased {
			t := now
			it.PurchasedAt = &t
		}
		return it
	}

	jamesID := users[0].ID
	maryID := users[1].ID
	johnID := users[2].ID

	lists := []models.List{
		{
			ID:        oid("674e1a2b3c4d5e6f7a8b9d01"),
			Title:     "Weekly Groceries",
			OwnerID:   jamesID,
			MemberIDs: []bson.ObjectID{maryID, johnID},
			Items: []models.Item{
				item("674e1a2b3c4d5e6f7a8b9e01", "Milk", 2, jamesID, false),
				item("674e1a2b3c4d5e6f7a8b9e02", "Bread", 1, jamesID, true),
				item("674e1a2b3c4d5e6f7a8b9e03", "Eggs", 12, jamesID, false),
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        oid("674e1a2b3c4d5e6f7a8b9d02"),
			Title:     "Party Supplies",
			OwnerID:   maryID,
			MemberIDs: []bson.ObjectID{jamesID, users[4].ID},
			Items: []models.Item{
				item("674e1a2b3c4d5e6f7a8b9e04", "Balloons", 20, maryID, false),
				item("674e1a2b3c4d5e6f7a8b9e05", "Cake", 1, maryID, false),
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        oid("674e1a2b3c4d5e6f7a8b9d03"),
			Title:     "Office Supplies",
			OwnerID:   johnID,
			MemberIDs: []bson.ObjectID{},
			Items: []models.Item{
				item("674e1a2b3c4d5e6f7a8b9e06", "Pens", 5, johnID, true),
				item("674e1a2b3c4d5e6f7a8b9e07", "Notebooks", 3, johnID, false),
				item("674e1a2b3c4d5e6f7a8b9e08", "Stapler", 1, johnID, false),
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        oid("674e1a2b3c4d5e6f7a8b9d04"),
			Title:     "Holiday Dinner",
			OwnerID:   jamesID,
			MemberIDs: []bson.ObjectID{users[4].ID, maryID},
			Items: []models.Item{
				item("674e1a2b3c4d5e6f7a8b9e25", "Turkey", 1, jamesID, false),
				item("674e1a2b3c4d5e6f7a8b9e26", "Potatoes", 4, jamesID, false),
				item("674e1a2b3c4d5e6f7a8b9e27", "Wine", 2, jamesID, true),
				item("674e1a2b3c4d5e6f7a8b9e28", "Dessert", 1, jamesID, false),
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	db.Collection(store.UsersCollection).Drop(ctx)
	db.Collection(store.ListsCollection).Drop(ctx)

	userDocs := make([]interface{}, len(users))
	for i, u := range users {
		userDocs[i] = u
	}
	if _, err := db.Collection(store.UsersCollection).InsertMany(ctx, userDocs); err != nil {
		log.Fatal().Err(err).Msg("unable to seed users")
	}

	listDocs := make([]interface{}, len(lists))
	for i, l := range lists {
		listDocs[i] = l
	}
	if _, err := db.Collection(store.ListsCollection).InsertMany(ctx, listDocs); err != nil {
		log.Fatal().Err(err).Msg("unable to seed lists")
	}

	if err := store.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("unable to ensure indexes")
	}

	log.Info().Int("users", len(users)).Int("lists", len(lists)).Msg("seeded database")
}
