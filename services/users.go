package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"cartly.io/api/models"
	"cartly.io/api/store"
	"cartly.io/api/validation"
)

type UserService interface {
	Create(ctx context.Context, params validation.UserParams) (models.User, error)
	Get(ctx context.Context, userID string) (models.User, error)
	List(ctx context.Context, cursor string, limit int) ([]models.User, *string, error)
}

type UserServiceOptions struct {
	DB *mongo.Database
}

type userService struct {
	users *mongo.Collection
}

func NewUserService(opts UserServiceOptions) UserService {
	return &userService{
		users: opts.DB.Collection(store.UsersCollection),
	}
}

func (s *userService) Create(ctx context.Context, params validation.UserParams) (models.User, error) {
	now := time.Now().UTC()
	newUser := models.User{
		ID:        bson.NewObjectID(),
		Name:      params.Name,
		Email:     params.Email,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.users.InsertOne(ctx, newUser); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, &models.ValidationError{Errors: []string{"Email is already in use"}}
		}
		return models.User{}, fmt.Errorf("unable to create user - %w", err)
	}

	log.Info().Str("userID", newUser.ID.Hex()).Msg("created user")

	return newUser, nil
}

func (s *userService) Get(ctx context.Context, userID string) (models.User, error) {
	id, err := parseID(userID)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{}
	err = s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, models.ErrNotFound
		}
		return models.User{}, fmt.Errorf("unable to find user - %w", err)
	}

	return user, nil
}

func (s *userService) List(ctx context.Context, cursor string, limit int) ([]models.User, *string, error) {
	filter := bson.M{}
	if cursor != "" {
		cursorID, err := parseID(cursor)
		if err != nil {
			return nil, nil, err
		}
		filter["_id"] = bson.M{"$lt": cursorID}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(limit + 1))

	cur, err := s.users.Find(ctx, filter, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to list users - %w", err)
	}

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, nil, fmt.Errorf("unable to decode users - %w", err)
	}

	if len(users) <= limit {
		return users, nil, nil
	}

	users = users[:limit]
	next := users[len(users)-1].ID.Hex()
	return users, &next, nil
}
