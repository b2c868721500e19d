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

// List scopes accepted by ListService.List.
const (
	ScopeMine   = "mine"
	ScopeShared = "shared"
	ScopeAll    = "all"
)

type ListService interface {
	Create(ctx context.Context, callerID string, params validation.ListParams) (models.List, error)
	Get(ctx context.Context, listID, callerID string) (models.List, error)
	List(ctx context.Context, scope, cursor string, limit int, callerID string) ([]models.List, *string, error)
	Update(ctx context.Context, listID, callerID string, params validation.ListUpdateParams) (models.List, error)
	Leave(ctx context.Context, listID, callerID string) error
	Archive(ctx context.Context, listID, callerID string) (models.List, error)
	Delete(ctx context.Context, listID, callerID string) error
	AddItem(ctx context.Context, listID, callerID string, params validation.ItemParams) (models.List, error)
	UpdateItem(ctx context.Context, listID, itemID, callerID string, params validation.ItemUpdateParams) (models.List, error)
	RemoveItem(ctx context.Context, listID, itemID, callerID string) (models.List, error)
}

type ListServiceOptions struct {
	DB *mongo.Database
}

type listService struct {
	lists *mongo.Collection
}

func NewListService(opts ListServiceOptions) ListService {
	return &listService{
		lists: opts.DB.Collection(store.ListsCollection),
	}
}

// parseID converts a caller-supplied hex id. A malformed id is not a
// NotFound; it propagates as an opaque failure.
func parseID(hex string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("invalid object id %q - %w", hex, err)
	}
	return id, nil
}

// ownerOrMember is the authorization predicate: the caller owns the
// list or appears in member_ids.
func ownerOrMember(caller bson.ObjectID) bson.A {
	return bson.A{
		bson.M{"owner_id": caller},
		bson.M{"member_ids": caller},
	}
}

// activeListFilter matches one unarchived list the caller may touch.
// Every item mutation uses this as its conditional-write predicate so
// the permission check and the write land in a single store operation.
func activeListFilter(listID, caller bson.ObjectID) bson.M {
	return bson.M{
		"_id":         listID,
		"archived_at": nil,
		"$or":         ownerOrMember(caller),
	}
}

// scopeFilter translates a list scope into its match predicate.
func scopeFilter(scope string, caller bson.ObjectID) bson.M {
	switch scope {
	case ScopeMine:
		return bson.M{"owner_id": caller}
	case ScopeShared:
		return bson.M{"member_ids": caller, "owner_id": bson.M{"$ne": caller}}
	default:
		return bson.M{"$or": ownerOrMember(caller)}
	}
}

// trimPage drops the probe row fetched beyond the limit and derives the
// next cursor from the last row kept.
func trimPage(lists []models.List, limit int) ([]models.List, *string) {
	if len(lists) <= limit {
		return lists, nil
	}

	lists = lists[:limit]
	cursor := lists[len(lists)-1].ID.Hex()
	return lists, &cursor
}

func (s *listService) Create(ctx context.Context, callerID string, params validation.ListParams) (models.List, error) {
	owner, err := parseID(callerID)
	if err != nil {
		return models.List{}, err
	}

	now := time.Now().UTC()
	newList := models.List{
		ID:        bson.NewObjectID(),
		Title:     params.Title,
		OwnerID:   owner,
		MemberIDs: []bson.ObjectID{},
		Items:     []models.Item{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.lists.InsertOne(ctx, newList); err != nil {
		return models.List{}, fmt.Errorf("unable to create list - %w", err)
	}

	log.Info().Str("listID", newList.ID.Hex()).Str("ownerID", callerID).Msg("created list")

	return newList, nil
}

func (s *listService) Get(ctx context.Context, listID, callerID string) (models.List, error) {
	id, err := parseID(listID)
	if err != nil {
		return models.List{}, err
	}
	caller, err := parseID(callerID)
	if err != nil {
		return models.List{}, err
	}

	list := models.List{}
	err = s.lists.FindOne(ctx, activeListFilter(id, caller)).Decode(&list)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.List{}, models.ErrNotFound
		}
		return models.List{}, fmt.Errorf("unable to find list - %w", err)
	}

	return list, nil
}

func (s *listService) List(ctx context.Context, scope, cursor string, limit int, callerID string) ([]models.List, *string, error) {
	caller, err := parseID(callerID)
	if err != nil {
		return nil, nil, err
	}

	filter := scopeFilter(scope, caller)
	filter["archived_at"] = nil

	if cursor != "" {
		cursorID, err := parseID(cursor)
		if err != nil {
			return nil, nil, err
		}
		filter["_id"] = bson.M{"$lt": cursorID}
	}

	// One extra row probes for a next page without a second query.
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(limit + 1))

	cur, err := s.lists.Find(ctx, filter, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to list lists - %w", err)
	}

	lists := []models.List{}
	if err := cur.All(ctx, &lists); err != nil {
		return nil, nil, fmt.Errorf("unable to decode lists - %w", err)
	}

	lists, nextCursor := trimPage(lists, limit)
	return lists, nextCursor, nil
}

func (s *listService) Update(ctx context.Context, listID, callerID string, params validation.ListUpdateParams) (models.List, error) {
	id, err := parseID(listID)
	if err != nil {
		return models.List{}, err
	}
	owner, err := parseID(callerID)
	if err != nil {
		return models.List{}, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if params.Title != nil {
		set["title"] = *params.Title
	}
	if params.MemberIDs != nil {
		set["member_ids"] = *params.MemberIDs
	}

	// owner_id in the match predicate doubles as the permission check:
	// a non-owner simply matches nothing.
	list := models.List{}
	err = s.lists.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "owner_id": owner},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&list)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.List{}, models.ErrNotFound
		}
		return models.List{}, fmt.Errorf("unable to update list - %w", err)
	}

	return list, nil
}

func (s *listService) Leave(ctx context.Context, listID, callerID string) error {
	id, err := parseID(listID)
	if err != nil {
		return err
	}
	caller, err := parseID(callerID)
	if err != nil {
		return err
	}

	// Owners never appear in member_ids, so an owner cannot leave their
	// own list through this path.
	res, err := s.lists.UpdateOne(ctx,
		bson.M{"_id": id, "member_ids": caller},
		bson.M{
			"$pull": bson.M{"member_ids": caller},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return fmt.Errorf("unable to leave list - %w", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}

	log.Info().Str("listID", listID).Str("userID", callerID).Msg("left list")

	return nil
}

func (s *listService) Archive(ctx context.Context, listID, callerID string) (models.List, error) {
	id, err := parseID(listID)
	if err != nil {
		return models.List{}, err
	}
	owner, err := parseID(callerID)
	if err != nil {
		return models.List{}, err
	}

	// archived_at: null in the predicate makes a second archive fail
	// with the same NotFound as a missing list or a non-owner.
	now := time.Now().UTC()
	list := models.List{}
	err = s.lists.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "owner_id": owner, "archived_at": nil},
		bson.M{"$set": bson.M{"archived_at": now, "updated_at": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&list)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.List{}, models.ErrNotFound
		}
		return models.List{}, fmt.Errorf("unable to archive list - %w", err)
	}

	return list, nil
}

func (s *listService) Delete(ctx context.Context, listID, callerID string) error {
	id, err := parseID(listID)
	if err != nil {
		return err
	}
	owner, err := parseID(callerID)
	if err != nil {
		return err
	}

	res, err := s.lists.DeleteOne(ctx, bson.M{"_id": id, "owner_id": owner})
	if err != nil {
		return fmt.Errorf("unable to delete list - %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}

	log.Info().Str("listID", listID).Str("ownerID", callerID).Msg("deleted list")

	return nil
}

func (s *listService) AddItem(ctx context.Context, listID, callerID string, params validation.ItemParams) (models.List, error) {
	id, err := parseID(listID)
	if err != nil {
		return models.List{}, err
	}
	caller, err := parseID(callerID)
	if err != nil {
		return models.List{}, err
	}

	now := time.Now().UTC()
	item := models.Item{
		ID:              bson.NewObjectID(),
		Name:            params.Name,
		Quantity:        params.Quantity,
		CreatedByUserID: caller,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	list := models.List{}
	err = s.lists.FindOneAndUpdate(ctx,
		activeListFilter(id, caller),
		bson.M{
			"$push": bson.M{"items": item},
			"$set":  bson.M{"updated_at": now},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&list)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.List{}, models.ErrNotFound
		}
		return models.List{}, fmt.Errorf("unable to add item - %w", err)
	}

	return list, nil
}

func (s *listService) UpdateItem(ctx context.Context, listID, itemID, callerID string, params validation.ItemUpdateParams) (models.List, error) {
	id, err := parseID(listID)
	if err != nil {
		return models.List{}, err
	}
	item, err := parseID(itemID)
	if err != nil {
		return models.List{}, err
	}
	caller, err := parseID(callerID)
	if err != nil {
		return models.List{}, err
	}

	filter := activeListFilter(id, caller)
	filter["items._id"] = item

	now := time.Now().UTC()
	set := bson.M{
		"items.$.name":       params.Name,
		"items.$.quantity":   params.Quantity,
		"items.$.updated_at": now,
		"updated_at":         now,
	}
	if params.Purchased {
		set["items.$.purchased_at"] = now
	} else {
		set["items.$.purchased_at"] = nil
	}

	list := models.List{}
	err = s.lists.FindOneAndUpdate(ctx,
		filter,
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&list)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.List{}, models.ErrNotFound
		}
		return models.List{}, fmt.Errorf("unable to update item - %w", err)
	}

	return list, nil
}

func (s *listService) RemoveItem(ctx context.Context, listID, itemID, callerID string) (models.List, error) {
	id, err := parseID(listID)
	if err != nil {
		return models.List{}, err
	}
	item, err := parseID(itemID)
	if err != nil {
		return models.List{}, err
	}
	caller, err := parseID(callerID)
	if err != nil {
		return models.List{}, err
	}

	filter := activeListFilter(id, caller)
	filter["items._id"] = item

	list := models.List{}
	err = s.lists.FindOneAndUpdate(ctx,
		filter,
		bson.M{
			"$pull": bson.M{"items": bson.M{"_id": item}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&list)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.List{}, models.ErrNotFound
		}
		return models.List{}, fmt.Errorf("unable to remove item - %w", err)
	}

	return list, nil
}
