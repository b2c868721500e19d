package services

import (
	"errors"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"cartly.io/api/models"
)

func TestScopeFilter(t *testing.T) {
	caller := bson.NewObjectID()

	tests := []struct {
		name  string
		scope string
		want  bson.M
	}{
		{
			name:  "mine matches owned lists only",
			scope: ScopeMine,
			want:  bson.M{"owner_id": caller},
		},
		{
			name:  "shared matches memberships excluding owned",
			scope: ScopeShared,
			want:  bson.M{"member_ids": caller, "owner_id": bson.M{"$ne": caller}},
		},
		{
			name:  "all matches owned or member",
			scope: ScopeAll,
			want:  bson.M{"$or": bson.A{bson.M{"owner_id": caller}, bson.M{"member_ids": caller}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scopeFilter(tt.scope, caller)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("scopeFilter(%q) = %v, want %v", tt.scope, got, tt.want)
			}
		})
	}
}

func TestActiveListFilter(t *testing.T) {
	listID := bson.NewObjectID()
	caller := bson.NewObjectID()

	got := activeListFilter(listID, caller)
	want := bson.M{
		"_id":         listID,
		"archived_at": nil,
		"$or":         bson.A{bson.M{"owner_id": caller}, bson.M{"member_ids": caller}},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("activeListFilter = %v, want %v", got, want)
	}
}

func TestTrimPage(t *testing.T) {
	page := func(n int) []models.List {
		lists := make([]models.List, n)
		for i := range lists {
			lists[i] = models.List{ID: bson.NewObjectID()}
		}
		return lists
	}

	t.Run("extra probe row trimmed and cursor set", func(t *testing.T) {
		lists := page(11)
		kept, cursor := trimPage(lists, 10)
		if len(kept) != 10 {
			t.Fatalf("kept %d rows, want 10", len(kept))
		}
		if cursor == nil {
			t.Fatal("expected a next cursor")
		}
		if *cursor != kept[9].ID.Hex() {
			t.Errorf("cursor = %s, want id of last kept row %s", *cursor, kept[9].ID.Hex())
		}
	})

	t.Run("exactly limit rows means no next page", func(t *testing.T) {
		kept, cursor := trimPage(page(10), 10)
		if len(kept) != 10 {
			t.Fatalf("kept %d rows, want 10", len(kept))
		}
		if cursor != nil {
			t.Errorf("cursor = %v, want nil", *cursor)
		}
	})

	t.Run("short page means no next page", func(t *testing.T) {
		kept, cursor := trimPage(page(3), 10)
		if len(kept) != 3 || cursor != nil {
			t.Errorf("got %d rows, cursor %v", len(kept), cursor)
		}
	})

	t.Run("empty page", func(t *testing.T) {
		kept, cursor := trimPage(nil, 10)
		if len(kept) != 0 || cursor != nil {
			t.Errorf("got %d rows, cursor %v", len(kept), cursor)
		}
	})
}

func TestParseID(t *testing.T) {
	id := bson.NewObjectID()

	parsed, err := parseID(id.Hex())
	if err != nil {
		t.Fatalf("parseID(%s) returned %v", id.Hex(), err)
	}
	if parsed != id {
		t.Errorf("parseID round trip: got %s, want %s", parsed.Hex(), id.Hex())
	}

	_, err = parseID("not-an-object-id")
	if err == nil {
		t.Fatal("expected error for malformed id")
	}
	// A malformed id is an opaque failure, never a NotFound.
	if errors.Is(err, models.ErrNotFound) {
		t.Error("malformed id must not map to ErrNotFound")
	}
}
