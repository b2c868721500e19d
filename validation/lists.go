// Package validation parses request payloads before they reach the
// services. Each parser either returns the normalized fields or a
// *models.ValidationError carrying every message that applies.
package validation

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"cartly.io/api/dtos"
	"cartly.io/api/models"
)

type ListParams struct {
	Title string
}

func ParseNewList(req dtos.CreateListRequest) (ListParams, error) {
	var errs []string

	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, "Title is required and must be a non-empty string")
	}

	if len(errs) > 0 {
		return ListParams{}, &models.ValidationError{Errors: errs}
	}

	return ListParams{Title: req.Title}, nil
}

// ListUpdateParams keeps absent fields nil so the update only touches
// what the caller supplied.
type ListUpdateParams struct {
	Title     *string
	MemberIDs *[]bson.ObjectID
}

func ParseListUpdate(req dtos.UpdateListRequest) (ListUpdateParams, error) {
	var errs []string
	params := ListUpdateParams{}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			errs = append(errs, "Title must be a non-empty string if provided")
		} else {
			params.Title = req.Title
		}
	}

	if req.MemberIDs != nil {
		memberIDs := make([]bson.ObjectID, 0, len(*req.MemberIDs))
		valid := true
		for _, raw := range *req.MemberIDs {
			id, err := bson.ObjectIDFromHex(raw)
			if err != nil {
				valid = false
				break
			}
			memberIDs = append(memberIDs, id)
		}
		if !valid {
			errs = append(errs, "member_ids must be an array of strings representing ObjectIds")
		} else {
			params.MemberIDs = &memberIDs
		}
	}

	if len(errs) > 0 {
		return ListUpdateParams{}, &models.ValidationError{Errors: errs}
	}

	return params, nil
}

type ItemParams struct {
	Name     string
	Quantity int
}

func ParseNewItem(req dtos.AddItemRequest) (ItemParams, error) {
	var errs []string

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "Name is required and must be a non-empty string")
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity < 1 {
		errs = append(errs, "Quantity must be a number greater than 0")
	}

	if len(errs) > 0 {
		return ItemParams{}, &models.ValidationError{Errors: errs}
	}

	return ItemParams{Name: req.Name, Quantity: quantity}, nil
}

type ItemUpdateParams struct {
	Name      string
	Quantity  int
	Purchased bool
}

// ParseItemUpdate requires all three fields; an item update always
// states the full target state.
func ParseItemUpdate(req dtos.UpdateItemRequest) (ItemUpdateParams, error) {
	var errs []string
	params := ItemUpdateParams{}

	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		errs = append(errs, "Name is required and must be a non-empty string")
	} else {
		params.Name = *req.Name
	}

	if req.Quantity == nil || *req.Quantity < 1 {
		errs = append(errs, "Quantity must be a number greater than 0")
	} else {
		params.Quantity = *req.Quantity
	}

	if req.Purchased == nil {
		errs = append(errs, "Purchased must be a boolean")
	} else {
		params.Purchased = *req.Purchased
	}

	if len(errs) > 0 {
		return ItemUpdateParams{}, &models.ValidationError{Errors: errs}
	}

	return params, nil
}
