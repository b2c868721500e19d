package dtos

import (
	"cartly.io/api/models"
)

type CreateListRequest struct {
	Title string `json:"title"`
}

// UpdateListRequest uses pointers so "absent" and "empty" stay apart;
// only supplied fields reach the update.
type UpdateListRequest struct {
	Title     *string   `json:"title"`
	MemberIDs *[]string `json:"member_ids"`
}

type AddItemRequest struct {
	Name     string `json:"name"`
	Quantity *int   `json:"quantity"`
}

type UpdateItemRequest struct {
	Name      *string `json:"name"`
	Quantity  *int    `json:"quantity"`
	Purchased *bool   `json:"purchased"`
}

type Pagination struct {
	HasNextPage bool    `json:"hasNextPage"`
	NextCursor  *string `json:"nextCursor"`
}

type ListPageResponse struct {
	Lists      []models.List `json:"lists"`
	Pagination Pagination    `json:"pagination"`
}

type AckResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
}
