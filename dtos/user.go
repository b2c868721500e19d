package dtos

import (
	"cartly.io/api/models"
)

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserPageResponse struct {
	Users      []models.User `json:"users"`
	Pagination Pagination    `json:"pagination"`
}
