package validation

import (
	"regexp"
	"strings"

	"cartly.io/api/dtos"
	"cartly.io/api/models"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type UserParams struct {
	Name  string
	Email string
}

func ParseNewUser(req dtos.CreateUserRequest) (UserParams, error) {
	var errs []string

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "Name is required and must be a non-empty string")
	}

	if req.Email == "" {
		errs = append(errs, "Email is required")
	} else if !emailRegex.MatchString(req.Email) {
		errs = append(errs, "Email must be a valid email address")
	}

	if len(errs) > 0 {
		return UserParams{}, &models.ValidationError{Errors: errs}
	}

	return UserParams{Name: req.Name, Email: req.Email}, nil
}
