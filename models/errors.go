package models

import (
	"errors"
	"strings"
)

// ErrNotFound covers "does not exist", "no access" and "archived" alike,
// so a response never reveals which of the three failed.
var ErrNotFound = errors.New("entity not found")

// ValidationError carries the human-readable messages collected while
// parsing a request payload.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}
