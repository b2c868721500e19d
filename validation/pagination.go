package validation

import (
	"strconv"

	"cartly.io/api/models"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 10
)

// ParseLimit reads a caller-supplied page size and clamps it to [1,10].
// A missing or non-numeric value falls back to the default.
func ParseLimit(raw string) int {
	limit := defaultPageLimit
	if raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return limit
}

// ParseScope normalizes the lists filter query parameter. Empty means
// "all"; anything outside the known scopes is rejected rather than
// silently widening the query.
func ParseScope(raw string) (string, error) {
	switch raw {
	case "":
		return "all", nil
	case "mine", "shared", "all":
		return raw, nil
	default:
		return "", &models.ValidationError{Errors: []string{"filter must be one of mine, shared, all"}}
	}
}
