// Package auth implements the x-api-key middleware. The key table is
// fixed at startup; each key authenticates as exactly one user.
package auth

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
)

// DefaultKeys matches the accounts created by cmd/seed.
var DefaultKeys = map[string]string{
	"key-abc123": "674e1a2b3c4d5e6f7a8b9c01",
	"key-def456": "674e1a2b3c4d5e6f7a8b9c02",
}

type ctxKey struct{}

type unauthorizedResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Middleware rejects requests without a known x-api-key and stashes the
// authenticated user id on the request context.
func Middleware(keys map[string]string) func(http.Handler) http.Handler {
	if keys == nil {
		keys = DefaultKeys
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get("x-api-key")
			if apiKey == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, unauthorizedResponse{
					Error:   "Unauthorized",
					Message: "x-api-key header is required",
				})
				return
			}

			userID, ok := keys[apiKey]
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, unauthorizedResponse{
					Error:   "Unauthorized",
					Message: "Invalid API key",
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, userID)))
		})
	}
}

// UserID returns the id of the authenticated caller, if any.
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ctxKey{}).(string)
	return userID, ok
}
