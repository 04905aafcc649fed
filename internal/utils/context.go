// Package utils provides general-purpose helpers used across the service:
// type-safe context keys, password hashing, JSON response writing,
// an HTTP client and JWT token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/novera/models"
)

// contextKey is a private type for context keys.
// A dedicated type prevents collisions with string keys set by other packages.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the authenticated user is stored.
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true : value is found and has the models.User type
//   - ok == false: value is missing or has an unexpected type
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
