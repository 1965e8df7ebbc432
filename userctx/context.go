package userctx

import (
	"context"

	"github.com/blogem/finportal/models"
)

// Context key type
type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller of a request
type Identity struct {
	UserID   int64
	Username string
	Role     models.Role
}

// IsAdmin returns true when the caller has the admin role
func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// SetIdentity adds the caller identity to the request context
func SetIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// GetIdentity retrieves the caller identity from the request context
func GetIdentity(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// GetUsername returns the caller's username, or "anonymous" outside an authenticated request
func GetUsername(ctx context.Context) string {
	if id, ok := GetIdentity(ctx); ok {
		return id.Username
	}
	return "anonymous"
}
