package authctx

import (
	"context"

	"arfilla-backend/internal/domain"
)

type contextKey string

const userContextKey contextKey = "currentUser"

// CurrentUser is the authenticated principal carried on the request
// context. Role distinguishes admins from customers.
type CurrentUser struct {
	ID    int64
	Email string
	Nama  string
	Role  domain.UserRole
}

func WithCurrentUser(ctx context.Context, user CurrentUser) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func FromContext(ctx context.Context) *CurrentUser {
	val, ok := ctx.Value(userContextKey).(CurrentUser)
	if !ok {
		return nil
	}
	return &val
}
