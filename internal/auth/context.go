package auth

import (
	"context"

	"github.com/evmarsh/blogforge-be/internal/models"
)

type contextKey string

const userContextKey = contextKey("currentUser")

// WithUser returns a context carrying the resolved account. A nil user marks
// the request as anonymous.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFrom returns the account resolved for this request, or nil when the
// request is anonymous.
func UserFrom(ctx context.Context) *models.User {
	user, ok := ctx.Value(userContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}
