package auth

import "context"

type ctxKey string

const userKey ctxKey = "userClaims"

func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, userKey, c)
}

func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(userKey).(*Claims)
	return c, ok
}

// UserID returns the authenticated subject's id, or zero when the request
// never passed the Authenticate middleware.
func UserID(ctx context.Context) uint {
	if c, ok := FromContext(ctx); ok {
		return c.UserID
	}
	return 0
}
