// internal/utils/context.go
package utils

import "context"

type contextKey string

const userIDKey contextKey = "user_id"

// ContextWithUserID attaches the authenticated user's id to ctx. Set by
// the auth middleware, read by the identity gate.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
