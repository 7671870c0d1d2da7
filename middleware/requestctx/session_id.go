package requestctx

import (
	"context"

	"github.com/google/uuid"
)

const sessionIDKey ctxKey = "session_id"

// GetSessionID returns the session ID from context.
func GetSessionID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	val, _ := ctx.Value(sessionIDKey).(string)
	return val
}

// SetSessionID sets the session ID in the context.
func SetSessionID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionIDKey, id)
}

// GetOrNewSessionUUID returns the session ID as uuid.UUID, generating a new one if missing/invalid.
func GetOrNewSessionUUID(ctx context.Context) uuid.UUID {
	if u, err := uuid.Parse(GetSessionID(ctx)); err == nil {
		return u
	}
	return uuid.New()
}
