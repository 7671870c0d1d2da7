package requestctx

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

// GetRequestID returns the request ID from context.
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	val, _ := ctx.Value(requestIDKey).(string)
	return val
}

// SetRequestID sets the request ID in the context.
func SetRequestID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDKey, id)
}

func GetOrNewRequestUUID(ctx context.Context) uuid.UUID {
	if u, err := uuid.Parse(GetRequestID(ctx)); err == nil {
		return u
	}
	return uuid.New()
}
