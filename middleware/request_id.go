package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/grasp-labs/ds-go-katana-models/middleware/interfaces"
	"github.com/grasp-labs/ds-go-katana-models/middleware/requestctx"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderSessionID = "X-Session-ID"
)

// RequestIDMiddleware sets X-Request-ID and X-Session-ID when missing or
// not a UUID, and propagates both through the request context and the
// response headers.
func RequestIDMiddleware(logger interfaces.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			requestID := req.Header.Get(HeaderRequestID)
			if _, err := uuid.Parse(requestID); err != nil {
				requestID = uuid.New().String()
			}

			sessionID := req.Header.Get(HeaderSessionID)
			if _, err := uuid.Parse(sessionID); err != nil {
				sessionID = uuid.New().String()
			}

			ctx := requestctx.SetRequestID(req.Context(), requestID)
			ctx = requestctx.SetSessionID(ctx, sessionID)
			c.SetRequest(req.WithContext(ctx))

			res.Header().Set(HeaderRequestID, requestID)
			res.Header().Set(HeaderSessionID, sessionID)

			logger.Info(ctx, "Request started: %s %s", req.Method, req.URL.Path)
			return next(c)
		}
	}
}
