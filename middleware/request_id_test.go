package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/grasp-labs/ds-go-katana-models/internal/fakes"
	"github.com/grasp-labs/ds-go-katana-models/middleware"
	"github.com/grasp-labs/ds-go-katana-models/middleware/requestctx"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	logger := &fakes.MockLogger{}

	e.Use(middleware.RequestIDMiddleware(logger))

	var capturedRequestID string

	e.GET("/", func(c echo.Context) error {
		// extract the ID from context
		capturedRequestID = requestctx.GetRequestID(c.Request().Context())
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	// Assert response has a valid UUID
	headerID := res.Header.Get(middleware.HeaderRequestID)
	_, err := uuid.Parse(headerID)
	assert.NoError(t, err)
	assert.Equal(t, headerID, capturedRequestID)

	_, err = uuid.Parse(res.Header.Get(middleware.HeaderSessionID))
	assert.NoError(t, err)

	// Logger should be called
	assert.True(t, logger.InfoCalled())
	assert.True(t, strings.Contains(logger.LastMsg(), "Request started"))
}

func TestRequestIDMiddleware_PreservesClientIDs(t *testing.T) {
	e := echo.New()
	e.Use(middleware.RequestIDMiddleware(&fakes.MockLogger{}))

	var capturedSessionID string
	e.GET("/", func(c echo.Context) error {
		capturedSessionID = requestctx.GetSessionID(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})

	requestID := uuid.New().String()
	sessionID := uuid.New().String()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.HeaderRequestID, requestID)
	req.Header.Set(middleware.HeaderSessionID, sessionID)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, requestID, rec.Header().Get(middleware.HeaderRequestID))
	assert.Equal(t, sessionID, rec.Header().Get(middleware.HeaderSessionID))
	assert.Equal(t, sessionID, capturedSessionID)
}

func TestRequestIDMiddleware_ReplacesInvalidID(t *testing.T) {
	e := echo.New()
	e.Use(middleware.RequestIDMiddleware(&fakes.MockLogger{}))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.HeaderRequestID, "abc")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	got := rec.Header().Get(middleware.HeaderRequestID)
	assert.NotEqual(t, "abc", got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}
