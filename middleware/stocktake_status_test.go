package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/grasp-labs/ds-go-katana-models/internal/fakes"
	"github.com/grasp-labs/ds-go-katana-models/middleware"
	"github.com/grasp-labs/ds-go-katana-models/middleware/requestctx"
	"github.com/grasp-labs/ds-go-katana-models/models"
)

func serveFilter(t *testing.T, target string) (*httptest.ResponseRecorder, *fakes.MockLogger, bool, models.StocktakeStatus, bool) {
	t.Helper()

	e := echo.New()
	logger := &fakes.MockLogger{}

	var (
		called  bool
		status  models.StocktakeStatus
		present bool
	)
	e.GET("/stocktakes", func(c echo.Context) error {
		called = true
		status, present = middleware.StocktakeStatus(c)
		ctxStatus, ok := requestctx.GetStocktakeStatus(c.Request().Context())
		assert.Equal(t, present, ok)
		assert.Equal(t, status, ctxStatus)
		return c.NoContent(http.StatusNoContent)
	}, middleware.StocktakeStatusFilter(logger))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec, logger, called, status, present
}

func TestStocktakeStatusFilter_NoParam(t *testing.T) {
	rec, _, called, _, present := serveFilter(t, "/stocktakes")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, called)
	assert.False(t, present)
}

func TestStocktakeStatusFilter_ValidTokens(t *testing.T) {
	for _, s := range models.StocktakeStatuses() {
		t.Run(s.String(), func(t *testing.T) {
			rec, _, called, status, present := serveFilter(t, "/stocktakes?status="+s.String())

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.True(t, called)
			assert.True(t, present)
			assert.Equal(t, s, status)
		})
	}
}

func TestStocktakeStatusFilter_RejectsUnknown(t *testing.T) {
	for _, raw := range []string{"completed", "", "DONE", "In_Progress"} {
		t.Run(raw, func(t *testing.T) {
			rec, logger, called, _, _ := serveFilter(t, "/stocktakes?status="+raw)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, called, "handler must not run")
			assert.True(t, logger.WarningCalled())
			assert.Contains(t, rec.Body.String(), middleware.CodeInvalidEnumValue)
		})
	}
}

func TestStocktakeStatusFilter_RejectsRepeated(t *testing.T) {
	for _, target := range []string{
		"/stocktakes?status=DRAFT&status=bogus",
		"/stocktakes?status=DRAFT&status=DRAFT",
	} {
		t.Run(target, func(t *testing.T) {
			rec, logger, called, _, _ := serveFilter(t, target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, called, "handler must not run")
			assert.True(t, logger.WarningCalled())
			assert.Contains(t, rec.Body.String(), middleware.CodeInvalidParameter)
		})
	}
}
