package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/grasp-labs/ds-go-katana-models/middleware"
)

func TestLocaleFromHeader(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"nb-NO,nb;q=0.9,en;q=0.8", "nb"},
		{"en-US", "en"},
		{"de-DE", "en"},
		{";;;invalid", "en"},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.want, middleware.LocaleFromHeader(c, "en"))
		})
	}
}

func TestLocaleMiddleware_SetsLocale(t *testing.T) {
	e := echo.New()
	e.Use(middleware.LocaleMiddleware(middleware.DefaultLocale))

	var got string
	e.GET("/", func(c echo.Context) error {
		got = middleware.Locale(c, "xx")
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "nb")
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "nb", got)
}

func TestWrapErr(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	he := middleware.WrapErr(c, middleware.CodeNotFound, "stocktake")
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, "stocktake not found", he.Message)
	assert.Equal(t, "404 not_found: stocktake not found", he.Error())

	status, _ := middleware.ResolveErr(c, "no_such_code")
	assert.Equal(t, http.StatusInternalServerError, status)
}
