package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grasp-labs/ds-go-katana-models/middleware"
	"github.com/grasp-labs/ds-go-katana-models/middleware/interfaces"
)

// Upstream reports whether the Katana API answers at all. Any HTTP
// response counts as reachable; authentication is not attempted.
type Upstream struct {
	Client  *http.Client
	BaseURL string
	Logger  interfaces.Logger
}

type upstreamStatus struct {
	BaseURL    string `json:"base_url"`
	Reachable  bool   `json:"reachable"`
	StatusCode int    `json:"status_code,omitempty"`
}

func (h *Upstream) Register(g *echo.Group) {
	g.GET("/upstream", h.Health)
}

// Health handles GET /upstream.
func (h *Upstream) Health(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, h.BaseURL, nil)
	if err != nil {
		h.Logger.Error(ctx, "Invalid upstream URL %q: %v", h.BaseURL, err)
		return c.JSON(middleware.ResolveErr(c, middleware.CodeInternal))
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, upstreamStatus{BaseURL: h.BaseURL})
	}
	defer resp.Body.Close()

	return c.JSON(http.StatusOK, upstreamStatus{
		BaseURL:    h.BaseURL,
		Reachable:  true,
		StatusCode: resp.StatusCode,
	})
}
