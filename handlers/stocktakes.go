package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/grasp-labs/ds-go-katana-models/middleware"
	"github.com/grasp-labs/ds-go-katana-models/middleware/interfaces"
	"github.com/grasp-labs/ds-go-katana-models/middleware/requestctx"
	"github.com/grasp-labs/ds-go-katana-models/models"
	"github.com/grasp-labs/ds-go-katana-models/store"
)

// Stocktakes serves stocktake snapshots held in a store.Store.
type Stocktakes struct {
	Store  *store.Store
	Logger interfaces.Logger
}

// Register mounts the routes on g. The status filter middleware is
// applied to the list route only.
func (h *Stocktakes) Register(g *echo.Group) {
	g.GET("/stocktakes", h.List, middleware.StocktakeStatusFilter(h.Logger))
	g.GET("/stocktakes/:id", h.Get)
}

// List handles GET /stocktakes[?status=TOKEN].
func (h *Stocktakes) List(c echo.Context) error {
	rc := requestctx.New(c.Request().Context(), middleware.Locale(c, middleware.DefaultLocale))

	items, err := h.Store.List(rc.Ctx, rc.Status)
	if err != nil {
		h.Logger.Error(rc.Ctx, "Failed to list stocktakes for request %s: %v", rc.RequestID, err)
		return c.JSON(middleware.ResolveErr(c, middleware.CodeInternal))
	}
	if items == nil {
		items = []models.Stocktake{}
	}

	return c.JSON(http.StatusOK, models.StocktakeList{Data: items})
}

// Get handles GET /stocktakes/:id.
func (h *Stocktakes) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(middleware.ResolveErr(c, middleware.CodeInvalidParameter, "id"))
	}

	st, err := h.Store.Get(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(middleware.ResolveErr(c, middleware.CodeNotFound, "stocktake"))
	case err != nil:
		h.Logger.Error(ctx, "Failed to read stocktake %d: %v", id, err)
		return c.JSON(middleware.ResolveErr(c, middleware.CodeInternal))
	}

	return c.JSON(http.StatusOK, st)
}
