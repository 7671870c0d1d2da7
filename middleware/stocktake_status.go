package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/grasp-labs/ds-go-katana-models/middleware/interfaces"
	"github.com/grasp-labs/ds-go-katana-models/middleware/requestctx"
	"github.com/grasp-labs/ds-go-katana-models/models"
)

const (
	statusParam = "status"
	statusKey   = "stocktakeStatus"
)

// StocktakeStatusFilter parses the optional ?status= query parameter.
// A missing parameter means no filter. Any token outside the closed set
// is answered with 400 and the handler is not called, as is a repeated
// parameter.
func StocktakeStatusFilter(logger interfaces.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			values, present := c.QueryParams()[statusParam]
			if !present {
				return next(c)
			}

			if len(values) > 1 {
				logger.Warning(c.Request().Context(), "Rejected repeated stocktake status filter: %v", values)
				return c.JSON(ResolveErr(c, CodeInvalidParameter, statusParam))
			}

			raw := ""
			if len(values) == 1 {
				raw = values[0]
			}

			status, err := models.ParseStocktakeStatus(raw)
			if err != nil {
				logger.Warning(c.Request().Context(), "Rejected stocktake status filter: %v", err)
				return c.JSON(ResolveErr(c, CodeInvalidEnumValue, raw, "status"))
			}

			c.Set(statusKey, status)
			ctx := requestctx.SetStocktakeStatus(c.Request().Context(), status)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// StocktakeStatus returns the filter set by StocktakeStatusFilter.
func StocktakeStatus(c echo.Context) (models.StocktakeStatus, bool) {
	s, ok := c.Get(statusKey).(models.StocktakeStatus)
	return s, ok
}
