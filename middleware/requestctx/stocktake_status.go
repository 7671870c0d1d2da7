package requestctx

import (
	"context"

	"github.com/grasp-labs/ds-go-katana-models/models"
)

const stocktakeStatusKey ctxKey = "stocktake_status"

// GetStocktakeStatus returns the status filter parsed for the request, if any.
func GetStocktakeStatus(ctx context.Context) (models.StocktakeStatus, bool) {
	if ctx == nil {
		return "", false
	}
	s, ok := ctx.Value(stocktakeStatusKey).(models.StocktakeStatus)
	return s, ok
}

func SetStocktakeStatus(ctx context.Context, status models.StocktakeStatus) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, stocktakeStatusKey, status)
}
