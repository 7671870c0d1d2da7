package requestctx

import (
	"context"

	"github.com/google/uuid"

	"github.com/grasp-labs/ds-go-katana-models/models"
)

// RequestCtx is a snapshot of the request scoped values set by the
// middleware chain.
type RequestCtx struct {
	Ctx       context.Context
	RequestID uuid.UUID
	SessionID uuid.UUID
	Locale    string
	Status    *models.StocktakeStatus
}

func New(c context.Context, locale string) RequestCtx {
	rc := RequestCtx{
		Ctx:       c,
		Locale:    locale,
		RequestID: GetOrNewRequestUUID(c),
		SessionID: GetOrNewSessionUUID(c),
	}

	if status, ok := GetStocktakeStatus(c); ok {
		rc.Status = &status
	}

	return rc
}
