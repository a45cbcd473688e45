package handler

import (
	"context"

	"plate_appraiser/internal/domain/entity"
	"plate_appraiser/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type appraiser interface {
	ValuatePlate(ctx context.Context, raw string) (entity.PlateReport, error)
	ValuateTail(ctx context.Context, raw string) (entity.TailValuation, error)
	SearchRegions(keyword string) []entity.ProvinceMatch
}

type Handler struct {
	svc appraiser
}

func New(svc appraiser) *Handler {
	return &Handler{
		svc: svc,
	}
}
