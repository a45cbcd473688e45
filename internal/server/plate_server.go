package server

import (
	"context"
	"fmt"
	"net/http"

	"plate_appraiser/internal/domain/entity"
	"plate_appraiser/pkg/httpx/reply"
	"plate_appraiser/pkg/httpx/req"
	"plate_appraiser/pkg/rest"
)

type plateService interface {
	ValuatePlate(ctx context.Context, raw string) (entity.PlateReport, error)
	FormatPlate(raw string) string
	ParsePlate(ctx context.Context, raw string) (entity.PlateInfo, error)
}

type PlateServer struct {
	plateService plateService
}

func NewPlateServer(plateService plateService) PlateServer {
	return PlateServer{
		plateService: plateService,
	}
}

func (s PlateServer) postV1PlateValuation(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PlateRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	report, err := s.plateService.ValuatePlate(ctx, request.Plate)
	if err != nil {
		return fmt.Errorf("plateService.ValuatePlate: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPlateValuation(report))

	return nil
}

func (s PlateServer) getV1PlateFormat(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	reply.JSON(ctx, w, http.StatusOK, rest.FormattedPlate{
		Plate: s.plateService.FormatPlate(r.URL.Query().Get("plate")),
	})

	return nil
}

func (s PlateServer) getV1PlateParse(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	info, err := s.plateService.ParsePlate(ctx, r.URL.Query().Get("plate"))
	if err != nil {
		return fmt.Errorf("plateService.ParsePlate: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPlateInfo(info))

	return nil
}
