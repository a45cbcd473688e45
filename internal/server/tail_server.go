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

type tailService interface {
	ValuateTail(ctx context.Context, raw string) (entity.TailValuation, error)
}

type TailServer struct {
	tailService tailService
}

func NewTailServer(tailService tailService) TailServer {
	return TailServer{
		tailService: tailService,
	}
}

func (s TailServer) postV1TailValuation(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.TailRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	tail, err := s.tailService.ValuateTail(ctx, request.Number)
	if err != nil {
		return fmt.Errorf("tailService.ValuateTail: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTTailValuation(tail))

	return nil
}
