package server

import (
	"net/http"

	"github.com/samber/lo"

	"plate_appraiser/internal/domain/entity"
	"plate_appraiser/pkg/httpx/reply"
	"plate_appraiser/pkg/rest"
)

type regionService interface {
	SearchRegions(keyword string) []entity.ProvinceMatch
}

type RegionServer struct {
	regionService regionService
}

func NewRegionServer(regionService regionService) RegionServer {
	return RegionServer{
		regionService: regionService,
	}
}

// getV1Regions без параметра q отдаёт все провинции.
func (s RegionServer) getV1Regions(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	matches := s.regionService.SearchRegions(r.URL.Query().Get("q"))

	reply.JSON(ctx, w, http.StatusOK, lo.Map(matches, func(m entity.ProvinceMatch, _ int) rest.ProvinceMatch {
		return newRESTProvinceMatch(m)
	}))

	return nil
}
