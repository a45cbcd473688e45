package middlewarex_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"plate_appraiser/pkg/middlewarex"
)

func TestHTTPMetrics(t *testing.T) {
	rq := require.New(t)

	registry := prometheus.NewRegistry()

	m, err := middlewarex.NewHTTPMetrics(registry)
	rq.NoError(err)

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/v1/regions", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/v1/plates/valuation", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	testCases := []struct {
		name   string
		method string
		target string
	}{
		{name: "Regions", method: http.MethodGet, target: "/v1/regions?q=x"},
		{name: "Regions again", method: http.MethodGet, target: "/v1/regions"},
		{name: "Bad plate", method: http.MethodPost, target: "/v1/plates/valuation"},
		{name: "Unknown route", method: http.MethodGet, target: "/nope"},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(*testing.T) {
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tc.method, tc.target, http.NoBody))
		})
	}

	rq.Equal(3, testutil.CollectAndCount(registry, "http_requests_total"))

	_, err = middlewarex.NewHTTPMetrics(registry)
	rq.Error(err)
}
