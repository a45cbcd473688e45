package modules_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"plate_appraiser/pkg/application/modules"
)

func TestHTTPServer_Run(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	modules.HTTPServer{ShutdownTimeout: time.Second}.Run(ctx, g, &http.Server{
		Addr:              ":10030",
		Handler:           mux,
		ReadHeaderTimeout: time.Second,
	})

	// Wait for server to start.
	time.Sleep(time.Second)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://:10030/ping", http.NoBody)
	rq.NoError(err)

	resp, err := http.DefaultClient.Do(req)
	rq.NoError(err)
	resp.Body.Close()

	rq.Equal(http.StatusNoContent, resp.StatusCode)

	cancel()

	rq.NoError(g.Wait())
}

func TestServers_Disabled(t *testing.T) {
	rq := require.New(t)

	g, ctx := errgroup.WithContext(context.Background())

	modules.MetricServer{}.Run(ctx, g)
	modules.ProbeServer{Name: "plate-appraiser"}.Run(ctx, g)

	rq.NoError(g.Wait())
}
