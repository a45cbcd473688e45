package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"plate_appraiser/pkg/logx"
)

// HTTPServer запускает API-сервер и останавливает его по отмене ctx, давая
// запросам в полёте ShutdownTimeout на завершение.
type HTTPServer struct {
	ShutdownTimeout time.Duration
}

func (h HTTPServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	httpServer *http.Server,
) {
	log := logger(ctx).With(slog.String("address", httpServer.Addr))

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.ShutdownTimeout)
		defer cancel()

		start := time.Now()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("httpServer.Shutdown", logx.Error(err))
			return fmt.Errorf("httpServer.Shutdown: %w", err)
		}

		log.Info("http server drained", slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()))

		return nil
	})

	g.Go(func() error {
		log.Info("http server started")

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer.ListenAndServe: %w", err)
		}

		log.Info("http server stopped")

		return nil
	})
}
