package modules

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"plate_appraiser/pkg/logx"
	"plate_appraiser/pkg/probe"
)

// ProbeServer отдаёт /live и /ready. Пустой ListenAddress отключает сервер.
type ProbeServer struct {
	Name          string
	Version       string
	ListenAddress string
	Checks        map[string]probe.Check
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	if p.ListenAddress == "" {
		logger(ctx).Info("probe server disabled")

		return
	}

	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
		},
		p.Checks,
	)

	logger(ctx).Info("probe server started",
		slog.String(logx.FieldListenAddress, p.ListenAddress),
		slog.Int(logx.FieldChecks, len(p.Checks)),
	)

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}
