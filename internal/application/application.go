// Package application собирает движки оценки, сервис appraisal и все
// долгоживущие модули в одну errgroup.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mymmrac/telego"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"plate_appraiser/internal/config"
	"plate_appraiser/internal/domain/entity"
	"plate_appraiser/internal/domain/service/appraisal"
	"plate_appraiser/internal/domain/service/phone"
	"plate_appraiser/internal/domain/service/plate"
	"plate_appraiser/internal/infrastructure/notifier"
	"plate_appraiser/internal/server"
	"plate_appraiser/internal/transport/bot"
	"plate_appraiser/pkg/application/modules"
	"plate_appraiser/pkg/contextx"
	"plate_appraiser/pkg/httpx"
	"plate_appraiser/pkg/logx"
	"plate_appraiser/pkg/middlewarex"
	"plate_appraiser/pkg/probe"
)

const (
	httpReadHeaderTimeout = 5 * time.Second
	alertBuffer           = 64

	canaryBody = "88888"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func Run(ctx context.Context, cfg config.Config) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	plates, err := plate.NewEngine(cfg.Valuation.PlateProfile())
	if err != nil {
		return fmt.Errorf("plate.NewEngine: %w", err)
	}

	svc, err := newService(cfg.Valuation, plates, registry)
	if err != nil {
		return fmt.Errorf("newService: %w", err)
	}

	httpMetrics, err := middlewarex.NewHTTPMetrics(registry)
	if err != nil {
		return fmt.Errorf("middlewarex.NewHTTPMetrics: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	if err = runBot(ctx, g, cfg.Bot, svc); err != nil {
		return fmt.Errorf("runBot: %w", err)
	}

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Checks: map[string]probe.Check{
			"valuation": canaryCheck(plates, cfg.Valuation.PremiumRegion+canaryBody),
		},
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, newHTTPServer(ctx, cfg.HTTP, svc, httpMetrics))

	logger(ctx).Info("application started",
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
		slog.String(logx.FieldProfile, cfg.Valuation.PhoneProfile),
	)

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func newService(cfg config.Valuation, plates *plate.Engine, reg prometheus.Registerer) (*appraisal.Service, error) {
	profile, err := phone.ProfileByName(cfg.PhoneProfile)
	if err != nil {
		return nil, fmt.Errorf("phone.ProfileByName: %w", err)
	}

	metrics, err := appraisal.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("appraisal.NewMetrics: %w", err)
	}

	return appraisal.NewService(plates, phone.NewEngine(profile)).
		WithCache(cfg.CacheTTL, cfg.CacheCleanup).
		WithMetrics(metrics), nil
}

// runBot запускает командного бота и нотификатор редких номеров, если они
// включены в конфиге. Оба ходят через один клиент Bot API.
func runBot(ctx context.Context, g *errgroup.Group, cfg config.Bot, svc *appraisal.Service) error {
	if !cfg.Enabled && !cfg.AlertsEnabled() {
		return nil
	}

	tg, err := telego.NewBot(cfg.Token,
		telego.WithHTTPClient(&http.Client{Transport: httpx.NewLoggingRoundTripper(nil)}),
		telego.WithDiscardLogger(),
	)
	if err != nil {
		return fmt.Errorf("telego.NewBot: %w", err)
	}

	if cfg.AlertsEnabled() {
		alerts := make(chan entity.PlateReport, alertBuffer)
		svc.WithAlerts(alerts)

		n := notifier.NewTelegramNotifier(tg, cfg.AlertChatID)

		g.Go(func() error {
			if err := n.Run(ctx, alerts); err != nil {
				return fmt.Errorf("notifier.Run: %w", err)
			}

			return nil
		})
	}

	if cfg.Enabled {
		b := bot.New(tg, svc, cfg.AllowedChatIDs)

		g.Go(func() error {
			if err := b.Run(ctx); err != nil {
				return fmt.Errorf("bot.Run: %w", err)
			}

			return nil
		})
	}

	return nil
}

func newHTTPServer(
	ctx context.Context,
	cfg config.HTTP,
	svc *appraisal.Service,
	httpMetrics *middlewarex.HTTPMetrics,
) *http.Server {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()
	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		httpMetrics.Middleware,
		middlewarex.RequestLogging(masker, cfg.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.LogFieldMaxLen),
	)

	server.NewServer(
		server.NewPlateServer(svc),
		server.NewTailServer(svc),
		server.NewRegionServer(svc),
		server.NewKeypadServer(svc),
	).RegisterRoutes(r)

	return &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.ListenAddress,
		Handler:           r,
		ReadHeaderTimeout: httpReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}

// canaryCheck валит readiness, если движок не оценивает премиальный номер из
// пяти одинаковых цифр как 极品. Сервис не задействуется.
func canaryCheck(plates appraisal.PlateEngine, canary string) probe.Check {
	return func(context.Context) error {
		v, err := plates.Valuate(canary)
		if err != nil {
			return fmt.Errorf("plates.Valuate: %w", err)
		}

		if v.Level != entity.PlateLevelSuperb {
			return fmt.Errorf("canary plate %s valued as %s", canary, v.Level)
		}

		return nil
	}
}
