package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"plate_appraiser/internal/application"
	"plate_appraiser/internal/config"
	"plate_appraiser/pkg/contextx"
	"plate_appraiser/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", logx.Error(err))
		os.Exit(1)
	}

	log := slog.New(logx.NewHandler(os.Stdout, cfg.App.LogLevel))
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err = application.Run(ctx, cfg); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log.Info("application stopped")
}
