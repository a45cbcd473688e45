package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App       App
	HTTP      HTTP
	Probe     Probe
	Metrics   Metrics
	Valuation Valuation
	Bot       Bot
}

type App struct {
	Name     string     `env:"APP_NAME" envDefault:"plate-appraiser"`
	Version  string     `env:"APP_VERSION" envDefault:"dev"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// Load читает необязательный .env, затем переменные окружения.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("config.Validate: %w", err)
	}

	return config, nil
}

func (c Config) Validate() error {
	if err := c.Valuation.Validate(); err != nil {
		return fmt.Errorf("valuation: %w", err)
	}

	if err := c.Bot.Validate(); err != nil {
		return fmt.Errorf("bot: %w", err)
	}

	return nil
}
