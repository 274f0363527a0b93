package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	MaxWithdrawal  decimal.Decimal `env:"MAX_WITHDRAWAL" envDefault:"100"`
	InitialBalance decimal.Decimal `env:"INITIAL_BALANCE" envDefault:"0"`
	LogLevel       string          `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string          `env:"LOG_FORMAT" envDefault:"json"`
	RenderIndent   bool            `env:"RENDER_INDENT" envDefault:"false"`
	TraceCalls     bool            `env:"TRACE_CALLS" envDefault:"false"`
}

func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env file is optional

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.MaxWithdrawal.IsNegative() {
		return fmt.Errorf("MAX_WITHDRAWAL must not be negative: %s", c.MaxWithdrawal)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}

func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown LOG_LEVEL %q", c.LogLevel)
	}
}
