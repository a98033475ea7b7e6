package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Env holds the settings that come from environment variables rather than
// the TOML file: secrets and deployment toggles.
type Env struct {
	SentryDSN        string `env:"SENTRY_DSN"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName  string `env:"OTEL_SERVICE_NAME"`
}

// ClientEnv configures fitctl.
type ClientEnv struct {
	Server string `env:"FITCTL_SERVER, default=http://localhost:9100"`
}

func LoadEnv(ctx context.Context) (*Env, error) {
	return processEnv[Env](ctx, envconfig.OsLookuper())
}

func LoadClientEnv(ctx context.Context) (*ClientEnv, error) {
	return processEnv[ClientEnv](ctx, envconfig.OsLookuper())
}

func processEnv[T any](ctx context.Context, lookuper envconfig.Lookuper) (*T, error) {
	var target T
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &target,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return &target, nil
}
