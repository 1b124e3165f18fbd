// Package config loads server configuration from environment variables so
// main stays lean.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `env:"MERGINGTON_ADDR" envDefault:":8080"`
	Environment     string        `env:"MERGINGTON_ENV" envDefault:"development"`
	RequestTimeout  time.Duration `env:"MERGINGTON_REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"MERGINGTON_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MaxBodyBytes    int64         `env:"MERGINGTON_MAX_BODY_BYTES" envDefault:"65536"`
}

// FromEnv builds a Server config from environment variables.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
