package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig controls the HTTP server started by "projector serve".
type ServerConfig struct {
	Addr         string        `env:"PROJECTOR_ADDR"          envDefault:":8080"`
	ReadTimeout  time.Duration `env:"PROJECTOR_READ_TIMEOUT"  envDefault:"10s"`
	WriteTimeout time.Duration `env:"PROJECTOR_WRITE_TIMEOUT" envDefault:"10s"`
	Debug        bool          `env:"PROJECTOR_DEBUG"`
}

// LoadServerConfig reads server settings from the environment.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
