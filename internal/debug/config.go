package debug

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-driven debug settings.
type Config struct {
	Path string `env:"INPUTFMT_DEBUG"` // Log file path; empty disables logging
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("debug: parse environment: %w", err)
	}
	return cfg, nil
}
