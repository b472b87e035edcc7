// Package config reads the ambient settings of the desktop app from the
// environment. None of them affect the calculation.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	MinWindowWidth  = 360
	MinWindowHeight = 420
)

// Config holds the app's ambient settings
type Config struct {
	LogLevel     string  `env:"LIQUIDO_LOG_LEVEL" envDefault:"info"`
	JSONLogs     bool    `env:"LIQUIDO_JSON_LOGS" envDefault:"false"`
	Theme        string  `env:"LIQUIDO_THEME" envDefault:"light"`
	IconPath     string  `env:"LIQUIDO_ICON" envDefault:"assets/rocket.ico"`
	LogoPath     string  `env:"LIQUIDO_LOGO" envDefault:"assets/logo.png"`
	WindowWidth  float32 `env:"LIQUIDO_WINDOW_WIDTH" envDefault:"420"`
	WindowHeight float32 `env:"LIQUIDO_WINDOW_HEIGHT" envDefault:"680"`
}

// Load reads the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the given variables instead of the process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.Validate()
	return cfg, nil
}

// Validate clamps window dimensions to usable values
func (c *Config) Validate() {
	if c.WindowWidth < MinWindowWidth {
		c.WindowWidth = MinWindowWidth
	}
	if c.WindowHeight < MinWindowHeight {
		c.WindowHeight = MinWindowHeight
	}
}
