// Package config loads host settings from the environment and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings of one game session.
type Config struct {
	Width    int    `env:"SNAKE_WIDTH" envDefault:"40"`
	CellSize int    `env:"SNAKE_CELL_SIZE" envDefault:"20"`
	FPS      int    `env:"SNAKE_FPS" envDefault:"5"`
	Seed     uint64 `env:"SNAKE_SEED" envDefault:"0"`
	Debug    bool   `env:"SNAKE_DEBUG" envDefault:"false"`
	Headless bool   `env:"SNAKE_HEADLESS" envDefault:"false"`
	Ticks    int    `env:"SNAKE_TICKS" envDefault:"100"`
}

// Parse reads the environment first and lets flags in args override it.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.Width, "width", cfg.Width, "Grid side length in cells")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Ticks per second")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 picks one)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Log step diagnostics")
	fs.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run without a window")
	fs.IntVar(&cfg.Ticks, "ticks", cfg.Ticks, "Ticks to run in headless mode")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no session can run with.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 2 {
		errs = append(errs, fmt.Errorf("width must be at least 2, got %d", c.Width))
	}
	if c.CellSize < 1 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %d", c.CellSize))
	}
	if c.FPS < 1 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.Ticks < 0 {
		errs = append(errs, fmt.Errorf("ticks must not be negative, got %d", c.Ticks))
	}
	return errors.Join(errs...)
}

// TickInterval is the time between two world updates.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
