// Package config handles render settings loading and management.
package config

import (
	"fmt"
	"runtime"

	"go.uber.org/multierr"

	"github.com/Faultbox/raytracer/internal/imagefile"
	"github.com/Faultbox/raytracer/internal/logger"
)

// Config holds all renderer settings. Scene content lives in the scene file, not here.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds pixel loop settings.
type RenderConfig struct {
	Workers       int `yaml:"workers"`        // Concurrent scanlines
	ProgressEvery int `yaml:"progress_every"` // Scanlines between progress logs
}

// OutputConfig holds image output settings.
type OutputConfig struct {
	Path   string `yaml:"path"`   // Overrides the scene's OUTPUT name when set
	Dir    string `yaml:"dir"`    // Directory the output name is resolved against
	Format string `yaml:"format"` // ppm, png, bmp or tiff; empty infers from extension
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Workers:       runtime.NumCPU(),
			ProgressEvery: 50,
		},
		Output: OutputConfig{
			Path:   "",
			Dir:    "",
			Format: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var err error
	if c.Render.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("render.workers must be >= 0, got %d", c.Render.Workers))
	}
	if c.Render.ProgressEvery < 0 {
		err = multierr.Append(err, fmt.Errorf("render.progress_every must be >= 0, got %d", c.Render.ProgressEvery))
	}
	if c.Output.Format != "" {
		if _, ferr := imagefile.ParseFormat(c.Output.Format); ferr != nil {
			err = multierr.Append(err, fmt.Errorf("output.format: %w", ferr))
		}
	}
	if _, lerr := logger.ParseLevel(c.Logging.Level); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("logging.level: %w", lerr))
	}
	return err
}
