// Package main is the entry point for the raytracer command.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/raytracer/internal/config"
	"github.com/Faultbox/raytracer/internal/engine/renderer"
	"github.com/Faultbox/raytracer/internal/imagefile"
	"github.com/Faultbox/raytracer/internal/logger"
	"github.com/Faultbox/raytracer/internal/scene"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <scene.txt>\n\nFlags:\n", filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage

	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	args := config.Args()
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, args[0]); err != nil {
		logger.Error("render failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, scenePath string) error {
	if _, err := os.Stat(scenePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("scene file %s does not exist", scenePath)
		}
		return err
	}

	s, err := scene.ParseFile(scenePath)
	if err != nil {
		return err
	}
	logger.Info("scene loaded",
		zap.String("path", scenePath),
		zap.Int("spheres", len(s.Spheres)),
		zap.Int("lights", len(s.Lights)),
		zap.Int("width", s.Width),
		zap.Int("height", s.Height))

	r, err := renderer.New(s, renderer.Config{
		Workers:       cfg.Render.Workers,
		ProgressEvery: cfg.Render.ProgressEvery,
	})
	if err != nil {
		return err
	}

	fb, stats, err := r.Render(ctx)
	if err != nil {
		return err
	}
	logger.Debug("render stats",
		zap.Int("pixels", stats.Pixels),
		zap.Int("workers", stats.Workers),
		zap.Duration("elapsed", stats.Elapsed))

	out := outputPath(cfg, s)
	var format imagefile.Format
	if cfg.Output.Format != "" {
		// Already validated by config.Load
		format, _ = imagefile.ParseFormat(cfg.Output.Format)
	}

	logger.Sugar.Infof("Saving image %s: %d x %d", out, fb.Width(), fb.Height())
	if err := imagefile.Save(out, fb, format); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}
	logger.Info("Done.")
	return nil
}

// outputPath resolves the image destination. A configured path replaces the scene's OUTPUT name.
func outputPath(cfg *config.Config, s *scene.Scene) string {
	name := s.Output
	if cfg.Output.Path != "" {
		name = cfg.Output.Path
	}
	if cfg.Output.Dir != "" && !filepath.IsAbs(name) {
		name = filepath.Join(cfg.Output.Dir, name)
	}
	return name
}
