// Package renderer drives the per-pixel trace loop and assembles the framebuffer.
package renderer

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/raytracer/internal/engine/camera"
	"github.com/Faultbox/raytracer/internal/engine/framebuffer"
	"github.com/Faultbox/raytracer/internal/engine/tracer"
	"github.com/Faultbox/raytracer/internal/logger"
	"github.com/Faultbox/raytracer/internal/scene"
	"github.com/Faultbox/raytracer/pkg/math"
)

// DefaultProgressEvery is the scanline interval between progress log entries.
const DefaultProgressEvery = 50

// Config holds renderer configuration.
type Config struct {
	Workers       int // Concurrent scanlines; <= 0 uses runtime.NumCPU()
	ProgressEvery int // Scanlines between progress logs; <= 0 uses DefaultProgressEvery
	Tracer        tracer.Options
}

// Stats summarizes a finished render.
type Stats struct {
	Pixels    int
	Scanlines int
	Workers   int
	Elapsed   time.Duration
}

// Renderer traces one primary ray per pixel.
type Renderer struct {
	config Config
	scene  *scene.Scene
	tracer *tracer.Tracer
	camera *camera.Camera
}

// New creates a renderer for a scene. The scene is validated once here.
func New(s *scene.Scene, cfg Config) (*Renderer, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.ProgressEvery <= 0 {
		cfg.ProgressEvery = DefaultProgressEvery
	}
	return &Renderer{
		config: cfg,
		scene:  s,
		tracer: tracer.NewWithOptions(s, cfg.Tracer),
		camera: camera.FromScene(s),
	}, nil
}

// Pixel returns the traced color of pixel (i, j).
func (r *Renderer) Pixel(i, j int) math.Vec3 {
	return r.tracer.TraceRay(r.camera.PrimaryRay(i, j))
}

// Render fills a framebuffer. Scanlines are independent and are traced in parallel;
// a cancelled context stops scheduling new scanlines.
func (r *Renderer) Render(ctx context.Context) (*framebuffer.Framebuffer, Stats, error) {
	nx, ny := r.scene.Width, r.scene.Height
	fb, err := framebuffer.New(nx, ny)
	if err != nil {
		return nil, Stats{}, err
	}

	logger.Info("rendering",
		zap.Int("width", nx),
		zap.Int("height", ny),
		zap.Int("spheres", len(r.scene.Spheres)),
		zap.Int("lights", len(r.scene.Lights)),
		zap.Int("workers", r.config.Workers),
	)

	start := time.Now()
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)
	for j := 0; j < ny; j++ {
		if gctx.Err() != nil {
			break
		}
		j := j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := 0; i < nx; i++ {
				fb.SetColor(i, j, r.Pixel(i, j))
			}
			if n := done.Add(1); n%int64(r.config.ProgressEvery) == 0 {
				logger.Sugar.Infof("Scanline %d/%d done", n, ny)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Stats{}, fmt.Errorf("render aborted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, fmt.Errorf("render aborted: %w", err)
	}

	stats := Stats{
		Pixels:    nx * ny,
		Scanlines: int(done.Load()),
		Workers:   r.config.Workers,
		Elapsed:   time.Since(start),
	}
	logger.Debug("render finished",
		zap.Int("pixels", stats.Pixels),
		zap.Duration("elapsed", stats.Elapsed),
	)
	return fb, stats, nil
}
