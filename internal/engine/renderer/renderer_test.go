package renderer

import (
	"bytes"
	"context"
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/raytracer/internal/engine/geometry"
	"github.com/Faultbox/raytracer/internal/engine/lighting"
	"github.com/Faultbox/raytracer/internal/scene"
	"github.com/Faultbox/raytracer/pkg/math"
)

const kd = 0.8

// poleScene looks at a unit sphere down -Z with a light on the view axis behind the camera,
// so the center pixel sees the pole facing the light.
func poleScene(t *testing.T) *scene.Scene {
	t.Helper()
	s := scene.New()
	s.Frustum = scene.Frustum{Near: 1, Left: -1, Right: 1, Bottom: -1, Top: 1}
	s.Width, s.Height = 11, 11
	s.Background = math.Vec3{X: 0, Y: 0, Z: 1}

	mat := geometry.Material{Color: math.Vec3{X: 1, Y: 1, Z: 1}, Ka: 1, Kd: kd}
	sp, err := geometry.NewSphere("ball", math.Vec3{Z: -5}, math.Vec3{X: 1, Y: 1, Z: 1}, mat)
	if err != nil {
		t.Fatal(err)
	}
	s.AddSphere(sp)
	s.AddLight(lighting.NewPointLight("key", math.Vec3{Z: 10}, math.Vec3{X: 1, Y: 1, Z: 1}))
	return s
}

func TestRenderCenterPixelDiffuse(t *testing.T) {
	r, err := New(poleScene(t), Config{Workers: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c := r.Pixel(5, 5)
	for _, ch := range []float64{c.X, c.Y, c.Z} {
		if gomath.Abs(ch-kd) > 1e-9 {
			t.Fatalf("center pixel = %v, want %v per channel", c, kd)
		}
	}

	fb, stats, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if stats.Pixels != 121 || stats.Scanlines != 11 {
		t.Errorf("stats = %+v", stats)
	}

	red, _, _ := fb.At(5, 5)
	if red < 203 || red > 204 {
		t.Errorf("center byte = %d, want ~204", red)
	}
	// Corners miss the sphere and show the background.
	if r0, g0, b0 := fb.At(0, 0); r0 != 0 || g0 != 0 || b0 != 255 {
		t.Errorf("corner = (%d,%d,%d), want background (0,0,255)", r0, g0, b0)
	}
}

func TestRenderParallelMatchesSequential(t *testing.T) {
	s := poleScene(t)
	s.Width, s.Height = 32, 24

	seq, err := New(s, Config{Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	par, err := New(s, Config{Workers: 8, ProgressEvery: 5})
	if err != nil {
		t.Fatal(err)
	}

	a, _, err := seq.Render(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := par.Render(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix(), b.Pix()) {
		t.Error("parallel render differs from sequential render")
	}
}

func TestRenderCancelled(t *testing.T) {
	r, err := New(poleScene(t), Config{})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := r.Render(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Render error = %v, want context.Canceled", err)
	}
}

func TestNewRejectsInvalidScene(t *testing.T) {
	s := poleScene(t)
	s.Lights = nil

	if _, err := New(s, Config{}); !errors.Is(err, scene.ErrNoLights) {
		t.Errorf("New error = %v, want ErrNoLights", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	r, err := New(poleScene(t), Config{})
	if err != nil {
		t.Fatal(err)
	}
	if r.config.Workers <= 0 {
		t.Errorf("workers = %d, want > 0", r.config.Workers)
	}
	if r.config.ProgressEvery != DefaultProgressEvery {
		t.Errorf("progress interval = %d, want %d", r.config.ProgressEvery, DefaultProgressEvery)
	}
}
