package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/raytracer/internal/config"
	"github.com/Faultbox/raytracer/internal/scene"
)

const testScene = `NEAR 1
LEFT -1
RIGHT 1
BOTTOM -1
TOP 1
RES 4 4
SPHERE s1 0 0 -5 1 1 1 1 0 0 0.1 0.8 0.5 0 10
LIGHT l1 0 0 10 1 1 1
BACK 0 0 1
AMBIENT 0.2 0.2 0.2
OUTPUT tiny.ppm
`

func TestOutputPath(t *testing.T) {
	s := scene.New()
	s.SetOutput("scene.ppm")

	tests := []struct {
		name string
		out  config.OutputConfig
		want string
	}{
		{"scene name", config.OutputConfig{}, "scene.ppm"},
		{"override", config.OutputConfig{Path: "x.png"}, "x.png"},
		{"dir", config.OutputConfig{Dir: "renders"}, filepath.Join("renders", "scene.ppm")},
		{"absolute override ignores dir", config.OutputConfig{Path: "/tmp/a.ppm", Dir: "renders"}, "/tmp/a.ppm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Output = tt.out
			if got := outputPath(cfg, s); got != tt.want {
				t.Errorf("outputPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.txt")
	if err := os.WriteFile(scenePath, []byte(testScene), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Output.Dir = dir
	if err := run(context.Background(), cfg, scenePath); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "tiny.ppm"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n4 4\n255\n") {
		t.Errorf("unexpected header: %q", string(data[:min(len(data), 16)]))
	}
}

func TestRunMissingScene(t *testing.T) {
	err := run(context.Background(), config.Default(), filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("expected missing scene error, got %v", err)
	}
}
