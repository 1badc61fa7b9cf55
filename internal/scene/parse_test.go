package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/raytracer/internal/engine/geometry"
	"github.com/Faultbox/raytracer/pkg/math"
)

const sampleScene = `
// camera
NEAR 1
LEFT -1
RIGHT 1
BOTTOM -1
TOP 1
RES 64 48

sphere s1 0 0 -10 2 4 2 0.5 0 0 1 1 0.9 0 50
SPHERE s2 4 4 -10 1 2 1 0 0.5 0 1 1 0.9 0.5 50
LIGHT l1 0 0 0 0.3 0.3 0.3
Light l2 10 10 -10 0.9 0.9 0

BACK 1 1 1
AMBIENT 0.2 0.2 0.2
OUTPUT testAmbientAndDiffuse.ppm
`

func TestParseSample(t *testing.T) {
	s, err := Parse(strings.NewReader(sampleScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := Frustum{Near: 1, Left: -1, Right: 1, Bottom: -1, Top: 1}
	if s.Frustum != want {
		t.Errorf("frustum = %+v, want %+v", s.Frustum, want)
	}
	if s.Width != 64 || s.Height != 48 {
		t.Errorf("resolution = %dx%d, want 64x48", s.Width, s.Height)
	}
	if len(s.Spheres) != 2 {
		t.Fatalf("expected 2 spheres, got %d", len(s.Spheres))
	}
	if len(s.Lights) != 2 {
		t.Fatalf("expected 2 lights, got %d", len(s.Lights))
	}

	s2 := s.Spheres[1]
	if s2.Name != "s2" {
		t.Errorf("sphere order: got %q, want s2", s2.Name)
	}
	m := s2.Material
	if m.Color != (math.Vec3{X: 0, Y: 0.5, Z: 0}) || m.Ka != 1 || m.Kd != 1 || m.Ks != 0.9 || m.Kr != 0.5 || m.SpecularExponent != 50 {
		t.Errorf("sphere material = %+v", m)
	}
	center := s2.Transform.PointToWorld(math.Vec3{})
	if center != (math.Vec3{X: 4, Y: 4, Z: -10}) {
		t.Errorf("sphere center = %v, want (4,4,-10)", center)
	}

	l2 := s.Lights[1]
	if l2.Name != "l2" || l2.Position != (math.Vec3{X: 10, Y: 10, Z: -10}) || l2.Intensity != (math.Vec3{X: 0.9, Y: 0.9}) {
		t.Errorf("light = %+v", l2)
	}
	if s.Background != (math.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("background = %v", s.Background)
	}
	if s.Ambient != (math.Vec3{X: 0.2, Y: 0.2, Z: 0.2}) {
		t.Errorf("ambient = %v", s.Ambient)
	}
	// Truncated to 20 characters.
	if s.Output != "testAmbientAndDiffus" {
		t.Errorf("output = %q, want %q", s.Output, "testAmbientAndDiffus")
	}
}

func TestParseDefaultOutput(t *testing.T) {
	src := strings.Replace(sampleScene, "OUTPUT testAmbientAndDiffuse.ppm", "", 1)
	s, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Output != DefaultOutput {
		t.Errorf("output = %q, want %q", s.Output, DefaultOutput)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
		token   string
	}{
		{"unknown keyword", "CAMERA 1 2 3", ErrUnknownKeyword, "CAMERA"},
		{"too few args", "RES 64", ErrArgCount, "RES"},
		{"too many args", "NEAR 1 2", ErrArgCount, "NEAR"},
		{"bad float", "LEFT abc", ErrBadNumber, "abc"},
		{"bad int", "RES 64 4.5", ErrBadNumber, "4.5"},
		{"bad exponent", "SPHERE s 0 0 0 1 1 1 1 1 1 1 1 1 1 x", ErrBadNumber, "x"},
		{"zero scale", "SPHERE flat 0 0 -5 1 0 1 1 1 1 1 1 1 1 1", geometry.ErrDegenerateScale, "flat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "// header\nNEAR 1\n" + tt.line + "\n"
			_, err := Parse(strings.NewReader(src))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if pe.Line != 3 {
				t.Errorf("line = %d, want 3", pe.Line)
			}
			if pe.Token != tt.token {
				t.Errorf("token = %q, want %q", pe.Token, tt.token)
			}
		})
	}
}

func TestParseMissingFields(t *testing.T) {
	_, err := Parse(strings.NewReader("// nothing here\n"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []error{ErrMissingNear, ErrMissingResolution, ErrNoLights, ErrNoSpheres} {
		if !errors.Is(err, want) {
			t.Errorf("error %q does not report %v", err, want)
		}
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.txt")
	if err := os.WriteFile(path, []byte(sampleScene), 0644); err != nil {
		t.Fatalf("failed to write scene: %v", err)
	}

	s, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(s.Spheres) != 2 {
		t.Errorf("expected 2 spheres, got %d", len(s.Spheres))
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}
