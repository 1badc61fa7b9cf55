// Package scene holds the declarative scene description consumed by the ray tracer.
package scene

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/raytracer/internal/engine/geometry"
	"github.com/Faultbox/raytracer/internal/engine/lighting"
	"github.com/Faultbox/raytracer/pkg/math"
)

// DefaultOutput is the output name used when the description has no OUTPUT line.
const DefaultOutput = "output.ppm"

// MaxOutputNameLen is the length OUTPUT names are truncated to.
const MaxOutputNameLen = 20

// Validation errors.
var (
	ErrMissingNear       = errors.New("scene has no positive near distance")
	ErrMissingResolution = errors.New("scene has no valid resolution")
	ErrNoLights          = errors.New("scene has no lights")
	ErrNoSpheres         = errors.New("scene has no spheres")
	ErrDegenerateFrustum = errors.New("scene frustum has zero width or height")
)

// Frustum is the camera's image-plane window at distance Near.
type Frustum struct {
	Near   float64
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
}

// Scene is the complete render input. It is read-only once validated.
type Scene struct {
	Frustum    Frustum
	Width      int
	Height     int
	Background math.Vec3
	Ambient    math.Vec3
	Spheres    []*geometry.Sphere
	Lights     []*lighting.PointLight
	Output     string
}

// New creates an empty scene with the default output name.
func New() *Scene {
	return &Scene{Output: DefaultOutput}
}

// AddSphere appends a sphere.
func (s *Scene) AddSphere(sp *geometry.Sphere) {
	s.Spheres = append(s.Spheres, sp)
}

// AddLight appends a light.
func (s *Scene) AddLight(l *lighting.PointLight) {
	s.Lights = append(s.Lights, l)
}

// SetOutput sets the output name, truncated to MaxOutputNameLen bytes.
func (s *Scene) SetOutput(name string) {
	if len(name) > MaxOutputNameLen {
		name = name[:MaxOutputNameLen]
	}
	s.Output = name
}

// Validate reports every missing required field at once.
// It must pass before any rendering begins.
func (s *Scene) Validate() error {
	var err error
	if s.Frustum.Near <= 0 {
		err = multierr.Append(err, ErrMissingNear)
	}
	if s.Width <= 0 || s.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %dx%d", ErrMissingResolution, s.Width, s.Height))
	}
	if s.Frustum.Left == s.Frustum.Right || s.Frustum.Top == s.Frustum.Bottom {
		err = multierr.Append(err, ErrDegenerateFrustum)
	}
	if len(s.Lights) == 0 {
		err = multierr.Append(err, ErrNoLights)
	}
	if len(s.Spheres) == 0 {
		err = multierr.Append(err, ErrNoSpheres)
	}
	return err
}
