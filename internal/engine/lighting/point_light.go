// Package lighting provides point light support for the ray tracer.
package lighting

import (
	"github.com/Faultbox/raytracer/pkg/math"
)

// PointLight is an omnidirectional light with no distance attenuation.
type PointLight struct {
	Name      string
	Position  math.Vec3 // World position
	Intensity math.Vec3 // Per-channel intensity, unclamped
}

// NewPointLight creates a point light.
func NewPointLight(name string, position, intensity math.Vec3) *PointLight {
	return &PointLight{
		Name:      name,
		Position:  position,
		Intensity: intensity,
	}
}

// DirectionFrom returns the unit direction from p towards the light and the distance to it.
func (l *PointLight) DirectionFrom(p math.Vec3) (dir math.Vec3, dist float64) {
	toLight := l.Position.Sub(p)
	return toLight.Normalize(), toLight.Length()
}
