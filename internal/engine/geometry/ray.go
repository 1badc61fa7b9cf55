// Package geometry provides rays, affine transforms and the sphere primitive.
package geometry

import (
	"github.com/Faultbox/raytracer/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// NewRay creates a ray with a normalized direction.
func NewRay(origin, direction math.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point Origin + t*Direction.
func (r Ray) At(t float64) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Hit describes a world-space intersection.
type Hit struct {
	Distance float64   // Euclidean distance from the ray origin
	Point    math.Vec3 // World-space hit point
	Normal   math.Vec3 // Unit world-space surface normal
}
