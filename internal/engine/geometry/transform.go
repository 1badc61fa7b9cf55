package geometry

import (
	"errors"
	"fmt"

	"github.com/Faultbox/raytracer/pkg/math"
)

// ErrDegenerateScale is returned when a transform has a zero scale component.
var ErrDegenerateScale = errors.New("degenerate scale: every axis must be non-zero")

// Transform is an object-to-world affine transform (translation * scale).
// The inverse and inverse-transpose are computed once at construction.
type Transform struct {
	Forward          math.Mat4
	Inverse          math.Mat4
	InverseTranspose math.Mat4
}

// NewTransform builds T*S from a translation and a non-uniform scale.
func NewTransform(position, scale math.Vec3) (Transform, error) {
	if scale.X == 0 || scale.Y == 0 || scale.Z == 0 {
		return Transform{}, fmt.Errorf("%w: got %v", ErrDegenerateScale, scale)
	}

	m := math.Translate(position.X, position.Y, position.Z).Mul(math.Scale(scale.X, scale.Y, scale.Z))
	inv, ok := m.Inverse()
	if !ok {
		return Transform{}, fmt.Errorf("%w: singular matrix for scale %v", ErrDegenerateScale, scale)
	}

	return Transform{
		Forward:          m,
		Inverse:          inv,
		InverseTranspose: inv.Transpose(),
	}, nil
}

// ToObject maps a world-space ray into object space. The direction is not renormalized.
func (t Transform) ToObject(r Ray) Ray {
	return Ray{
		Origin:    t.Inverse.TransformPoint(r.Origin),
		Direction: t.Inverse.TransformDirection(r.Direction),
	}
}

// PointToWorld maps an object-space point to world space.
func (t Transform) PointToWorld(p math.Vec3) math.Vec3 {
	return t.Forward.TransformPoint(p)
}

// NormalToWorld maps an object-space normal to a unit world-space normal.
func (t Transform) NormalToWorld(n math.Vec3) math.Vec3 {
	return t.InverseTranspose.TransformDirection(n).Normalize()
}
