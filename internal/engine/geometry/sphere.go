package geometry

import (
	gomath "math"

	"github.com/Faultbox/raytracer/pkg/math"
)

// NearThreshold is the object-space parametric cut-off for valid roots.
// Roots at or below it are discarded, which acts as a near-plane clip in unit-sphere space.
const NearThreshold = 1.0

// Material holds the Phong coefficients of a surface.
type Material struct {
	Color            math.Vec3
	Ka, Kd, Ks, Kr   float64
	SpecularExponent int
}

// Sphere is a unit sphere in object space placed in the world by Transform.
type Sphere struct {
	Name      string
	Transform Transform
	Material  Material
	Bounds    AABB // World-space box, used to reject rays before the quadratic
}

// NewSphere creates a sphere centered at position with per-axis scale.
func NewSphere(name string, position, scale math.Vec3, mat Material) (*Sphere, error) {
	tr, err := NewTransform(position, scale)
	if err != nil {
		return nil, err
	}
	return &Sphere{Name: name, Transform: tr, Material: mat, Bounds: tr.Bounds()}, nil
}

// Intersect returns the nearest valid world-space hit of r with the sphere.
// A tangent ray (zero discriminant) yields a single valid root.
func (s *Sphere) Intersect(r Ray) (Hit, bool) {
	if _, ok := r.IntersectAABB(s.Bounds); !ok {
		return Hit{}, false
	}
	obj := s.Transform.ToObject(r)
	t0, t1, ok := unitSphereRoots(obj)
	if !ok {
		return Hit{}, false
	}

	t := t0
	if t <= NearThreshold {
		t = t1
	}
	if t <= NearThreshold {
		return Hit{}, false
	}

	// On the unit sphere the hit point is its own normal.
	pObj := obj.At(t)
	nObj := pObj.Normalize()

	// Non-uniform scale breaks parametric equivalence, so distance is measured in world space.
	p := s.Transform.PointToWorld(pObj)
	return Hit{
		Distance: p.Distance(r.Origin),
		Point:    p,
		Normal:   s.Transform.NormalToWorld(nObj),
	}, true
}

// Roots returns both object-space parametric roots of r against the unit sphere, ascending.
// ok is false if the discriminant is negative.
func (s *Sphere) Roots(r Ray) (t0, t1 float64, ok bool) {
	return unitSphereRoots(s.Transform.ToObject(r))
}

// unitSphereRoots solves |o + t*d|^2 = 1.
func unitSphereRoots(obj Ray) (t0, t1 float64, ok bool) {
	a := obj.Direction.Dot(obj.Direction)
	if a == 0 {
		return 0, 0, false
	}
	b := 2 * obj.Origin.Dot(obj.Direction)
	c := obj.Origin.Dot(obj.Origin) - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sqrtD := gomath.Sqrt(disc)
	t0 = (-b - sqrtD) / (2 * a)
	t1 = (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}
