package geometry

import (
	gomath "math"

	"github.com/Faultbox/raytracer/pkg/math"
)

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// NewAABB creates an AABB from two corners, ordering each axis.
func NewAABB(a, b math.Vec3) AABB {
	return AABB{
		Min: math.Vec3{X: gomath.Min(a.X, b.X), Y: gomath.Min(a.Y, b.Y), Z: gomath.Min(a.Z, b.Z)},
		Max: math.Vec3{X: gomath.Max(a.X, b.X), Y: gomath.Max(a.Y, b.Y), Z: gomath.Max(a.Z, b.Z)},
	}
}

// Bounds returns the world-space box enclosing the transformed unit sphere.
// Transforms are translate*scale, so the box is exact.
func (t Transform) Bounds() AABB {
	m := t.Forward
	center := math.Vec3{X: m[12], Y: m[13], Z: m[14]}
	half := math.Vec3{X: gomath.Abs(m[0]), Y: gomath.Abs(m[5]), Z: gomath.Abs(m[10])}
	return NewAABB(center.Sub(half), center.Add(half))
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the parametric distance to the box and whether it is hit in front of the origin.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float64, hit bool) {
	tmin := gomath.Inf(-1)
	tmax := gomath.Inf(1)

	if !slab(r.Origin.X, r.Direction.X, box.Min.X, box.Max.X, &tmin, &tmax) ||
		!slab(r.Origin.Y, r.Direction.Y, box.Min.Y, box.Max.Y, &tmin, &tmax) ||
		!slab(r.Origin.Z, r.Direction.Z, box.Min.Z, box.Max.Z, &tmin, &tmax) {
		return 0, false
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// slab narrows [tmin, tmax] to one axis. A ray parallel to the slab must start between its planes.
func slab(o, d, lo, hi float64, tmin, tmax *float64) bool {
	if d == 0 {
		return o >= lo && o <= hi
	}
	t1 := (lo - o) / d
	t2 := (hi - o) / d
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > *tmin {
		*tmin = t1
	}
	if t2 < *tmax {
		*tmax = t2
	}
	return true
}
