// Package tracer implements recursive Whitted-style ray tracing over a scene.
package tracer

import (
	gomath "math"

	"github.com/Faultbox/raytracer/internal/engine/geometry"
	"github.com/Faultbox/raytracer/internal/scene"
	"github.com/Faultbox/raytracer/pkg/math"
)

const (
	// MaxDepth is the number of reflective bounces a primary ray may spawn.
	MaxDepth = 3
	// Epsilon offsets secondary ray origins off the surface they leave.
	Epsilon = 1e-4
)

// Options tunes the tracer. Zero fields take the package defaults.
type Options struct {
	MaxDepth int
	Epsilon  float64
}

// Tracer shades rays against a read-only scene. It holds no per-ray state
// and is safe for concurrent use.
type Tracer struct {
	scene    *scene.Scene
	maxDepth int
	eps      float64
}

// New creates a tracer with the default constants.
func New(s *scene.Scene) *Tracer {
	return NewWithOptions(s, Options{})
}

// NewWithOptions creates a tracer with explicit recursion and bias settings.
func NewWithOptions(s *scene.Scene, opts Options) *Tracer {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = MaxDepth
	}
	if opts.Epsilon <= 0 {
		opts.Epsilon = Epsilon
	}
	return &Tracer{scene: s, maxDepth: opts.MaxDepth, eps: opts.Epsilon}
}

// SurfaceHit is the resolved closest intersection along a ray.
type SurfaceHit struct {
	geometry.Hit
	Sphere *geometry.Sphere
}

// ClosestHit scans every sphere and returns the nearest hit.
func (t *Tracer) ClosestHit(r geometry.Ray) (SurfaceHit, bool) {
	best := SurfaceHit{}
	bestDist := gomath.Inf(1)
	found := false
	for _, sp := range t.scene.Spheres {
		hit, ok := sp.Intersect(r)
		if ok && hit.Distance < bestDist {
			bestDist = hit.Distance
			best = SurfaceHit{Hit: hit, Sphere: sp}
			found = true
		}
	}
	return best, found
}

// InShadow reports whether any sphere blocks the segment from p towards l
// closer than maxDist. l must be unit length.
func (t *Tracer) InShadow(p, l math.Vec3, maxDist float64) bool {
	r := geometry.Ray{Origin: p.Add(l.Scale(t.eps)), Direction: l}
	for _, sp := range t.scene.Spheres {
		if hit, ok := sp.Intersect(r); ok && hit.Distance < maxDist {
			return true
		}
	}
	return false
}

// TraceRay shades a primary ray.
func (t *Tracer) TraceRay(r geometry.Ray) math.Vec3 {
	return t.Trace(r, 0)
}

// Trace returns the clamped color seen along r at recursion depth.
// A miss returns the background for primary rays and black otherwise.
func (t *Tracer) Trace(r geometry.Ray, depth int) math.Vec3 {
	r.Direction = r.Direction.Normalize()

	sh, ok := t.ClosestHit(r)
	if !ok {
		if depth == 0 {
			return t.scene.Background
		}
		return math.Vec3{}
	}

	color := t.Local(r, sh)

	mat := sh.Sphere.Material
	if depth < t.maxDepth && mat.Kr > 0 {
		dir := r.Direction.Reflect(sh.Normal)
		origin := sh.Point.Add(dir.Scale(t.eps))
		reflected := t.Trace(geometry.Ray{Origin: origin, Direction: dir}, depth+1)
		color = color.Add(reflected.Scale(mat.Kr))
	}

	return color.Clamp01()
}

// Local returns the unclamped ambient, diffuse and specular terms at a hit.
func (t *Tracer) Local(r geometry.Ray, sh SurfaceHit) math.Vec3 {
	mat := sh.Sphere.Material
	n := sh.Normal

	color := t.scene.Ambient.Mul(mat.Color).Scale(mat.Ka)

	view := r.Direction.Negate().Normalize()
	for _, light := range t.scene.Lights {
		l, dist := light.DirectionFrom(sh.Point)
		if t.InShadow(sh.Point, l, dist) {
			continue
		}

		nDotL := gomath.Max(0, n.Dot(l))
		diffuse := light.Intensity.Mul(mat.Color).Scale(mat.Kd * nDotL)

		rDotV := gomath.Max(0, l.Negate().Reflect(n).Dot(view))
		specular := light.Intensity.Scale(mat.Ks * gomath.Pow(rDotV, float64(mat.SpecularExponent)))

		color = color.Add(diffuse).Add(specular)
	}
	return color
}
