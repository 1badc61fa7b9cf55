// Package camera maps image pixels to primary rays.
package camera

import (
	"github.com/Faultbox/raytracer/internal/engine/geometry"
	"github.com/Faultbox/raytracer/internal/scene"
	"github.com/Faultbox/raytracer/pkg/math"
)

// Camera is a pinhole at the world origin looking down -Z through the frustum window.
type Camera struct {
	frustum       scene.Frustum
	width, height int
	uSpan, vSpan  float64
}

// New creates a camera for a width x height image.
func New(f scene.Frustum, width, height int) *Camera {
	return &Camera{
		frustum: f,
		width:   width,
		height:  height,
		uSpan:   f.Right - f.Left,
		vSpan:   f.Top - f.Bottom,
	}
}

// FromScene creates the camera described by s.
func FromScene(s *scene.Scene) *Camera {
	return New(s.Frustum, s.Width, s.Height)
}

// Width returns the image width in pixels.
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels.
func (c *Camera) Height() int { return c.height }

// PlanePoint returns the image-plane point at the center of pixel (i, j).
// Column i runs left to right, row j top to bottom.
func (c *Camera) PlanePoint(i, j int) math.Vec3 {
	u := c.frustum.Left + c.uSpan*(float64(i)+0.5)/float64(c.width)
	v := c.frustum.Top - c.vSpan*(float64(j)+0.5)/float64(c.height)
	return math.Vec3{X: u, Y: v, Z: -c.frustum.Near}
}

// PrimaryRay returns the single sample ray through pixel (i, j).
func (c *Camera) PrimaryRay(i, j int) geometry.Ray {
	return geometry.NewRay(math.Vec3{}, c.PlanePoint(i, j))
}
