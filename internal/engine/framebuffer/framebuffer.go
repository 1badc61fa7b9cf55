// Package framebuffer provides the in-memory 8-bit RGB pixel buffer the renderer fills.
package framebuffer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/Faultbox/raytracer/pkg/math"
)

// Framebuffer stores width*height RGB triples in row-major order, top row first.
type Framebuffer struct {
	pix    []uint8
	width  int
	height int
}

// New creates a black framebuffer with the specified dimensions.
func New(width, height int) (*Framebuffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}
	return &Framebuffer{
		pix:    make([]uint8, width*height*3),
		width:  width,
		height: height,
	}, nil
}

// Width returns the framebuffer width.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height.
func (fb *Framebuffer) Height() int { return fb.height }

// Pix returns the raw RGB bytes.
func (fb *Framebuffer) Pix() []uint8 { return fb.pix }

// Set stores an 8-bit RGB triple at column x, row y.
// Distinct pixels occupy distinct bytes, so rows may be filled concurrently.
func (fb *Framebuffer) Set(x, y int, r, g, b uint8) {
	i := (y*fb.width + x) * 3
	fb.pix[i+0] = r
	fb.pix[i+1] = g
	fb.pix[i+2] = b
}

// At returns the RGB triple at column x, row y.
func (fb *Framebuffer) At(x, y int) (r, g, b uint8) {
	i := (y*fb.width + x) * 3
	return fb.pix[i+0], fb.pix[i+1], fb.pix[i+2]
}

// SetColor quantizes a [0,1] color by truncation and stores it.
func (fb *Framebuffer) SetColor(x, y int, c math.Vec3) {
	c = c.Clamp01()
	fb.Set(x, y, quantize(c.X), quantize(c.Y), quantize(c.Z))
}

func quantize(v float64) uint8 {
	return uint8(v * 255)
}

// Image copies the framebuffer into an opaque RGBA image.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			r, g, b := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	return img
}
