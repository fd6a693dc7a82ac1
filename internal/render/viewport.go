package render

import (
	"math"

	"github.com/handiism/triangle-solver/internal/model"
)

// Viewport maps construction coordinates to pixel coordinates with a
// uniform scale and the y axis pointing up.
type Viewport struct {
	scale   float64
	offsetX float64
	offsetY float64
	height  float64
}

// NewViewport fits the box lo-hi into a width x height canvas, leaving margin
// pixels on every side and centring the box.
func NewViewport(lo, hi model.Point, width, height int, margin float64) Viewport {
	w := float64(width) - 2*margin
	h := float64(height) - 2*margin
	dx := math.Max(hi.X-lo.X, 1e-9)
	dy := math.Max(hi.Y-lo.Y, 1e-9)

	scale := math.Min(w/dx, h/dy)
	return Viewport{
		scale:   scale,
		offsetX: margin + (w-dx*scale)/2 - lo.X*scale,
		offsetY: margin + (h-dy*scale)/2 - lo.Y*scale,
		height:  float64(height),
	}
}

// ToPixel converts a construction point to pixel coordinates.
func (v Viewport) ToPixel(p model.Point) (float64, float64) {
	return p.X*v.scale + v.offsetX, v.height - (p.Y*v.scale + v.offsetY)
}

// Scaled returns the viewport for a canvas f times larger.
func (v Viewport) Scaled(f float64) Viewport {
	return Viewport{
		scale:   v.scale * f,
		offsetX: v.offsetX * f,
		offsetY: v.offsetY * f,
		height:  v.height * f,
	}
}
