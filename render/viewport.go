// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/clip"

// Viewport maps world coordinates to image pixels.
type Viewport struct {
	// OriginX and OriginY are the pixel position of the world origin.
	OriginX, OriginY float64

	// Unit is the number of pixels per world unit.
	Unit float64
}

// NewViewport returns the viewport for o: origin at the image center
// (rounded down to whole pixels) and Grid*Scale pixels per unit.
func NewViewport(o Options) Viewport {
	return Viewport{
		OriginX: float64(o.Width / 2),
		OriginY: float64(o.Height / 2),
		Unit:    o.Grid * o.Scale,
	}
}

// ToScreen returns the pixel position of p.
func (v Viewport) ToScreen(p clip.Point) (x, y float64) {
	return v.OriginX + p.X*v.Unit, v.OriginY - p.Y*v.Unit
}

// ToWorld returns the world point at pixel position (x, y).
func (v Viewport) ToWorld(x, y float64) clip.Point {
	return clip.Pt((x-v.OriginX)/v.Unit, (v.OriginY-y)/v.Unit)
}

// Visible returns the world rectangle covered by an image of the given size.
func (v Viewport) Visible(width, height int) clip.Window {
	return clip.Window{
		Min: v.ToWorld(0, float64(height)),
		Max: v.ToWorld(float64(width), 0),
	}
}
