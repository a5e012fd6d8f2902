// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/clip"
	"github.com/gogpu/gg"
)

// ErrInvalidOptions is returned when Options cannot produce an image.
var ErrInvalidOptions = errors.New("render: invalid options")

// Scene is everything drawn in one image. Empty fields are skipped.
type Scene struct {
	// Window is the rectangular clip boundary, if any.
	Window *clip.Window

	// ClipPolygon is the convex clip boundary, if any.
	ClipPolygon clip.Polygon

	Lines           []clip.Segment
	Polygons        []clip.Polygon
	ClippedLines    []clip.Segment
	ClippedPolygons []clip.Polygon
}

// Options controls image size and decorations.
type Options struct {
	Width, Height int

	// Grid is the pixel spacing of one world unit at Scale 1.
	Grid float64

	// Scale zooms the world around the image center.
	Scale float64

	// Axes draws the background grid and the coordinate axes.
	Axes bool

	// Labels numbers the grid along the axes. Requires Axes.
	Labels bool
}

// DefaultOptions returns an 800x600 image with a 20 pixel grid, axes
// and labels.
func DefaultOptions() Options {
	return Options{
		Width:  800,
		Height: 600,
		Grid:   20,
		Scale:  1,
		Axes:   true,
		Labels: true,
	}
}

// Validate reports whether o describes a drawable image.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidOptions, o.Width, o.Height)
	}
	if !(o.Grid > 0) || !(o.Scale > 0) {
		return fmt.Errorf("%w: grid %g, scale %g", ErrInvalidOptions, o.Grid, o.Scale)
	}
	return nil
}

// Scene colors.
var (
	ColorBackground      = gg.White
	ColorGrid            = gg.Hex("#f0f0f0")
	ColorAxes            = gg.Black
	ColorLabels          = gg.Hex("#808080")
	ColorWindow          = gg.Hex("#ff0000")
	ColorClipPolygon     = gg.Hex("#a020f0")
	ColorLines           = gg.Hex("#0000ff")
	ColorPolygons        = gg.Hex("#00ff00")
	ColorClippedLines    = gg.Hex("#ffa500")
	ColorClippedPolygons = gg.Hex("#006400")
	ColorClippedFill     = gg.Hex("#a0ffa0")
)

// Stroke widths and endpoint dot radii in pixels.
const (
	boundaryWidth    = 2
	lineWidth        = 2
	clippedLineWidth = 3
	lineDotRadius    = 3
	clippedDotRadius = 4
	axisWidth        = 2
	labelSize        = 10
)
