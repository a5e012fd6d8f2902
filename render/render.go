// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"io"
	"math"
	"strconv"
	"sync"

	"github.com/gogpu/clip"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Draw paints s onto dc. The context should be o.Width by o.Height pixels;
// the current color, line width and path of dc are overwritten.
//
// Layers are drawn back to front: background, grid and axes, clip window,
// clip polygon, input lines, input polygons, clipped lines, clipped polygons.
func Draw(dc *gg.Context, s Scene, o Options) error {
	if err := o.Validate(); err != nil {
		return err
	}
	p := &painter{dc: dc, vp: NewViewport(o), opts: o}
	fill := ColorClippedFill

	dc.ClearWithColor(ColorBackground)

	steps := []struct {
		name string
		draw func() error
	}{
		{"axes", p.axes},
		{"clip window", func() error { return p.window(s.Window) }},
		{"clip polygon", func() error { return p.polygon(s.ClipPolygon, ColorClipPolygon, nil, boundaryWidth) }},
		{"lines", func() error { return p.lines(s.Lines, ColorLines, lineWidth, lineDotRadius) }},
		{"polygons", func() error { return p.polygons(s.Polygons, ColorPolygons, nil, lineWidth) }},
		{"clipped lines", func() error {
			return p.lines(s.ClippedLines, ColorClippedLines, clippedLineWidth, clippedDotRadius)
		}},
		{"clipped polygons", func() error {
			return p.polygons(s.ClippedPolygons, ColorClippedPolygons, &fill, clippedLineWidth)
		}},
	}
	for _, step := range steps {
		if err := step.draw(); err != nil {
			return fmt.Errorf("render: %s: %w", step.name, err)
		}
	}
	return nil
}

// Render draws s into a new o.Width by o.Height image.
func Render(s Scene, o Options) (image.Image, error) {
	var img image.Image
	err := withContext(s, o, func(dc *gg.Context) error {
		img = dc.Image()
		return nil
	})
	return img, err
}

// SavePNG renders s and writes it to path as PNG.
func SavePNG(path string, s Scene, o Options) error {
	err := withContext(s, o, func(dc *gg.Context) error {
		if err := dc.SavePNG(path); err != nil {
			return fmt.Errorf("render: save %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	clip.Logger().Debug("render: saved scene", "path", path,
		"width", o.Width, "height", o.Height)
	return nil
}

// EncodePNG renders s and writes it to w as PNG.
func EncodePNG(w io.Writer, s Scene, o Options) error {
	return withContext(s, o, func(dc *gg.Context) error {
		if err := dc.EncodePNG(w); err != nil {
			return fmt.Errorf("render: encode: %w", err)
		}
		return nil
	})
}

// withContext draws s on a fresh context and hands it to output.
func withContext(s Scene, o Options, output func(*gg.Context) error) error {
	if err := o.Validate(); err != nil {
		return err
	}
	dc := gg.NewContext(o.Width, o.Height)
	defer func() { _ = dc.Close() }()

	if err := Draw(dc, s, o); err != nil {
		return err
	}
	if err := dc.FlushGPU(); err != nil {
		return fmt.Errorf("render: flush: %w", err)
	}
	return output(dc)
}

type painter struct {
	dc   *gg.Context
	vp   Viewport
	opts Options
}

func (p *painter) setColor(c gg.RGBA) {
	p.dc.SetRGBA(c.R, c.G, c.B, c.A)
}

// minGridStep is the smallest unit, in pixels, that still gets grid lines.
const minGridStep = 4

func (p *painter) axes() error {
	if !p.opts.Axes {
		return nil
	}
	dc := p.dc
	w, h := float64(p.opts.Width), float64(p.opts.Height)
	step := p.vp.Unit

	// Grid lines sit on whole world units, outwards from the origin.
	if step >= minGridStep {
		p.setColor(ColorGrid)
		dc.SetLineWidth(1)
		for i := math.Ceil(-p.vp.OriginX / step); ; i++ {
			x := p.vp.OriginX + i*step
			if x > w {
				break
			}
			dc.DrawLine(x, 0, x, h)
		}
		for i := math.Ceil(-p.vp.OriginY / step); ; i++ {
			y := p.vp.OriginY + i*step
			if y > h {
				break
			}
			dc.DrawLine(0, y, w, y)
		}
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	p.setColor(ColorAxes)
	dc.SetLineWidth(axisWidth)
	dc.DrawLine(0, p.vp.OriginY, w, p.vp.OriginY)
	dc.DrawLine(p.vp.OriginX, h, p.vp.OriginX, 0)
	// Arrow heads on +X and +Y.
	dc.DrawLine(w, p.vp.OriginY, w-8, p.vp.OriginY-4)
	dc.DrawLine(w, p.vp.OriginY, w-8, p.vp.OriginY+4)
	dc.DrawLine(p.vp.OriginX, 0, p.vp.OriginX-4, 8)
	dc.DrawLine(p.vp.OriginX, 0, p.vp.OriginX+4, 8)
	if err := dc.Stroke(); err != nil {
		return err
	}

	if p.opts.Labels {
		return p.labels()
	}
	return nil
}

// labels numbers every whole world unit along both axes. Units narrower
// than a label are skipped.
func (p *painter) labels() error {
	face, err := labelFace()
	if err != nil {
		return err
	}
	dc := p.dc
	dc.SetFont(face)

	w, h := float64(p.opts.Width), float64(p.opts.Height)
	every := math.Ceil(2 * labelSize / p.vp.Unit)

	p.setColor(ColorAxes)
	dc.DrawStringAnchored("X", w-10, p.vp.OriginY-12, 0.5, 0.5)
	dc.DrawStringAnchored("Y", p.vp.OriginX+12, 10, 0.5, 0.5)

	p.setColor(ColorLabels)
	lo, hi := p.vp.ToWorld(0, h), p.vp.ToWorld(w, 0)
	for i := math.Ceil(lo.X / every); i*every < hi.X; i++ {
		v := i * every
		if v == 0 {
			continue
		}
		x, y := p.vp.ToScreen(clip.Pt(v, 0))
		dc.DrawStringAnchored(strconv.FormatFloat(v, 'g', -1, 64), x, y+10, 0.5, 0.5)
	}
	for i := math.Ceil(lo.Y / every); i*every < hi.Y; i++ {
		v := i * every
		if v == 0 {
			continue
		}
		x, y := p.vp.ToScreen(clip.Pt(0, v))
		dc.DrawStringAnchored(strconv.FormatFloat(v, 'g', -1, 64), x-10, y, 0.5, 0.5)
	}
	return nil
}

func (p *painter) window(w *clip.Window) error {
	if w == nil {
		return nil
	}
	x1, y1 := p.vp.ToScreen(clip.Pt(w.Min.X, w.Max.Y))
	x2, y2 := p.vp.ToScreen(clip.Pt(w.Max.X, w.Min.Y))

	p.setColor(ColorWindow)
	p.dc.SetLineWidth(boundaryWidth)
	p.dc.DrawRectangle(x1, y1, x2-x1, y2-y1)
	return p.dc.Stroke()
}

func (p *painter) lines(segs []clip.Segment, c gg.RGBA, width, dot float64) error {
	if len(segs) == 0 {
		return nil
	}
	dc := p.dc
	p.setColor(c)

	dc.SetLineWidth(width)
	for _, s := range segs {
		x1, y1 := p.vp.ToScreen(s.P1)
		x2, y2 := p.vp.ToScreen(s.P2)
		dc.DrawLine(x1, y1, x2, y2)
	}
	if err := dc.Stroke(); err != nil {
		return err
	}

	for _, s := range segs {
		for _, pt := range [2]clip.Point{s.P1, s.P2} {
			x, y := p.vp.ToScreen(pt)
			dc.DrawCircle(x, y, dot)
		}
	}
	return dc.Fill()
}

func (p *painter) polygons(pgs []clip.Polygon, c gg.RGBA, fill *gg.RGBA, width float64) error {
	for _, pg := range pgs {
		if err := p.polygon(pg, c, fill, width); err != nil {
			return err
		}
	}
	return nil
}

// polygon outlines pg, filling it first when fill is set. A two-point
// polygon is drawn as a line; fewer points draw nothing.
func (p *painter) polygon(pg clip.Polygon, c gg.RGBA, fill *gg.RGBA, width float64) error {
	if len(pg) < 2 {
		return nil
	}
	dc := p.dc
	for i, pt := range pg {
		x, y := p.vp.ToScreen(pt)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	if len(pg) > 2 {
		dc.ClosePath()
	}

	if fill != nil && len(pg) > 2 {
		p.setColor(*fill)
		if err := dc.FillPreserve(); err != nil {
			return err
		}
	}
	p.setColor(c)
	dc.SetLineWidth(width)
	return dc.Stroke()
}

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

// labelFace returns the label font, loading the embedded Go Regular font
// on first use.
func labelFace() (text.Face, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("load label font: %w", fontErr)
		}
	})
	if fontErr != nil {
		return nil, fontErr
	}
	return fontSource.Face(labelSize), nil
}
