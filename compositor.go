// seehuhn.de/go/heatmap - heat map rendering from weighted point samples
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package heatmap

import (
	"image"
	"maps"
	"math"
	"slices"
)

// minDrawAlpha is the smallest alpha used to draw a sample, so that
// samples at the minimum remain faintly visible.
const minDrawAlpha = 0.01

// maxStampRadius bounds the radius of a stamp so that the corners of its
// square cannot overflow.
const maxStampRadius = math.MaxInt / 4

// DirtyRect is the bounding box of all stamps drawn since the last
// colorize pass.  The zero value is not empty; use [EmptyDirtyRect].
type DirtyRect struct {
	MinX, MinY int
	MaxX, MaxY int // exclusive
}

// EmptyDirtyRect is the sentinel value of a DirtyRect covering nothing.
var EmptyDirtyRect = DirtyRect{
	MinX: math.MaxInt, MinY: math.MaxInt,
	MaxX: math.MinInt, MaxY: math.MinInt,
}

// Empty reports whether d contains no pixels.
func (d DirtyRect) Empty() bool {
	return d.MinX >= d.MaxX || d.MinY >= d.MaxY
}

// Rect converts d to an image rectangle.
func (d DirtyRect) Rect() image.Rectangle {
	if d.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(d.MinX, d.MinY, d.MaxX, d.MaxY)
}

// extend grows d to include r.
func (d *DirtyRect) extend(r image.Rectangle) {
	d.MinX = min(d.MinX, r.Min.X)
	d.MinY = min(d.MinY, r.Min.Y)
	d.MaxX = max(d.MaxX, r.Max.X)
	d.MaxY = max(d.MaxY, r.Max.Y)
}

// Compositor draws samples into the alpha buffer of a [Surface] and
// colours the changed part of the buffer through a [Palette].
//
// If the surface is nil, the palette is fully transparent, drawing does
// nothing and [Compositor.ValueAt] returns 0.
type Compositor struct {
	surface Surface
	stamps  *StampCache
	palette *Palette

	gradient Gradient
	min, max float64

	opacity            uint8 // fixed opacity; 0 means unset
	minOpacity         uint8
	maxOpacity         uint8
	useGradientOpacity bool

	dirty DirtyRect
}

var _ Listener = (*Compositor)(nil)

// NewCompositor returns a compositor drawing onto s.  The surface is
// resized to the configured dimensions.
func NewCompositor(cfg Config, s Surface) *Compositor {
	if s == nil {
		Logger().Warn("no drawing surface, rendering is disabled")
	}
	c := &Compositor{
		surface: s,
		dirty:   EmptyDirtyRect,
	}
	c.UpdateConfig(cfg)
	return c
}

// UpdateConfig applies a new configuration.  The palette is rebuilt if the
// gradient changed and the stamp cache is dropped if the blur changed.
// A change of dimensions resizes the surface, which clears it.
func (c *Compositor) UpdateConfig(cfg Config) {
	cfg = cfg.withDefaults()

	if c.palette == nil || !slices.Equal(c.gradient, cfg.Gradient) {
		c.SetGradient(cfg.Gradient)
	}
	if f := cfg.stampFactor(); c.stamps == nil || c.stamps.Factor() != f {
		c.stamps = NewStampCache(f)
	}

	c.opacity = 0
	if cfg.Opacity > 0 {
		c.opacity = opacityByte(cfg.Opacity)
	}
	c.maxOpacity = opacityByte(cfg.MaxOpacity)
	c.minOpacity = opacityByte(cfg.MinOpacity)
	c.useGradientOpacity = cfg.UseGradientOpacity

	if c.surface != nil && c.surface.Bounds().Size() != image.Pt(cfg.Width, cfg.Height) {
		c.Resize(cfg.Width, cfg.Height)
	}
}

// SetGradient rebuilds the palette.  The buffers are not changed.
func (c *Compositor) SetGradient(g Gradient) {
	c.gradient = slices.Clone(g)
	if c.surface == nil {
		c.palette = new(Palette)
	} else {
		c.palette = BuildPalette(g)
	}
	Logger().Debug("palette rebuilt", "stops", len(g))
}

// Palette returns the current palette.
func (c *Compositor) Palette() *Palette {
	return c.palette
}

// Stamps returns the stamp cache.
func (c *Compositor) Stamps() *StampCache {
	return c.stamps
}

// Dirty returns the area drawn since the last colorize pass.
func (c *Compositor) Dirty() DirtyRect {
	return c.dirty
}

// Resize reallocates the buffers.  The image must be redrawn afterwards.
func (c *Compositor) Resize(width, height int) {
	if c.surface == nil {
		return
	}
	c.surface.Resize(width, height)
	c.dirty = EmptyDirtyRect
}

// DrawBatch stamps the samples into the alpha buffer, last sample first.
// Each sample is drawn with an alpha proportional to the position of its
// value between lo and hi, but at least 0.01.  If lo == hi, samples are
// drawn fully opaque.  Samples whose stamp misses the surface are
// skipped.
func (c *Compositor) DrawBatch(samples []Resolved, lo, hi float64) {
	c.min, c.max = lo, hi
	if c.surface == nil {
		return
	}

	b := c.surface.Bounds()
	for _, s := range slices.Backward(samples) {
		if s.Radius <= 0 || s.Radius > maxStampRadius {
			continue
		}
		if !reaches(s.X, s.Radius, b.Min.X, b.Max.X) || !reaches(s.Y, s.Radius, b.Min.Y, b.Max.Y) {
			continue
		}

		alpha := 1.0
		if hi != lo {
			v := min(s.Value, hi)
			alpha = (v - lo) / (hi - lo)
		}
		if !(alpha >= minDrawAlpha) {
			alpha = minDrawAlpha
		}
		alpha = min(alpha, 1)

		at := image.Pt(s.X-s.Radius, s.Y-s.Radius)
		c.surface.DrawAlphaStamp(c.stamps.Get(s.Radius), at, alpha)
		c.dirty.extend(image.Rectangle{Min: at, Max: at.Add(image.Pt(2*s.Radius, 2*s.Radius))})
	}
}

// reaches reports whether [c-r, c+r) meets [lo, hi), for r > 0.
// The differences are taken as unsigned values so that no c overflows.
func reaches(c, r, lo, hi int) bool {
	switch {
	case c < lo:
		return uint(lo)-uint(c) < uint(r)
	case c >= hi:
		return uint(c)-uint(hi) < uint(r)
	default:
		return true
	}
}

// Colorize maps the alpha values in the dirty rectangle through the
// palette into the colour buffer and resets the dirty rectangle.
//
// The opacity of a pixel is the fixed opacity if one is configured, and
// otherwise its alpha clamped to [minOpacity, maxOpacity].  With
// UseGradientOpacity the alpha channel of the palette is used instead.
// Pixels without alpha become transparent.
func (c *Compositor) Colorize() {
	dirty := c.dirty
	c.dirty = EmptyDirtyRect
	if c.surface == nil || dirty.Empty() {
		return
	}
	r := dirty.Rect().Intersect(c.surface.Bounds())
	if r.Empty() {
		return
	}

	alpha := c.surface.ReadAlphaRegion(r)
	pix := make([]byte, 4*len(alpha))
	for i, a := range alpha {
		if a == 0 {
			continue
		}
		col := c.palette[a]

		var op uint8
		switch {
		case c.useGradientOpacity:
			op = col.A
		case c.opacity > 0:
			op = c.opacity
		case a >= c.maxOpacity:
			op = c.maxOpacity
		case a < c.minOpacity:
			op = c.minOpacity
		default:
			op = a
		}

		p := pix[4*i : 4*i+4 : 4*i+4]
		p[0], p[1], p[2], p[3] = col.R, col.G, col.B, op
	}
	c.surface.WriteColorRegion(r, pix)
}

// RenderIncremental draws the samples of b on top of the current image.
func (c *Compositor) RenderIncremental(b Batch) {
	if len(b.Samples) == 0 {
		return
	}
	c.DrawBatch(b.Samples, b.Min, b.Max)
	c.Colorize()
}

// RenderFull clears both buffers and draws all cells of the snapshot.
func (c *Compositor) RenderFull(snap Snapshot) {
	if c.surface != nil {
		c.surface.Clear()
	}
	c.min, c.max = snap.Min, snap.Max
	if len(snap.Cells) == 0 {
		return
	}
	c.DrawBatch(flatten(snap), snap.Min, snap.Max)
	c.Colorize()
}

// flatten lists the cells of a snapshot by decreasing x and, for equal x,
// by decreasing y.
func flatten(snap Snapshot) []Resolved {
	keys := slices.SortedFunc(maps.Keys(snap.Cells), func(a, b Coord) int {
		return -compareCoord(a, b)
	})
	out := make([]Resolved, len(keys))
	for i, k := range keys {
		cell := snap.Cells[k]
		out[i] = Resolved{
			X:      k.X,
			Y:      k.Y,
			Value:  cell.Value,
			Radius: cell.Radius,
			Min:    snap.Min,
			Max:    snap.Max,
		}
	}
	return out
}

// ValueAt estimates the value at p from the alpha buffer.  The result is
// |max - min| · alpha/255, truncated to an integer; it is 0 where nothing
// was drawn.
func (c *Compositor) ValueAt(p image.Point) int {
	if c.surface == nil {
		return 0
	}
	a := c.surface.AlphaAt(p)
	return int(math.Abs(c.max-c.min) * float64(a) / 255)
}

// Image returns the colour buffer, or nil without a surface.
func (c *Compositor) Image() *image.NRGBA {
	if c.surface == nil {
		return nil
	}
	return c.surface.Image()
}

// IncrementalRender implements [Listener].
func (c *Compositor) IncrementalRender(b Batch) { c.RenderIncremental(b) }

// FullRender implements [Listener].
func (c *Compositor) FullRender(s Snapshot) { c.RenderFull(s) }

// ExtremaChange implements [Listener].  The extrema arrive with the
// following full render, so there is nothing to do here.
func (c *Compositor) ExtremaChange(Extrema) {}
