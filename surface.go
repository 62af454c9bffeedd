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
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Surface holds the two pixel buffers of a heat map: an alpha buffer into
// which the sample stamps are accumulated, and the visible colour buffer.
// Both buffers have the same size.
type Surface interface {
	// Bounds returns the buffer rectangle, which starts at the origin.
	Bounds() image.Rectangle

	// DrawAlphaStamp composites mask, scaled by alpha in [0, 1], onto the
	// alpha buffer with its top-left corner at the given point, using the
	// Porter-Duff "over" operator.
	DrawAlphaStamp(mask *image.Alpha, at image.Point, alpha float64)

	// AlphaAt returns the accumulated alpha at p, or 0 outside the buffer.
	AlphaAt(p image.Point) uint8

	// ReadAlphaRegion returns a copy of the alpha values in r, row by row.
	// The rectangle must lie inside the buffer.
	ReadAlphaRegion(r image.Rectangle) []byte

	// WriteColorRegion stores non-premultiplied RGBA pixels, 4 bytes per
	// pixel row by row, into r of the colour buffer.
	WriteColorRegion(r image.Rectangle, pix []byte)

	// Clear zeroes both buffers.
	Clear()

	// Resize reallocates both buffers.  The contents are lost.
	Resize(width, height int)

	// Image returns the colour buffer.
	Image() *image.NRGBA
}

// MemorySurface is a [Surface] backed by in-memory images.
type MemorySurface struct {
	shadow  *image.Alpha
	visible *image.NRGBA
}

var _ Surface = (*MemorySurface)(nil)

// NewMemorySurface allocates buffers of the given size.
func NewMemorySurface(width, height int) *MemorySurface {
	s := &MemorySurface{}
	s.Resize(width, height)
	return s
}

// Bounds implements [Surface].
func (s *MemorySurface) Bounds() image.Rectangle {
	return s.shadow.Rect
}

// DrawAlphaStamp implements [Surface].
func (s *MemorySurface) DrawAlphaStamp(mask *image.Alpha, at image.Point, alpha float64) {
	a := uint8(math.Round(clamp01(alpha) * 255))
	if a == 0 || mask.Rect.Empty() {
		return
	}
	dst := image.Rectangle{Min: at, Max: at.Add(mask.Rect.Size())}
	xdraw.DrawMask(s.shadow, dst, mask, mask.Rect.Min,
		image.NewUniform(color.Alpha{A: a}), image.Point{}, xdraw.Over)
}

// AlphaAt implements [Surface].
func (s *MemorySurface) AlphaAt(p image.Point) uint8 {
	if !p.In(s.shadow.Rect) {
		return 0
	}
	return s.shadow.AlphaAt(p.X, p.Y).A
}

// ReadAlphaRegion implements [Surface].
func (s *MemorySurface) ReadAlphaRegion(r image.Rectangle) []byte {
	r = r.Intersect(s.shadow.Rect)
	w := r.Dx()
	out := make([]byte, w*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := s.shadow.PixOffset(r.Min.X, y)
		copy(out[(y-r.Min.Y)*w:], s.shadow.Pix[i:i+w])
	}
	return out
}

// WriteColorRegion implements [Surface].
func (s *MemorySurface) WriteColorRegion(r image.Rectangle, pix []byte) {
	r = r.Intersect(s.visible.Rect)
	n := 4 * r.Dx()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := s.visible.PixOffset(r.Min.X, y)
		copy(s.visible.Pix[i:i+n], pix[(y-r.Min.Y)*n:])
	}
}

// Clear implements [Surface].
func (s *MemorySurface) Clear() {
	clear(s.shadow.Pix)
	clear(s.visible.Pix)
}

// Resize implements [Surface].
func (s *MemorySurface) Resize(width, height int) {
	r := image.Rect(0, 0, max(width, 0), max(height, 0))
	s.shadow = image.NewAlpha(r)
	s.visible = image.NewNRGBA(r)
}

// Image implements [Surface].
func (s *MemorySurface) Image() *image.NRGBA {
	return s.visible
}
