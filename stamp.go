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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// StampCache creates and keeps the alpha masks used to draw samples.
// There is one mask per radius; masks are never evicted.
//
// The returned masks are shared and must not be modified.
type StampCache struct {
	factor float64
	stamps map[int]*image.Alpha
	ras    *Rasteriser
}

// NewStampCache returns an empty cache.  The blur factor is the fraction of
// the radius which is drawn fully opaque; beyond it the mask fades linearly
// to zero at the radius.  A factor of 1 gives anti-aliased hard discs.
func NewStampCache(factor float64) *StampCache {
	return &StampCache{
		factor: clamp01(factor),
		stamps: make(map[int]*image.Alpha),
	}
}

// Factor returns the blur factor of the cache.
func (c *StampCache) Factor() float64 {
	return c.factor
}

// Get returns the mask for the given radius.  The mask covers the square
// [0, 2r) × [0, 2r) and is centred at (r, r).  For r <= 0 the mask is empty.
func (c *StampCache) Get(radius int) *image.Alpha {
	if m, ok := c.stamps[radius]; ok {
		return m
	}

	var m *image.Alpha
	switch {
	case radius <= 0:
		m = image.NewAlpha(image.Rectangle{})
	case c.factor == 1:
		m = c.disc(radius)
	default:
		m = falloff(radius, c.factor)
	}
	c.stamps[radius] = m

	Logger().Debug("stamp created", "radius", radius, "factor", c.factor)
	return m
}

// Len returns the number of cached masks.
func (c *StampCache) Len() int {
	return len(c.stamps)
}

// disc rasterises a solid circle of the given radius.
func (c *StampCache) disc(radius int) *image.Alpha {
	size := 2 * radius
	m := image.NewAlpha(image.Rect(0, 0, size, size))

	clip := rect.Rect{URx: float64(size), URy: float64(size)}
	if c.ras == nil {
		c.ras = NewRasteriser(clip)
	} else {
		c.ras.Reset(clip)
	}
	r := float64(radius)
	c.ras.CTM = matrix.Matrix{r, 0, 0, r, r, r}

	c.ras.FillNonZero(UnitCircle(), func(y, xMin int, coverage []float32) {
		row := m.Pix[y*m.Stride+xMin:]
		for i, cov := range coverage {
			row[i] = uint8(min(255, math.Round(float64(cov)*255)))
		}
	})
	return m
}

// falloff draws a radial gradient which is opaque up to radius·factor
// and transparent from radius outwards.
func falloff(radius int, factor float64) *image.Alpha {
	size := 2 * radius
	m := image.NewAlpha(image.Rect(0, 0, size, size))

	r := float64(radius)
	inner := r * factor
	for y := range size {
		dy := float64(y) + 0.5 - r
		row := m.Pix[y*m.Stride : y*m.Stride+size]
		for x := range row {
			dx := float64(x) + 0.5 - r
			d := math.Hypot(dx, dy)
			var a float64
			switch {
			case d <= inner:
				a = 1
			case d >= r:
				a = 0
			default:
				a = (r - d) / (r - inner)
			}
			row[x] = uint8(math.Round(a * 255))
		}
	}
	return m
}
