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
	"cmp"
	"image/color"
	"math"
	"slices"
	"sort"
)

// PaletteSize is the number of entries in a [Palette].
const PaletteSize = 256

// Palette maps an 8-bit intensity to a colour.
type Palette [PaletteSize]color.NRGBA

// BuildPalette samples the gradient given by stops at the positions i/255,
// for i = 0, ..., 255.  Between two stops the colour channels, including
// alpha, are interpolated linearly; before the first and after the last
// stop the colour of that stop is used.
//
// The stops need not be sorted and are not modified.  With fewer than two
// stops the palette is fully transparent.
func BuildPalette(stops []Stop) *Palette {
	p := new(Palette)
	if len(stops) < 2 {
		return p
	}

	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b Stop) int {
		return cmp.Compare(a.Offset, b.Offset)
	})

	for i := range p {
		p[i] = colorAt(sorted, float64(i)/(PaletteSize-1))
	}
	return p
}

// colorAt returns the colour at position t of a gradient with sorted stops.
func colorAt(stops []Stop, t float64) color.NRGBA {
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx == len(stops) {
		return stops[len(stops)-1].Color
	}

	s0, s1 := stops[idx-1], stops[idx]
	if s1.Offset == s0.Offset {
		return s0.Color
	}
	u := (t - s0.Offset) / (s1.Offset - s0.Offset)
	return color.NRGBA{
		R: lerp8(s0.Color.R, s1.Color.R, u),
		G: lerp8(s0.Color.G, s1.Color.G, u),
		B: lerp8(s0.Color.B, s1.Color.B, u),
		A: lerp8(s0.Color.A, s1.Color.A, u),
	}
}

func lerp8(a, b uint8, u float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*u))
}
