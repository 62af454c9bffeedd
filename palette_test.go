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
	"image/color"
	"testing"
)

var (
	blue = color.NRGBA{B: 255, A: 255}
	red  = color.NRGBA{R: 255, A: 255}
)

func TestPaletteBlueRed(t *testing.T) {
	p := BuildPalette([]Stop{{0, blue}, {1, red}})

	if p[0] != blue {
		t.Errorf("p[0] = %v, want blue", p[0])
	}
	if p[255] != red {
		t.Errorf("p[255] = %v, want red", p[255])
	}
	// 128/255 of the way from blue to red
	want := color.NRGBA{R: 128, G: 0, B: 127, A: 255}
	if p[128] != want {
		t.Errorf("p[128] = %v, want %v", p[128], want)
	}
}

func TestPaletteDeterministic(t *testing.T) {
	stops := DefaultGradient()
	a := BuildPalette(stops)
	b := BuildPalette(stops)
	if *a != *b {
		t.Error("palettes differ")
	}

	// the order of the stops does not matter
	reversed := Gradient{stops[3], stops[2], stops[1], stops[0]}
	if c := BuildPalette(reversed); *c != *a {
		t.Error("palette depends on stop order")
	}
	if stops[0].Offset != 0.25 {
		t.Error("BuildPalette modified its argument")
	}
}

func TestPaletteOutsideStops(t *testing.T) {
	p := BuildPalette(DefaultGradient())

	// below the first stop at 0.25 the first colour is used
	for i := 0; i < 63; i++ {
		if p[i] != blue {
			t.Fatalf("p[%d] = %v, want blue", i, p[i])
		}
	}
	if p[255] != red {
		t.Errorf("p[255] = %v, want red", p[255])
	}

	p = BuildPalette([]Stop{{0.2, blue}, {0.6, red}})
	if p[255] != red {
		t.Errorf("p[255] = %v, want red", p[255])
	}
}

func TestPaletteDegenerate(t *testing.T) {
	for _, stops := range [][]Stop{nil, {{0.5, red}}} {
		p := BuildPalette(stops)
		for i, c := range p {
			if c != (color.NRGBA{}) {
				t.Fatalf("%d stops: p[%d] = %v, want transparent", len(stops), i, c)
			}
		}
	}
}

func TestPaletteAlpha(t *testing.T) {
	fade := color.NRGBA{R: 255}
	p := BuildPalette([]Stop{{0, fade}, {1, red}})
	if p[0].A != 0 || p[255].A != 255 {
		t.Errorf("alpha %d..%d, want 0..255", p[0].A, p[255].A)
	}
	for i := 1; i < 256; i++ {
		if p[i].A < p[i-1].A {
			t.Fatalf("alpha decreases at %d", i)
		}
	}
}
