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
	"testing"
)

func TestStampMemoised(t *testing.T) {
	c := NewStampCache(0.15)

	a := c.Get(12)
	b := c.Get(12)
	if a != b {
		t.Error("second Get returned a different mask")
	}
	if got := a.Bounds(); got != image.Rect(0, 0, 24, 24) {
		t.Errorf("bounds %v, want 24×24", got)
	}
	c.Get(5)
	if c.Len() != 2 {
		t.Errorf("%d masks cached, want 2", c.Len())
	}
}

func TestStampZeroRadius(t *testing.T) {
	c := NewStampCache(0.5)
	for _, r := range []int{0, -3} {
		if m := c.Get(r); !m.Bounds().Empty() {
			t.Errorf("radius %d: bounds %v, want empty", r, m.Bounds())
		}
	}
}

func TestStampSoft(t *testing.T) {
	const r = 10
	m := NewStampCache(0.5).Get(r)

	if a := m.AlphaAt(r, r).A; a != 255 {
		t.Errorf("centre alpha %d, want 255", a)
	}
	if a := m.AlphaAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha %d, want 0", a)
	}

	// alpha falls off from the centre
	for x := r + 1; x < 2*r; x++ {
		if m.AlphaAt(x, r).A > m.AlphaAt(x-1, r).A {
			t.Errorf("alpha increases at x=%d", x)
		}
	}
	// and is symmetric
	for y := range 2 * r {
		for x := range 2 * r {
			a := m.AlphaAt(x, y).A
			if b := m.AlphaAt(2*r-1-x, y).A; a != b {
				t.Fatalf("(%d,%d) = %d, mirror = %d", x, y, a, b)
			}
			if b := m.AlphaAt(y, x).A; a != b {
				t.Fatalf("(%d,%d) = %d, transposed = %d", x, y, a, b)
			}
		}
	}
}

func TestStampHard(t *testing.T) {
	const r = 10
	c := NewStampCache(1)
	m := c.Get(r)

	if a := m.AlphaAt(r, r).A; a != 255 {
		t.Errorf("centre alpha %d, want 255", a)
	}
	if a := m.AlphaAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha %d, want 0", a)
	}

	var sum float64
	for _, a := range m.Pix {
		sum += float64(a) / 255
	}
	area := math.Pi * r * r
	if sum < 0.95*area || sum > 1.01*area {
		t.Errorf("covered area %g, want about %g", sum, area)
	}

	// the rasteriser is reused between radii
	c.Get(3)
	if m2 := c.Get(r); m2 != m {
		t.Error("mask replaced")
	}
}

func TestStampFactorClamped(t *testing.T) {
	if f := NewStampCache(2).Factor(); f != 1 {
		t.Errorf("factor %g, want 1", f)
	}
	if f := NewStampCache(-1).Factor(); f != 0 {
		t.Errorf("factor %g, want 0", f)
	}
}

func TestStampFactor(t *testing.T) {
	cases := []struct {
		blur, want float64
	}{
		{0.85, 0.85},
		{0.5, 0.5},
		{1, 1},
		{3, 1},
		{-1, 0},
	}
	for _, c := range cases {
		got := Config{Blur: c.blur}.stampFactor()
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("blur %g: factor %g, want %g", c.blur, got, c.want)
		}
	}
}
