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
	"encoding/json"
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"blue", color.NRGBA{B: 255, A: 255}},
		{" Yellow ", color.NRGBA{R: 255, G: 255, A: 255}},
		{"#f00", color.NRGBA{R: 255, A: 255}},
		{"#00ff80", color.NRGBA{G: 255, B: 128, A: 255}},
		{"rgb(1, 2, 3)", color.NRGBA{R: 1, G: 2, B: 3, A: 255}},
		{"rgba(10,20,30,0.5)", color.NRGBA{R: 10, G: 20, B: 30, A: 128}},
		{"transparent", color.NRGBA{}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "nocolour", "#12", "rgb(1,2)", "rgb(1,2,300)", "hsl(1,2,3)", "rgba(1,2,3,x)"} {
		if _, err := ParseColor(in); !errors.Is(err, errBadColor) {
			t.Errorf("%q: got %v, want errBadColor", in, err)
		}
	}
}

func TestFormatColor(t *testing.T) {
	for _, c := range []color.NRGBA{
		{R: 255, A: 255},
		{R: 12, G: 34, B: 56, A: 255},
		{R: 1, G: 2, B: 3, A: 128},
		{},
	} {
		s := FormatColor(c)
		back, err := ParseColor(s)
		if err != nil {
			t.Errorf("%v: %q: %v", c, s, err)
			continue
		}
		if back != c {
			t.Errorf("%v -> %q -> %v", c, s, back)
		}
	}
}

func TestGradientJSON(t *testing.T) {
	var g Gradient
	err := json.Unmarshal([]byte(`{"1": "red", "0.25": "blue", "0.5": "#00ff00"}`), &g)
	if err != nil {
		t.Fatal(err)
	}
	if len(g) != 3 || g[0].Offset != 0.25 || g[1].Offset != 0.5 || g[2].Offset != 1 {
		t.Fatalf("got %+v", g)
	}
	if g[1].Color != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("green stop %v", g[1].Color)
	}

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	var g2 Gradient
	if err := json.Unmarshal(data, &g2); err != nil {
		t.Fatal(err)
	}
	if len(g2) != len(g) {
		t.Fatalf("%s: got %d stops", data, len(g2))
	}
	for i := range g {
		if g2[i] != g[i] {
			t.Errorf("stop %d: %+v, want %+v", i, g2[i], g[i])
		}
	}
}

func TestParseGradientErrors(t *testing.T) {
	for _, m := range []map[string]string{
		{"x": "red"},
		{"1.5": "red"},
		{"-0.1": "red"},
		{"0.5": "notacolour"},
	} {
		if _, err := ParseGradient(m); err == nil {
			t.Errorf("%v: no error", m)
		}
	}
}
