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
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"slices"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Stop is a colour at a position of a gradient.
type Stop struct {
	Offset float64 // position in [0, 1]
	Color  color.NRGBA
}

// Gradient is a list of colour stops.  In JSON it is written as an object
// mapping offsets to CSS colour strings, for example
//
//	{"0.25": "blue", "0.55": "#00ff00", "1": "rgb(255,0,0)"}
type Gradient []Stop

// DefaultGradient returns the blue, green, yellow, red gradient used when
// no gradient is configured.
func DefaultGradient() Gradient {
	return Gradient{
		{Offset: 0.25, Color: color.NRGBA{R: 0, G: 0, B: 255, A: 255}},
		{Offset: 0.55, Color: color.NRGBA{R: 0, G: 255, B: 0, A: 255}},
		{Offset: 0.85, Color: color.NRGBA{R: 255, G: 255, B: 0, A: 255}},
		{Offset: 1.0, Color: color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
	}
}

// ParseGradient converts a map from offsets to colour strings into a
// gradient sorted by offset.
func ParseGradient(m map[string]string) (Gradient, error) {
	g := make(Gradient, 0, len(m))
	for key, val := range m {
		off, err := strconv.ParseFloat(strings.TrimSpace(key), 64)
		if err != nil {
			return nil, fmt.Errorf("gradient offset %q: %w", key, err)
		}
		if off < 0 || off > 1 {
			return nil, fmt.Errorf("gradient offset %g outside [0, 1]", off)
		}
		col, err := ParseColor(val)
		if err != nil {
			return nil, fmt.Errorf("gradient stop %q: %w", key, err)
		}
		g = append(g, Stop{Offset: off, Color: col})
	}
	slices.SortStableFunc(g, func(a, b Stop) int { return cmp.Compare(a.Offset, b.Offset) })
	return g, nil
}

// MarshalJSON implements [json.Marshaler].
func (g Gradient) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(g))
	for _, s := range g {
		m[strconv.FormatFloat(s.Offset, 'g', -1, 64)] = FormatColor(s.Color)
	}
	return json.Marshal(m)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (g *Gradient) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("decoding gradient: %w", err)
	}
	parsed, err := ParseGradient(m)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

var errBadColor = errors.New("invalid colour")

// ParseColor parses a CSS colour: a colour name like "yellow", a hex
// colour "#rgb" or "#rrggbb", or a functional form "rgb(r, g, b)" or
// "rgba(r, g, b, a)" with a in [0, 1].
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch {
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w %q: %w", errBadColor, s, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil

	case strings.HasPrefix(s, "rgb"):
		return parseFunctional(s)

	case s == "transparent":
		return color.NRGBA{}, nil
	}

	c, ok := colornames.Map[s]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w %q", errBadColor, s)
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// parseFunctional parses "rgb(...)" and "rgba(...)".
func parseFunctional(s string) (color.NRGBA, error) {
	name, args, ok := strings.Cut(s, "(")
	if !ok || !strings.HasSuffix(args, ")") {
		return color.NRGBA{}, fmt.Errorf("%w %q", errBadColor, s)
	}
	parts := strings.Split(strings.TrimSuffix(args, ")"), ",")

	want := 3
	if name == "rgba" {
		want = 4
	} else if name != "rgb" {
		return color.NRGBA{}, fmt.Errorf("%w %q", errBadColor, s)
	}
	if len(parts) != want {
		return color.NRGBA{}, fmt.Errorf("%w %q: need %d components", errBadColor, s, want)
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.NRGBA{}, fmt.Errorf("%w %q: component %d", errBadColor, s, i+1)
		}
		ch[i] = uint8(v)
	}
	c := color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w %q: alpha: %w", errBadColor, s, err)
		}
		c.A = opacityByte(a)
	}
	return c, nil
}

// FormatColor writes c as "#rrggbb" if it is opaque and as
// "rgba(r,g,b,a)" otherwise.  The result can be read by [ParseColor].
func FormatColor(c color.NRGBA) string {
	if c.A == 255 {
		return colorful.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}.Hex()
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B,
		strconv.FormatFloat(float64(c.A)/255, 'g', 4, 64))
}
