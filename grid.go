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
	"maps"
	"slices"
)

// Mode selects how [Grid.Add] maintains the extrema.
type Mode int

const (
	// Incremental extends the extrema in place and reports samples which
	// lower the minimum as skipped.
	Incremental Mode = iota

	// BulkReplace routes extrema changes through SetMax and SetMin.  It is
	// used while the grid is being rebuilt by Replace, which sets the final
	// extrema explicitly afterwards.
	BulkReplace
)

func (m Mode) String() string {
	switch m {
	case Incremental:
		return "incremental"
	case BulkReplace:
		return "bulk"
	default:
		return "Mode(?)"
	}
}

// Grid accumulates sample values in a sparse grid of integer coordinates
// and tracks the minimum and maximum accumulated value.
//
// Coordinates are not bounds checked; cells outside the drawing area are
// kept but never become visible.
type Grid struct {
	cells         map[Coord]Cell
	min, max      float64
	defaultRadius int
}

// NewGrid returns an empty grid.  Samples without a radius are assigned
// defaultRadius.
func NewGrid(defaultRadius int) *Grid {
	if defaultRadius <= 0 {
		defaultRadius = DefaultRadius
	}
	return &Grid{
		cells:         make(map[Coord]Cell),
		defaultRadius: defaultRadius,
	}
}

// Add accumulates s into its cell.  A new cell takes the radius of s; later
// samples for the same cell only add their value.
//
// In Incremental mode the first sample added to an empty grid sets both
// extrema to its value.  A cell value above the maximum extends the maximum.
// A cell value below the minimum becomes the new minimum and the sample is
// reported as skipped (ok == false): it must not be drawn.
func (g *Grid) Add(s Sample, mode Mode) (r Resolved, ok bool) {
	radius := s.Radius
	if radius <= 0 {
		radius = g.defaultRadius
	}

	if mode == Incremental && len(g.cells) == 0 {
		g.min, g.max = s.Value, s.Value
	}

	key := Coord{X: s.X, Y: s.Y}
	c, seen := g.cells[key]
	if seen {
		c.Value += s.Value
	} else {
		c = Cell{Value: s.Value, Radius: radius}
	}
	g.cells[key] = c

	switch v := c.Value; {
	case v > g.max:
		if mode == Incremental {
			g.max = v
		} else {
			g.SetMax(v)
		}
	case v < g.min:
		if mode == Incremental {
			g.min = v
		} else {
			g.SetMin(v)
		}
		return Resolved{}, false
	}

	return Resolved{
		X:      s.X,
		Y:      s.Y,
		Value:  s.Value,
		Radius: radius,
		Min:    g.min,
		Max:    g.max,
	}, true
}

// Replace discards all cells, accumulates the given samples and then sets
// the extrema to exactly maxValue and minValue, whatever the sample
// values are.
func (g *Grid) Replace(samples []Sample, maxValue, minValue float64) {
	g.cells = make(map[Coord]Cell, len(samples))
	for _, s := range samples {
		g.Add(s, BulkReplace)
	}
	g.SetMax(maxValue)
	g.SetMin(minValue)
}

// SetMax overwrites the maximum.
func (g *Grid) SetMax(v float64) { g.max = v }

// SetMin overwrites the minimum.
func (g *Grid) SetMin(v float64) { g.min = v }

// Extrema returns the current minimum and maximum.
func (g *Grid) Extrema() Extrema {
	return Extrema{Min: g.min, Max: g.max}
}

// Len returns the number of non-empty cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Cell returns the state of the cell at (x, y).
func (g *Grid) Cell(x, y int) (Cell, bool) {
	c, ok := g.cells[Coord{X: x, Y: y}]
	return c, ok
}

// Snapshot is a read-only copy of the grid, used to redraw everything.
type Snapshot struct {
	Min   float64
	Max   float64
	Cells map[Coord]Cell
}

// Snapshot returns a copy of the grid contents and extrema.
func (g *Grid) Snapshot() Snapshot {
	return Snapshot{
		Min:   g.min,
		Max:   g.max,
		Cells: maps.Clone(g.cells),
	}
}

// Export flattens the grid into samples carrying the accumulated value and
// radius of each cell, ordered by x and then y.
func (g *Grid) Export() []Sample {
	keys := slices.SortedFunc(maps.Keys(g.cells), compareCoord)
	out := make([]Sample, len(keys))
	for i, k := range keys {
		c := g.cells[k]
		out[i] = Sample{X: k.X, Y: k.Y, Value: c.Value, Radius: c.Radius}
	}
	return out
}

// compareCoord orders coordinates by x, then by y.
func compareCoord(a, b Coord) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}
