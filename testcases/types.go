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

// Package testcases contains sample sets used to test and benchmark heat
// map rendering.
package testcases

// Scenario defines a single heat map rendering test.
type Scenario struct {
	Name   string // lowercase a-z and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels
	Radius int    // default stamp radius (0 means the package default)
	Blur   float64
	Points []Point

	// Min and Max are the explicit extrema.  If Max is zero, the extrema
	// are computed from the accumulated values.
	Min, Max float64
}

// Point is a weighted sample.
type Point struct {
	X, Y   int
	Value  float64
	Radius int // 0 means the scenario radius
}

// pt is a helper to create a sample of weight 1.
func pt(x, y int) Point {
	return Point{X: x, Y: y, Value: 1}
}
