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
package testcases

import (
	"math"
	"math/rand/v2"
)

var patternCases = []Scenario{
	{
		Name:   "lattice",
		Width:  128,
		Height: 128,
		Radius: 12,
		Points: lattice(16, 16, 24, 5, 5),
	},
	{
		Name:   "ring",
		Width:  128,
		Height: 128,
		Radius: 10,
		Points: ring(64, 64, 40, 24),
	},
	{
		Name:   "cluster",
		Width:  256,
		Height: 256,
		Radius: 15,
		Points: cluster(128, 128, 30, 400, 1),
	},
	{
		Name:   "cluster_hard",
		Width:  256,
		Height: 256,
		Radius: 15,
		Blur:   1, // hard edge
		Points: cluster(128, 128, 30, 400, 2),
	},
	{
		Name:   "clamped",
		Width:  128,
		Height: 128,
		Radius: 12,
		Points: lattice(16, 16, 24, 5, 5),
		Min:    2,
		Max:    10,
	},
}

// lattice places nx × ny samples on a square grid, the value growing from
// the top-left to the bottom-right corner.
func lattice(x0, y0, step, nx, ny int) []Point {
	pts := make([]Point, 0, nx*ny)
	for j := range ny {
		for i := range nx {
			pts = append(pts, Point{
				X:     x0 + i*step,
				Y:     y0 + j*step,
				Value: float64(1 + i + j),
			})
		}
	}
	return pts
}

// ring places n samples of weight 1 on a circle.
func ring(cx, cy int, r float64, n int) []Point {
	pts := make([]Point, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		pts[i] = pt(
			cx+int(math.Round(r*math.Cos(angle))),
			cy+int(math.Round(r*math.Sin(angle))),
		)
	}
	return pts
}

// cluster draws n samples from a normal distribution around (cx, cy).
// The seed makes the result reproducible.
func cluster(cx, cy int, sigma float64, n int, seed uint64) []Point {
	rng := rand.New(rand.NewPCG(seed, 0x5eed))
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = pt(
			cx+int(math.Round(rng.NormFloat64()*sigma)),
			cy+int(math.Round(rng.NormFloat64()*sigma)),
		)
	}
	return pts
}
