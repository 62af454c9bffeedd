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

var edgeCases = []Scenario{
	{
		// stamps reaching over all four borders
		Name:   "borders",
		Width:  64,
		Height: 64,
		Radius: 16,
		Points: []Point{pt(0, 0), pt(63, 0), pt(0, 63), pt(63, 63), pt(32, -8)},
	},
	{
		// samples far outside the canvas are stored but never visible
		Name:   "outside",
		Width:  64,
		Height: 64,
		Radius: 8,
		Points: []Point{pt(-100, -100), pt(500, 20), pt(32, 32)},
	},
	{
		// all cells have the same value, so max == min
		Name:   "flat",
		Width:  64,
		Height: 64,
		Radius: 10,
		Points: []Point{pt(16, 16), pt(48, 16), pt(16, 48), pt(48, 48)},
	},
	{
		Name:   "zero_and_negative",
		Width:  96,
		Height: 64,
		Radius: 12,
		Points: []Point{
			{X: 16, Y: 32, Value: -2},
			{X: 48, Y: 32, Value: 0},
			{X: 80, Y: 32, Value: 3},
		},
	},
}
