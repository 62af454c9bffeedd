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

var basicCases = []Scenario{
	{
		Name:   "single",
		Width:  64,
		Height: 64,
		Radius: 20,
		Points: []Point{pt(32, 32)},
	},
	{
		Name:   "single_hard",
		Width:  64,
		Height: 64,
		Radius: 20,
		Blur:   1, // hard edge
		Points: []Point{pt(32, 32)},
	},
	{
		Name:   "same_cell",
		Width:  64,
		Height: 64,
		Radius: 16,
		Points: []Point{pt(32, 32), pt(32, 32), pt(32, 32)},
	},
	{
		Name:   "pair",
		Width:  96,
		Height: 64,
		Radius: 20,
		Points: []Point{
			{X: 32, Y: 32, Value: 1},
			{X: 64, Y: 32, Value: 4},
		},
	},
	{
		Name:   "mixed_radius",
		Width:  128,
		Height: 64,
		Radius: 10,
		Points: []Point{
			{X: 20, Y: 32, Value: 2, Radius: 8},
			{X: 60, Y: 32, Value: 2},
			{X: 100, Y: 32, Value: 2, Radius: 24},
		},
	},
}
