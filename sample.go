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
	"fmt"
)

// DefaultValue is the weight of a sample whose value is missing in
// decoded input.
const DefaultValue = 1.0

// Sample is a single weighted point.
type Sample struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Value is added to the cell at (X, Y).  Zero and negative values
	// are accumulated like any other value.
	Value float64 `json:"value"`

	// Radius is the stamp radius in pixels.  Zero selects the configured
	// default radius.
	Radius int `json:"radius,omitempty"`
}

// UnmarshalJSON decodes a sample.  A missing "value" field is read as
// [DefaultValue].
func (s *Sample) UnmarshalJSON(data []byte) error {
	var raw struct {
		X      int      `json:"x"`
		Y      int      `json:"y"`
		Value  *float64 `json:"value"`
		Radius int      `json:"radius"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding sample: %w", err)
	}
	*s = Sample{X: raw.X, Y: raw.Y, Value: DefaultValue, Radius: raw.Radius}
	if raw.Value != nil {
		s.Value = *raw.Value
	}
	return nil
}

// Coord identifies a grid cell.
type Coord struct {
	X, Y int
}

// Cell is the accumulated state at one coordinate.
type Cell struct {
	Value  float64
	Radius int // radius of the first sample written to the cell
}

// Resolved is a sample after accumulation, ready to be drawn.
type Resolved struct {
	X, Y   int
	Value  float64
	Radius int
	Min    float64
	Max    float64
}

// Extrema are the bounds used to normalise values for drawing.
type Extrema struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Dataset is the flattened, external form of the grid contents.
type Dataset struct {
	Min     float64  `json:"min"`
	Max     float64  `json:"max"`
	Samples []Sample `json:"data"`
}

// Batch is the payload of an incremental render.
type Batch struct {
	Min     float64
	Max     float64
	Samples []Resolved
}
