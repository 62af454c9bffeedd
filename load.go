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
	"fmt"
	"io"
	"math"

	geojson "github.com/paulmach/go.geojson"
)

// ErrNoPoint is returned for GeoJSON features without point geometry.
var ErrNoPoint = errors.New("feature is not a point")

// Property names used for samples in GeoJSON files.
const (
	PropValue  = "value"
	PropRadius = "radius"
)

// ReadDataset reads samples in one of two JSON formats: the native form
// {"min": ..., "max": ..., "data": [{"x": ..., "y": ..., "value": ...}]}
// or a GeoJSON feature collection of points.
//
// For GeoJSON input, and for native input without a "max" field, the
// extrema are computed from the accumulated cell values.
func ReadDataset(r io.Reader) (Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Dataset{}, fmt.Errorf("reading samples: %w", err)
	}

	var probe struct {
		Type string   `json:"type"`
		Max  *float64 `json:"max"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Dataset{}, fmt.Errorf("reading samples: %w", err)
	}

	if probe.Type == "FeatureCollection" {
		samples, err := DecodeGeoJSON(data)
		if err != nil {
			return Dataset{}, err
		}
		return datasetFor(samples), nil
	}

	var d Dataset
	if err := json.Unmarshal(data, &d); err != nil {
		return Dataset{}, fmt.Errorf("reading samples: %w", err)
	}
	if probe.Max == nil {
		return datasetFor(d.Samples), nil
	}
	return d, nil
}

// datasetFor wraps samples in a dataset whose extrema are the smallest
// and largest accumulated cell value.
func datasetFor(samples []Sample) Dataset {
	d := Dataset{Samples: samples}
	if len(samples) == 0 {
		return d
	}
	sums := make(map[Coord]float64, len(samples))
	for _, s := range samples {
		sums[Coord{X: s.X, Y: s.Y}] += s.Value
	}
	d.Min, d.Max = math.Inf(1), math.Inf(-1)
	for _, v := range sums {
		d.Min = min(d.Min, v)
		d.Max = max(d.Max, v)
	}
	return d
}

// DecodeGeoJSON reads a GeoJSON feature collection of points or
// multi-points.  Coordinates are rounded to whole pixels.  The "value"
// property defaults to 1, the "radius" property to 0 (the configured
// default radius).
func DecodeGeoJSON(data []byte) ([]Sample, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decoding geojson: %w", err)
	}

	var samples []Sample
	for i, f := range fc.Features {
		if f.Geometry == nil {
			return nil, fmt.Errorf("feature %d: %w", i, ErrNoPoint)
		}

		value := DefaultValue
		if _, ok := f.Properties[PropValue]; ok {
			value, err = f.PropertyFloat64(PropValue)
			if err != nil {
				return nil, fmt.Errorf("feature %d: %w", i, err)
			}
		}
		radius := 0
		if _, ok := f.Properties[PropRadius]; ok {
			r, err := f.PropertyFloat64(PropRadius)
			if err != nil {
				return nil, fmt.Errorf("feature %d: %w", i, err)
			}
			radius = int(math.Round(r))
		}

		var points [][]float64
		switch {
		case f.Geometry.IsPoint():
			points = [][]float64{f.Geometry.Point}
		case f.Geometry.IsMultiPoint():
			points = f.Geometry.MultiPoint
		default:
			return nil, fmt.Errorf("feature %d (%s): %w", i, f.Geometry.Type, ErrNoPoint)
		}
		for _, p := range points {
			if len(p) < 2 {
				return nil, fmt.Errorf("feature %d: short coordinate", i)
			}
			samples = append(samples, Sample{
				X:      int(math.Round(p[0])),
				Y:      int(math.Round(p[1])),
				Value:  value,
				Radius: radius,
			})
		}
	}
	return samples, nil
}

// EncodeGeoJSON writes samples as a GeoJSON feature collection with one
// point feature per sample.
func EncodeGeoJSON(samples []Sample) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, s := range samples {
		f := geojson.NewPointFeature([]float64{float64(s.X), float64(s.Y)})
		f.SetProperty(PropValue, s.Value)
		if s.Radius > 0 {
			f.SetProperty(PropRadius, s.Radius)
		}
		fc.AddFeature(f)
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding geojson: %w", err)
	}
	return data, nil
}
