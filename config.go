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

import "math"

// Default configuration values.
const (
	DefaultRadius     = 40
	DefaultBlur       = 0.85
	DefaultWidth      = 512
	DefaultHeight     = 512
	DefaultMaxOpacity = 1.0
	DefaultMinOpacity = 0.0
)

// Config holds the rendering options.  Zero values select the defaults.
type Config struct {
	// Radius is the stamp radius for samples which do not set one.
	Radius int `json:"radius,omitempty"`

	// Gradient maps normalised intensity to colour.
	// Nil selects [DefaultGradient].
	Gradient Gradient `json:"gradient,omitempty"`

	// Blur is the fraction of the stamp radius which is drawn fully
	// opaque, in [0, 1].  Beyond it a stamp fades to zero at the radius.
	// 1 draws hard-edged discs.
	Blur float64 `json:"blur,omitempty"`

	// Opacity, if positive, is used for every coloured pixel and disables
	// MaxOpacity and MinOpacity.
	Opacity float64 `json:"opacity,omitempty"`

	// MaxOpacity and MinOpacity bound the opacity of coloured pixels.
	// Both are in [0, 1].
	MaxOpacity float64 `json:"maxOpacity,omitempty"`
	MinOpacity float64 `json:"minOpacity,omitempty"`

	// UseGradientOpacity takes the opacity of coloured pixels from the
	// alpha channel of the gradient.
	UseGradientOpacity bool `json:"useGradientOpacity,omitempty"`

	// Width and Height are the buffer dimensions in pixels.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// OnExtremaChange, if set, is called whenever the extrema are set
	// explicitly, for example to update a legend.
	OnExtremaChange func(Legend) `json:"-"`
}

// Legend describes the current value range and gradient.
type Legend struct {
	Min      float64
	Max      float64
	Gradient Gradient
}

// withDefaults returns a copy of c with missing values filled in.
func (c Config) withDefaults() Config {
	if c.Radius <= 0 {
		c.Radius = DefaultRadius
	}
	if c.Gradient == nil {
		c.Gradient = DefaultGradient()
	}
	if c.Blur == 0 {
		c.Blur = DefaultBlur
	}
	if c.MaxOpacity == 0 {
		c.MaxOpacity = DefaultMaxOpacity
	}
	if c.MinOpacity == 0 {
		c.MinOpacity = DefaultMinOpacity
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	return c
}

// stampFactor returns the blur setting clamped to [0, 1].  A result of 1
// means a hard edge.
func (c Config) stampFactor() float64 {
	return clamp01(c.Blur)
}

// opacityByte scales an opacity in [0, 1] to [0, 255].
func opacityByte(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}

func clamp01(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
