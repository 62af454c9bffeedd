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

// Package heatmap renders heat maps from weighted point samples.
//
// Samples are accumulated in a sparse grid ([Grid]).  Every cell is drawn
// into an alpha buffer as a disc with a soft edge ([StampCache]), with an
// alpha proportional to the cell value relative to the current minimum and
// maximum.  The alpha buffer is then mapped through a colour gradient
// ([Palette]) into the visible image ([Compositor]).
//
// New samples are drawn incrementally on top of the existing image; only
// the rectangle touched by the new stamps is recoloured.  Setting the data
// or the extrema explicitly redraws everything.
//
// None of the types in this package are safe for concurrent use.
package heatmap

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// Heatmap connects a [Store] to a [Compositor] drawing into memory.
type Heatmap struct {
	cfg   Config
	store *Store
	comp  *Compositor
}

// New returns an empty heat map.
func New(cfg Config) *Heatmap {
	cfg = cfg.withDefaults()
	h := &Heatmap{
		cfg:   cfg,
		store: NewStore(cfg.Radius),
		comp:  NewCompositor(cfg, NewMemorySurface(cfg.Width, cfg.Height)),
	}
	h.store.Subscribe(h.comp)
	h.store.Subscribe(ListenerFuncs{OnExtremaChange: h.extremaChanged})
	return h
}

func (h *Heatmap) extremaChanged(e Extrema) {
	if h.cfg.OnExtremaChange == nil {
		return
	}
	h.cfg.OnExtremaChange(Legend{Min: e.Min, Max: e.Max, Gradient: h.cfg.Gradient})
}

// Subscribe registers an additional listener.  It is called after the
// listeners installed by [New].
func (h *Heatmap) Subscribe(l Listener) {
	h.store.Subscribe(l)
}

// AddSample adds a sample and draws it.  It reports false if the sample
// lowered the minimum; such a sample is stored but not drawn.
func (h *Heatmap) AddSample(s Sample) bool {
	return h.store.AddSample(s)
}

// SetData replaces all samples and the extrema, and redraws the image.
func (h *Heatmap) SetData(d Dataset) {
	h.store.SetData(d)
}

// SetMax sets the maximum and redraws the image.
func (h *Heatmap) SetMax(v float64) {
	h.store.SetMax(v)
}

// SetMin sets the minimum and redraws the image.
func (h *Heatmap) SetMin(v float64) {
	h.store.SetMin(v)
}

// Repaint redraws the image from the stored samples.
func (h *Heatmap) Repaint() {
	h.store.Repaint()
}

// Data returns the accumulated cells and the extrema.
func (h *Heatmap) Data() Dataset {
	return h.store.Data()
}

// Extrema returns the current minimum and maximum.
func (h *Heatmap) Extrema() Extrema {
	return h.store.Extrema()
}

// ValueAt estimates the value at pixel (x, y) from the drawn image.
func (h *Heatmap) ValueAt(x, y int) int {
	return h.comp.ValueAt(image.Pt(x, y))
}

// Image returns the rendered image.  The image is owned by the heat map
// and changes with every call which draws.
func (h *Heatmap) Image() *image.NRGBA {
	return h.comp.Image()
}

// EncodePNG writes the rendered image in PNG format.
func (h *Heatmap) EncodePNG(w io.Writer) error {
	img := h.Image()
	if img == nil {
		return fmt.Errorf("heatmap: nothing rendered")
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("heatmap: encoding png: %w", err)
	}
	return nil
}

// Resize changes the image size.  The image is cleared; call
// [Heatmap.Repaint] to draw it again.
func (h *Heatmap) Resize(width, height int) {
	h.cfg.Width, h.cfg.Height = width, height
	h.comp.Resize(width, height)
}

// UpdateConfig changes the rendering options.  Existing pixels are not
// redrawn; call [Heatmap.Repaint] to apply the new options everywhere.
// The default radius of the stored samples does not change.
func (h *Heatmap) UpdateConfig(cfg Config) {
	cfg = cfg.withDefaults()
	cfg.Radius = h.cfg.Radius
	h.cfg = cfg
	h.comp.UpdateConfig(cfg)
}

// Config returns the configuration in use, with defaults filled in.
func (h *Heatmap) Config() Config {
	return h.cfg
}
