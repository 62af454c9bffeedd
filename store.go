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

// Listener receives the changes of a [Store].  All methods are called
// synchronously, before the Store method which caused them returns.
type Listener interface {
	// IncrementalRender is called when a sample can be drawn on top of the
	// current image.
	IncrementalRender(Batch)

	// FullRender is called when the whole image must be redrawn.
	FullRender(Snapshot)

	// ExtremaChange is called when the extrema were set explicitly.
	ExtremaChange(Extrema)
}

// ListenerFuncs is a [Listener] built from optional functions.
// Nil fields are ignored.
type ListenerFuncs struct {
	OnIncrementalRender func(Batch)
	OnFullRender        func(Snapshot)
	OnExtremaChange     func(Extrema)
}

// IncrementalRender implements [Listener].
func (f ListenerFuncs) IncrementalRender(b Batch) {
	if f.OnIncrementalRender != nil {
		f.OnIncrementalRender(b)
	}
}

// FullRender implements [Listener].
func (f ListenerFuncs) FullRender(s Snapshot) {
	if f.OnFullRender != nil {
		f.OnFullRender(s)
	}
}

// ExtremaChange implements [Listener].
func (f ListenerFuncs) ExtremaChange(e Extrema) {
	if f.OnExtremaChange != nil {
		f.OnExtremaChange(e)
	}
}

// Store owns the sample grid and tells its listeners what needs to be
// redrawn.  Listeners are called in the order in which they subscribed.
type Store struct {
	grid      *Grid
	listeners []Listener
}

// NewStore returns an empty store.  Samples without a radius are
// assigned defaultRadius.
func NewStore(defaultRadius int) *Store {
	return &Store{grid: NewGrid(defaultRadius)}
}

// Subscribe registers l for all future changes.
func (s *Store) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// AddSample accumulates a sample.  Unless the sample lowers the minimum,
// listeners receive an incremental render for it.  The return value
// reports whether the sample was passed on for drawing.
func (s *Store) AddSample(sample Sample) bool {
	r, ok := s.grid.Add(sample, Incremental)
	if !ok {
		Logger().Debug("sample below minimum, not drawn",
			"x", sample.X, "y", sample.Y, "min", s.grid.min)
		return false
	}

	b := Batch{Min: s.grid.min, Max: s.grid.max, Samples: []Resolved{r}}
	for _, l := range s.listeners {
		l.IncrementalRender(b)
	}
	return true
}

// SetData replaces the grid contents.  The extrema are taken from d,
// whatever the sample values are.
func (s *Store) SetData(d Dataset) {
	s.grid.Replace(d.Samples, d.Max, d.Min)
	s.extremaChanged()
}

// SetMax sets the maximum and redraws everything.
func (s *Store) SetMax(v float64) {
	s.grid.SetMax(v)
	s.extremaChanged()
}

// SetMin sets the minimum and redraws everything.
func (s *Store) SetMin(v float64) {
	s.grid.SetMin(v)
	s.extremaChanged()
}

// Repaint asks the listeners to redraw everything.
func (s *Store) Repaint() {
	snap := s.grid.Snapshot()
	for _, l := range s.listeners {
		l.FullRender(snap)
	}
}

func (s *Store) extremaChanged() {
	e := s.grid.Extrema()
	for _, l := range s.listeners {
		l.ExtremaChange(e)
	}
	s.Repaint()
}

// Data returns the grid contents in external form.
func (s *Store) Data() Dataset {
	e := s.grid.Extrema()
	return Dataset{Min: e.Min, Max: e.Max, Samples: s.grid.Export()}
}

// Snapshot returns a copy of the grid for drawing.
func (s *Store) Snapshot() Snapshot {
	return s.grid.Snapshot()
}

// Extrema returns the current minimum and maximum.
func (s *Store) Extrema() Extrema {
	return s.grid.Extrema()
}
