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
	"fmt"
	"slices"
	"testing"
)

// recorder is a Listener which logs the calls it receives.
type recorder struct {
	events  []string
	batches []Batch
	snaps   []Snapshot
	extrema []Extrema
}

func (r *recorder) IncrementalRender(b Batch) {
	r.events = append(r.events, "incremental")
	r.batches = append(r.batches, b)
}

func (r *recorder) FullRender(s Snapshot) {
	r.events = append(r.events, "full")
	r.snaps = append(r.snaps, s)
}

func (r *recorder) ExtremaChange(e Extrema) {
	r.events = append(r.events, "extrema")
	r.extrema = append(r.extrema, e)
}

func TestStoreAddSample(t *testing.T) {
	s := NewStore(40)
	rec := &recorder{}
	s.Subscribe(rec)

	if !s.AddSample(Sample{X: 1, Y: 1, Value: 1, Radius: 20}) {
		t.Fatal("first sample not drawn")
	}
	if !s.AddSample(Sample{X: 1, Y: 1, Value: 1, Radius: 20}) {
		t.Fatal("second sample not drawn")
	}

	if !slices.Equal(rec.events, []string{"incremental", "incremental"}) {
		t.Fatalf("events %v", rec.events)
	}
	b := rec.batches[0]
	if b.Min != 1 || b.Max != 1 || len(b.Samples) != 1 {
		t.Errorf("first batch %+v", b)
	}
	if s := b.Samples[0]; s.X != 1 || s.Y != 1 || s.Value != 1 || s.Radius != 20 {
		t.Errorf("first sample %+v", s)
	}
	if b := rec.batches[1]; b.Min != 1 || b.Max != 2 {
		t.Errorf("second batch extrema %g, %g, want 1, 2", b.Min, b.Max)
	}
}

func TestStoreSkipSendsNothing(t *testing.T) {
	s := NewStore(40)
	rec := &recorder{}
	s.Subscribe(rec)

	s.AddSample(Sample{X: 0, Y: 0, Value: 10})
	if s.AddSample(Sample{X: 5, Y: 5, Value: 1}) {
		t.Error("sample below the minimum reported as drawn")
	}
	if len(rec.events) != 1 {
		t.Errorf("events %v, want a single incremental render", rec.events)
	}
	if e := s.Extrema(); e.Min != 1 {
		t.Errorf("min %g, want 1", e.Min)
	}
}

func TestStoreSetDataEventOrder(t *testing.T) {
	s := NewStore(40)
	a, b := &recorder{}, &recorder{}
	var order []string
	s.Subscribe(a)
	s.Subscribe(ListenerFuncs{
		OnExtremaChange: func(Extrema) { order = append(order, "second:extrema") },
		OnFullRender:    func(Snapshot) { order = append(order, "second:full") },
	})
	s.Subscribe(b)

	s.SetData(Dataset{
		Min: 5,
		Max: 50,
		Samples: []Sample{
			{X: 1, Y: 2, Value: 1},
			{X: 3, Y: 4, Value: 1000},
		},
	})

	for _, r := range []*recorder{a, b} {
		if !slices.Equal(r.events, []string{"extrema", "full"}) {
			t.Errorf("events %v, want extrema then full", r.events)
		}
		if r.extrema[0] != (Extrema{Min: 5, Max: 50}) {
			t.Errorf("extrema event %+v", r.extrema[0])
		}
		if snap := r.snaps[0]; snap.Min != 5 || snap.Max != 50 || len(snap.Cells) != 2 {
			t.Errorf("snapshot %+v", snap)
		}
	}
	if !slices.Equal(order, []string{"second:extrema", "second:full"}) {
		t.Errorf("order %v", order)
	}
	if e := s.Extrema(); e != (Extrema{Min: 5, Max: 50}) {
		t.Errorf("store extrema %+v", e)
	}
}

func TestStoreSetExtrema(t *testing.T) {
	s := NewStore(40)
	s.AddSample(Sample{X: 0, Y: 0, Value: 3})
	rec := &recorder{}
	s.Subscribe(rec)

	s.SetMax(100)
	s.SetMin(-7)

	want := []string{"extrema", "full", "extrema", "full"}
	if !slices.Equal(rec.events, want) {
		t.Errorf("events %v, want %v", rec.events, want)
	}
	if e := s.Extrema(); e != (Extrema{Min: -7, Max: 100}) {
		t.Errorf("extrema %+v", e)
	}
	if rec.extrema[1] != (Extrema{Min: -7, Max: 100}) {
		t.Errorf("second extrema event %+v", rec.extrema[1])
	}
}

func TestStoreRoundTrip(t *testing.T) {
	s := NewStore(15)
	for i := range 20 {
		s.AddSample(Sample{X: i % 4, Y: i % 3, Value: float64(i), Radius: i % 5})
	}
	d := s.Data()

	s2 := NewStore(15)
	s2.SetData(d)

	a, b := s.Snapshot(), s2.Snapshot()
	if a.Min != b.Min || a.Max != b.Max {
		t.Errorf("extrema %g..%g, want %g..%g", b.Min, b.Max, a.Min, a.Max)
	}
	if len(a.Cells) != len(b.Cells) {
		t.Fatalf("%d cells, want %d", len(b.Cells), len(a.Cells))
	}
	for k, c := range a.Cells {
		if b.Cells[k] != c {
			t.Errorf("cell %v: %+v, want %+v", k, b.Cells[k], c)
		}
	}
}

func TestStoreRepaint(t *testing.T) {
	s := NewStore(40)
	rec := &recorder{}
	s.Subscribe(rec)
	s.Repaint()
	if fmt.Sprint(rec.events) != "[full]" {
		t.Errorf("events %v", rec.events)
	}
}
