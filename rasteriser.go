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
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Cubic is a cubic Bézier segment: start point, two control points, end point.
type Cubic [4]vec.Vec2

// Outline is a closed shape made of cubic segments.  Consecutive segments
// are expected to share end and start points; the outline is closed
// implicitly from the end of the last segment back to the start of the first.
type Outline []Cubic

// circleKappa is the control point distance for approximating a quarter
// circle of radius 1 by a cubic Bézier curve.
const circleKappa = 0.5522847498

// UnitCircle returns an outline approximating the circle of radius 1
// around the origin, traversed counter-clockwise in device space.
func UnitCircle() Outline {
	k := circleKappa
	return Outline{
		{{X: 1, Y: 0}, {X: 1, Y: k}, {X: k, Y: 1}, {X: 0, Y: 1}},
		{{X: 0, Y: 1}, {X: -k, Y: 1}, {X: -1, Y: k}, {X: -1, Y: 0}},
		{{X: -1, Y: 0}, {X: -1, Y: -k}, {X: -k, Y: -1}, {X: 0, Y: -1}},
		{{X: 0, Y: -1}, {X: k, Y: -1}, {X: 1, Y: -k}, {X: 1, Y: 0}},
	}
}

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser turns closed outlines into per-pixel coverage values between
// 0 (outside) and 1 (inside), using the nonzero winding rule.  Internal
// buffers grow as needed but are never released, so a Rasteriser that is
// reused for shapes of similar size does not allocate.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps outline coordinates to device pixels. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output to this device-space rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	Flatness float64

	cover       []float32 // signed vertical extent per pixel; reused as output
	area        []float32 // area to the right of the edge within each pixel
	rowHasEdges []bool
	edges       []edge

	bboxEmpty                          bool
	devXMin, devXMax, devYMin, devYMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with an
// identity CTM and the default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset prepares the Rasteriser for a new clip rectangle, keeping the
// capacity of its internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.rowHasEdges = r.rowHasEdges[:0]
	r.edges = r.edges[:0]
}

// FillNonZero fills the outline.  The emit callback receives coverage
// row by row; the coverage slice is only valid during the call.
func (r *Rasteriser) FillNonZero(o Outline, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(o)
	if !ok {
		return
	}

	width := xMax - xMin
	height := yMax - yMin
	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		top := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		bot := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := top; y < bot; y++ {
			row := y - yMin
			off := row * width
			accumulateEdge(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrateNonZero(coverage, r.area[off:off+width])
		if trimmed, skip := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+skip, trimmed)
		}
	}
}

// collectEdges flattens the outline into device-space edges and returns
// the integer bounding box of the edges, clamped to the clip rectangle.
func (r *Rasteriser) collectEdges(o Outline) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
	if len(o) == 0 {
		return 0, 0, 0, 0, false
	}

	for _, c := range o {
		r.flattenCubic(c, r.addEdge)
	}
	if first, last := o[0][0], o[len(o)-1][3]; first != last {
		r.addEdge(last, first)
	}
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// flattenCubic approximates the curve by line segments, choosing the
// number of segments with Wang's formula measured in device space.
func (r *Rasteriser) flattenCubic(c Cubic, emit func(from, to vec.Vec2)) {
	p0, p1, p2, p3 := c[0], c[1], c[2], c[3]
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// linear applies the linear part of the CTM, ignoring translation.
func (r *Rasteriser) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// addEdge transforms a segment to device space and appends it to the
// edge list.  Horizontal segments do not contribute coverage.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.devXMin = min(r.devXMin, x0, x1)
	r.devXMax = max(r.devXMax, x0, x1)
	r.devYMin = min(r.devYMin, y0, y1)
	r.devYMax = max(r.devYMax, y0, y1)
}

// Coverage model: every edge adds, for each pixel it passes through, its
// signed vertical extent to cover[] and that extent weighted by the part of
// the pixel to the right of the edge to area[].  Integrating a row from the
// left then yields the signed area of the shape inside each pixel.

// accumulateEdge adds the contribution of e within scanline y.  The slices
// are indexed by x - xMin.  Contributions left of the row are folded into
// the first pixel, contributions right of the row are dropped.
func accumulateEdge(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	left := int(math.Floor(min(xa, xb)))
	right := int(math.Floor(max(xa, xb)))

	switch {
	case right < xMin:
		v := sign * float32(yBot-yTop)
		cover[0] += v
		area[0] += v
		return
	case left >= xMax:
		return
	case left == right:
		addSpan(e, yTop, yBot, sign, left, cover, area, xMin, xMax)
		return
	}

	// the edge crosses several pixel columns: split it at column boundaries
	dydx := 1 / e.dxdy
	for px := left; px <= right; px++ {
		ya := e.y0 + dydx*(float64(px)-e.x0)
		yb := e.y0 + dydx*(float64(px+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		addSpan(e, lo, hi, sign, px, cover, area, xMin, xMax)
	}
}

// addSpan records the part of e between lo and hi, which lies inside
// pixel column px.
func addSpan(e *edge, lo, hi float64, sign float32, px int, cover, area []float32, xMin, xMax int) {
	v := sign * float32(hi-lo)
	if px < xMin {
		cover[0] += v
		area[0] += v
		return
	}
	if px >= xMax {
		return
	}
	xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
	frac := xMid - float64(px)
	i := px - xMin
	cover[i] += v
	area[i] += v * float32(1-frac)
}

// integrateNonZero turns accumulated cover/area values into coverage in
// [0, 1], overwriting cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros strips leading and trailing zeros.  It returns nil if all
// values are zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the curve approximation tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute coverage.
	horizontalEdgeThreshold = 1e-10
)
