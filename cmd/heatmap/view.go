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

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/heatmap"
)

// background is shown where the heat map is transparent.
var background = color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}

type viewCmd struct {
	RenderOptions `embed:""`

	Input       string `arg:"" help:"Sample file (JSON or GeoJSON), or - for stdin."`
	Incremental bool   `help:"Add the samples one at a time instead of all at once."`
}

func (c *viewCmd) Run(g *Globals) error {
	h, err := c.load(c.Input, c.Incremental)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	v := &viewer{screen: screen, hm: h}
	v.draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			v.draw()
		case *tcell.EventMouse:
			v.cursor = image.Pt(ev.Position())
			v.drawStatus()
			screen.Show()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case nil:
			return nil
		}
	}
}

// viewer draws a heat map onto a terminal, two pixels per character cell.
type viewer struct {
	screen tcell.Screen
	hm     *heatmap.Heatmap
	cursor image.Point
	scaled *image.RGBA
	view   image.Rectangle // part of scaled covered by the heat map
}

func (v *viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	if w <= 0 || h <= 1 {
		return
	}
	v.scaled, v.view = scaleToTerminal(v.hm.Image(), w, h-1)

	for y := 0; y < h-1; y++ {
		for x := 0; x < w; x++ {
			top := v.scaled.RGBAAt(x, 2*y)
			bottom := v.scaled.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			v.screen.SetContent(x, y, '▀', nil, style)
		}
	}
	v.drawStatus()
	v.screen.Show()
}

// drawStatus writes the extrema and the value under the mouse into the
// last terminal line.
func (v *viewer) drawStatus() {
	w, h := v.screen.Size()
	if h <= 0 || v.scaled == nil {
		return
	}
	e := v.hm.Extrema()
	msg := fmt.Sprintf(" min %g  max %g", e.Min, e.Max)

	cfg := v.hm.Config()
	if p, ok := cursorPixel(v.cursor, v.view, cfg.Width, cfg.Height); ok {
		msg += fmt.Sprintf("  (%d,%d) ≈ %d", p.X, p.Y, v.hm.ValueAt(p.X, p.Y))
	}
	msg += "  [q to quit]"

	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range msg {
		if x >= w {
			break
		}
		v.screen.SetContent(x, h-1, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		v.screen.SetContent(x, h-1, ' ', nil, style)
	}
}

// cursorPixel maps the character cell under the mouse to a pixel of the
// width×height heat map, which is shown in the view rectangle of the
// scaled image.  It reports false if the cell is outside the heat map.
func cursorPixel(cell image.Point, view image.Rectangle, width, height int) (image.Point, bool) {
	p := image.Pt(cell.X, 2*cell.Y)
	if view.Empty() || !p.In(view) {
		return image.Point{}, false
	}
	return image.Pt(
		(p.X-view.Min.X)*width/view.Dx(),
		(p.Y-view.Min.Y)*height/view.Dy(),
	), true
}

// scaleToTerminal scales img to fit into cols×rows character cells, keeping
// the aspect ratio, and composites it over the background colour.  Each
// cell holds two vertically stacked pixels.  The second result is the
// rectangle covered by img.
func scaleToTerminal(img image.Image, cols, rows int) (*image.RGBA, image.Rectangle) {
	dst := image.NewRGBA(image.Rect(0, 0, cols, 2*rows))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	if img == nil {
		return dst, image.Rectangle{}
	}
	b := img.Bounds()
	if b.Empty() {
		return dst, image.Rectangle{}
	}

	w, h := cols, 2*rows
	if w*b.Dy() > h*b.Dx() {
		w = max(1, h*b.Dx()/b.Dy())
	} else {
		h = max(1, w*b.Dy()/b.Dx())
	}
	view := image.Rect(0, 0, w, h)
	xdraw.ApproxBiLinear.Scale(dst, view, img, b, xdraw.Over, nil)
	return dst, view
}
