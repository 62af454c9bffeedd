package main

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/heatmap"
)

func TestOptionsConfig(t *testing.T) {
	o := RenderOptions{
		Width:    100,
		Height:   50,
		Radius:   7,
		Blur:     0.5,
		HardEdge: true,
		Gradient: map[string]string{"0": "blue", "1": "red"},
	}
	cfg, err := o.config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 100 || cfg.Height != 50 || cfg.Radius != 7 {
		t.Errorf("config %+v", cfg)
	}
	if cfg.Blur != 1 {
		t.Errorf("blur %g, want hard edge", cfg.Blur)
	}
	if len(cfg.Gradient) != 2 || cfg.Gradient[1].Color != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("gradient %+v", cfg.Gradient)
	}

	o.Gradient = map[string]string{"2": "red"}
	if _, err := o.config(); err == nil {
		t.Error("gradient offset 2 accepted")
	}
}

func TestOptionsLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "samples.json")
	data := `{"data": [{"x": 5, "y": 5, "value": 3}, {"x": 20, "y": 5, "value": 1}]}`
	if err := os.WriteFile(name, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	o := RenderOptions{Width: 32, Height: 16, Radius: 4}
	for _, incremental := range []bool{false, true} {
		h, err := o.load(name, incremental)
		if err != nil {
			t.Fatal(err)
		}
		if e := h.Extrema(); e != (heatmap.Extrema{Min: 1, Max: 3}) {
			t.Errorf("incremental=%t: extrema %+v", incremental, e)
		}
		if a := h.Image().NRGBAAt(5, 5).A; a == 0 {
			t.Errorf("incremental=%t: sample not drawn", incremental)
		}
	}

	if _, err := o.load(filepath.Join(t.TempDir(), "missing.json"), false); err == nil {
		t.Error("missing file accepted")
	}
}

func TestScaleToTerminal(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 100, 50))
	red := color.NRGBA{R: 255, A: 255}
	draw.Draw(src, src.Bounds(), image.NewUniform(red), image.Point{}, draw.Src)

	dst, view := scaleToTerminal(src, 10, 5)
	if b := dst.Bounds(); b != image.Rect(0, 0, 10, 10) {
		t.Fatalf("bounds %v", b)
	}
	if view != image.Rect(0, 0, 10, 5) {
		t.Errorf("view %v, want the top half", view)
	}
	// the image fills the top half; the rest is background
	if c := dst.RGBAAt(5, 2); c != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel (5,2) = %v, want red", c)
	}
	bg := color.RGBA{R: background.R, G: background.G, B: background.B, A: 255}
	if c := dst.RGBAAt(5, 8); c != bg {
		t.Errorf("pixel (5,8) = %v, want background", c)
	}

	empty, view := scaleToTerminal(nil, 4, 2)
	if c := empty.RGBAAt(0, 0); c != bg || !view.Empty() {
		t.Errorf("empty image: %v, view %v", c, view)
	}
}

func TestCursorPixel(t *testing.T) {
	// a 512×512 heat map on a wide terminal of 80×20 cells is drawn
	// into the left 40×40 pixels of the scaled image
	src := image.NewNRGBA(image.Rect(0, 0, 512, 512))
	_, view := scaleToTerminal(src, 80, 20)
	if view != image.Rect(0, 0, 40, 40) {
		t.Fatalf("view %v", view)
	}

	cases := []struct {
		cell image.Point
		want image.Point
		ok   bool
	}{
		{image.Pt(0, 0), image.Pt(0, 0), true},
		{image.Pt(20, 10), image.Pt(256, 256), true},
		{image.Pt(39, 19), image.Pt(499, 486), true},
		{image.Pt(40, 5), image.Point{}, false},
		{image.Pt(70, 5), image.Point{}, false},
	}
	for _, tc := range cases {
		got, ok := cursorPixel(tc.cell, view, 512, 512)
		if ok != tc.ok || got != tc.want {
			t.Errorf("cell %v: got %v, %t, want %v, %t", tc.cell, got, ok, tc.want, tc.ok)
		}
	}
}
