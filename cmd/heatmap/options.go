package main

import (
	"fmt"
	"os"

	"seehuhn.de/go/heatmap"
)

// RenderOptions are the rendering flags shared by all commands.
type RenderOptions struct {
	Width           int               `default:"512" help:"Image width in pixels."`
	Height          int               `default:"512" help:"Image height in pixels."`
	Radius          int               `default:"40" help:"Stamp radius for samples without one."`
	Blur            float64           `default:"0.85" help:"Opaque core of a stamp as a fraction of the radius (1 for a hard edge)."`
	HardEdge        bool              `help:"Draw samples as solid discs, same as --blur=1."`
	Opacity         float64           `help:"Fixed opacity of coloured pixels (0 to disable)."`
	MaxOpacity      float64           `default:"1" help:"Largest opacity of coloured pixels."`
	MinOpacity      float64           `help:"Smallest opacity of coloured pixels."`
	GradientOpacity bool              `help:"Take the opacity from the gradient."`
	Gradient        map[string]string `placeholder:"OFFSET=COLOUR;..." help:"Gradient stops, e.g. 0.4=blue;1=red."`
}

// config converts the flags into a heat map configuration.
func (o *RenderOptions) config() (heatmap.Config, error) {
	cfg := heatmap.Config{
		Width:              o.Width,
		Height:             o.Height,
		Radius:             o.Radius,
		Blur:               o.Blur,
		Opacity:            o.Opacity,
		MaxOpacity:         o.MaxOpacity,
		MinOpacity:         o.MinOpacity,
		UseGradientOpacity: o.GradientOpacity,
	}
	if o.HardEdge {
		cfg.Blur = 1
	}
	if len(o.Gradient) > 0 {
		g, err := heatmap.ParseGradient(o.Gradient)
		if err != nil {
			return cfg, err
		}
		cfg.Gradient = g
	}
	return cfg, nil
}

// readDataset reads samples from a file, or from stdin if name is "-".
func readDataset(name string) (heatmap.Dataset, error) {
	if name == "-" {
		return heatmap.ReadDataset(os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return heatmap.Dataset{}, err
	}
	defer f.Close()

	d, err := heatmap.ReadDataset(f)
	if err != nil {
		return d, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}

// load renders the samples in the named file.  With incremental set the
// samples are added one by one, as they would arrive from a live source.
func (o *RenderOptions) load(name string, incremental bool) (*heatmap.Heatmap, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}
	d, err := readDataset(name)
	if err != nil {
		return nil, err
	}

	h := heatmap.New(cfg)
	if !incremental {
		h.SetData(d)
		return h, nil
	}
	skipped := 0
	for _, s := range d.Samples {
		if !h.AddSample(s) {
			skipped++
		}
	}
	heatmap.Logger().Debug("samples added", "total", len(d.Samples), "skipped", skipped)
	return h, nil
}
