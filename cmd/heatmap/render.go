package main

import (
	"fmt"
	"os"
)

type renderCmd struct {
	RenderOptions `embed:""`

	Input       string `arg:"" help:"Sample file (JSON or GeoJSON), or - for stdin."`
	Output      string `short:"o" default:"heatmap.png" type:"path" help:"Output PNG file."`
	Incremental bool   `help:"Add the samples one at a time instead of all at once."`
}

func (c *renderCmd) Run(g *Globals) (err error) {
	h, err := c.load(c.Input, c.Incremental)
	if err != nil {
		return err
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := h.EncodePNG(f); err != nil {
		return fmt.Errorf("%s: %w", c.Output, err)
	}

	e := h.Extrema()
	g.Logger.Info("heat map written", "file", c.Output, "min", e.Min, "max", e.Max)
	return nil
}
