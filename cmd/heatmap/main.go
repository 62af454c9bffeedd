// Command heatmap renders heat maps from weighted point samples.
//
// Samples are read from JSON files in the native format
//
//	{"min": 0, "max": 10, "data": [{"x": 10, "y": 20, "value": 3}]}
//
// or from GeoJSON feature collections of points with optional "value" and
// "radius" properties.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"seehuhn.de/go/heatmap"
)

// Globals are passed to the Run method of every command.
type Globals struct {
	Logger *slog.Logger
}

type cli struct {
	Config  kong.ConfigFlag `help:"Read default flag values from a JSON file."`
	Verbose bool            `short:"v" help:"Log debug messages to stderr."`

	Render renderCmd `cmd:"" help:"Render samples into a PNG file."`
	View   viewCmd   `cmd:"" help:"Show a heat map in the terminal."`
	Serve  serveCmd  `cmd:"" help:"Collect samples over HTTP and WebSocket."`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("heatmap"),
		kong.Description("Render heat maps from weighted point samples."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, "/etc/heatmap.json", "~/.config/heatmap.json"),
	)

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	heatmap.SetLogger(logger)

	err := ctx.Run(&Globals{Logger: logger})
	ctx.FatalIfErrorf(err)
}
