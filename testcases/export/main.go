// Command export writes every scenario as a GeoJSON file, together with an
// index of the scenario settings and the rendered PNG image.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/heatmap"
	"seehuhn.de/go/heatmap/testcases"
)

const outDir = "testdata/scenarios"

type jsonScenario struct {
	Name    string  `json:"name"`
	File    string  `json:"file"`
	Image   string  `json:"image"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Radius  int     `json:"radius,omitempty"`
	Blur    float64 `json:"blur,omitempty"`
	Min     float64 `json:"min,omitempty"`
	Max     float64 `json:"max,omitempty"`
	Samples int     `json:"samples"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func run() error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	var index struct {
		Scenarios []jsonScenario `json:"scenarios"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			js, err := export(name, tc)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			index.Scenarios = append(index.Scenarios, js)
		}
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, "index.json"), append(data, '\n'), 0644)
}

func export(name string, tc testcases.Scenario) (jsonScenario, error) {
	js := jsonScenario{
		Name:    name,
		File:    name + ".geojson",
		Image:   name + ".png",
		Width:   tc.Width,
		Height:  tc.Height,
		Radius:  tc.Radius,
		Blur:    tc.Blur,
		Min:     tc.Min,
		Max:     tc.Max,
		Samples: len(tc.Points),
	}

	data, err := heatmap.EncodeGeoJSON(heatmap.ScenarioSamples(tc))
	if err != nil {
		return js, err
	}
	if err := os.WriteFile(filepath.Join(outDir, js.File), data, 0644); err != nil {
		return js, err
	}

	f, err := os.Create(filepath.Join(outDir, js.Image))
	if err != nil {
		return js, err
	}
	h := heatmap.RenderScenario(tc)
	err = h.EncodePNG(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return js, err
}
