package heatmap

//go:generate go run ./testcases/export

import "seehuhn.de/go/heatmap/testcases"

// RenderScenario draws all samples of a test scenario in one full render
// and returns the resulting heat map.
func RenderScenario(tc testcases.Scenario) *Heatmap {
	h := New(Config{
		Width:  tc.Width,
		Height: tc.Height,
		Radius: tc.Radius,
		Blur:   tc.Blur,
	})

	samples := ScenarioSamples(tc)
	if tc.Max != 0 {
		h.SetData(Dataset{Min: tc.Min, Max: tc.Max, Samples: samples})
	} else {
		h.SetData(datasetFor(samples))
	}
	return h
}

// ScenarioSamples converts the points of a scenario to samples.
func ScenarioSamples(tc testcases.Scenario) []Sample {
	samples := make([]Sample, len(tc.Points))
	for i, p := range tc.Points {
		samples[i] = Sample{X: p.X, Y: p.Y, Value: p.Value, Radius: p.Radius}
	}
	return samples
}
