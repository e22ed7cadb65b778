package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/vanderheijden86/driveline/pkg/model"
)

// ModelCount is one row of the popular-models chart.
type ModelCount struct {
	Model      string          `json:"model"`
	Type       model.ModelType `json:"type"`
	TestDrives int             `json:"test_drives"`
}

// PopularModels groups the filtered records by car model and returns counts
// in descending test-drive order (ties broken by model name so the output is
// deterministic).
func PopularModels(records []model.TestDriveRecord) []ModelCount {
	counts := make(map[string]*ModelCount)
	for _, r := range records {
		mc, ok := counts[r.Model]
		if !ok {
			mc = &ModelCount{Model: r.Model, Type: r.ModelType}
			counts[r.Model] = mc
		}
		mc.TestDrives++
	}

	out := make([]ModelCount, 0, len(counts))
	for _, mc := range counts {
		out = append(out, *mc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TestDrives != out[j].TestDrives {
			return out[i].TestDrives > out[j].TestDrives
		}
		return out[i].Model < out[j].Model
	})
	return out
}

// ModelDuration summarizes completed test-drive durations for one model.
type ModelDuration struct {
	Model  string          `json:"model"`
	Type   model.ModelType `json:"type"`
	Min    int             `json:"min"`
	Max    int             `json:"max"`
	Avg    float64         `json:"avg"`
	Values []int           `json:"values"`
}

// DurationByModel reduces completed records with a positive duration to
// min/avg/max per model, descending by average. Models whose group is never
// populated (no completed drives) are omitted entirely rather than emitted
// with zero stats.
func DurationByModel(records []model.TestDriveRecord) []ModelDuration {
	groups := make(map[string]*ModelDuration)
	samples := make(map[string][]float64)
	for _, r := range records {
		if !r.Completed || r.DurationMinutes <= 0 {
			continue
		}
		g, ok := groups[r.Model]
		if !ok {
			g = &ModelDuration{Model: r.Model, Type: r.ModelType, Min: r.DurationMinutes, Max: r.DurationMinutes}
			groups[r.Model] = g
		}
		if r.DurationMinutes < g.Min {
			g.Min = r.DurationMinutes
		}
		if r.DurationMinutes > g.Max {
			g.Max = r.DurationMinutes
		}
		g.Values = append(g.Values, r.DurationMinutes)
		samples[r.Model] = append(samples[r.Model], float64(r.DurationMinutes))
	}

	out := make([]ModelDuration, 0, len(groups))
	for name, g := range groups {
		g.Avg = round1(stat.Mean(samples[name], nil))
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Avg != out[j].Avg {
			return out[i].Avg > out[j].Avg
		}
		return out[i].Model < out[j].Model
	})
	return out
}
