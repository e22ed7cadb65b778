package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/vanderheijden86/driveline/pkg/model"
)

// ShowroomTiming summarizes lead-to-test-drive delay per showroom, in days.
type ShowroomTiming struct {
	Showroom string  `json:"showroom"`
	Min      int     `json:"min"`
	Max      int     `json:"max"`
	Avg      float64 `json:"avg"`
	Values   []int   `json:"values"`
}

// TimeToTestDrive reduces the filtered records to min/avg/max delay per
// showroom, ascending by average (faster showrooms first).
func TimeToTestDrive(records []model.TestDriveRecord) []ShowroomTiming {
	groups := make(map[string]*ShowroomTiming)
	samples := make(map[string][]float64)
	for _, r := range records {
		g, ok := groups[r.Showroom]
		if !ok {
			g = &ShowroomTiming{Showroom: r.Showroom, Min: r.TimeToTestDriveDays, Max: r.TimeToTestDriveDays}
			groups[r.Showroom] = g
		}
		if r.TimeToTestDriveDays < g.Min {
			g.Min = r.TimeToTestDriveDays
		}
		if r.TimeToTestDriveDays > g.Max {
			g.Max = r.TimeToTestDriveDays
		}
		g.Values = append(g.Values, r.TimeToTestDriveDays)
		samples[r.Showroom] = append(samples[r.Showroom], float64(r.TimeToTestDriveDays))
	}

	out := make([]ShowroomTiming, 0, len(groups))
	for name, g := range groups {
		g.Avg = round1(stat.Mean(samples[name], nil))
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Avg != out[j].Avg {
			return out[i].Avg < out[j].Avg
		}
		return out[i].Showroom < out[j].Showroom
	})
	return out
}
