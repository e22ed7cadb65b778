package analysis

import (
	"sort"

	"github.com/vanderheijden86/driveline/pkg/model"
)

// ChannelPerformance is one row of the lead-source performance chart.
// Leads counts every record from the source; TestDrives counts the completed
// ones; Conversion is sales over completed drives as a percentage.
type ChannelPerformance struct {
	Source     string  `json:"source"`
	Leads      int     `json:"leads"`
	TestDrives int     `json:"test_drives"`
	Conversion float64 `json:"conversion"`
}

// ChannelPerformanceRows groups the filtered records by lead source,
// descending by lead count. Only sources present in the filtered set appear;
// the sales funnel is the view that pre-initializes the full source list.
func ChannelPerformanceRows(records []model.TestDriveRecord) []ChannelPerformance {
	type tally struct {
		leads, drives, sales int
	}
	tallies := make(map[string]*tally)
	for _, r := range records {
		t, ok := tallies[r.Channel]
		if !ok {
			t = &tally{}
			tallies[r.Channel] = t
		}
		t.leads++
		if r.Completed {
			t.drives++
		}
		if r.ConvertedToSale {
			t.sales++
		}
	}

	out := make([]ChannelPerformance, 0, len(tallies))
	for source, t := range tallies {
		out = append(out, ChannelPerformance{
			Source:     source,
			Leads:      t.leads,
			TestDrives: t.drives,
			Conversion: Rate(t.sales, t.drives),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Leads != out[j].Leads {
			return out[i].Leads > out[j].Leads
		}
		return out[i].Source < out[j].Source
	})
	return out
}
