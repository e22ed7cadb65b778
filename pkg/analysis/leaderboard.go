package analysis

import (
	"sort"

	"github.com/vanderheijden86/driveline/pkg/model"
)

// ShowroomStanding is one row of the showroom leaderboard. Only completed
// test drives count toward it.
type ShowroomStanding struct {
	Showroom       string  `json:"showroom"`
	TestDrives     int     `json:"test_drives"`
	Conversions    int     `json:"conversions"`
	ConversionRate float64 `json:"conversion_rate"`
}

// ShowroomLeaderboard groups completed records by showroom, descending by
// test-drive count.
func ShowroomLeaderboard(records []model.TestDriveRecord) []ShowroomStanding {
	groups := make(map[string]*ShowroomStanding)
	for _, r := range records {
		if !r.Completed {
			continue
		}
		g, ok := groups[r.Showroom]
		if !ok {
			g = &ShowroomStanding{Showroom: r.Showroom}
			groups[r.Showroom] = g
		}
		g.TestDrives++
		if r.ConvertedToSale {
			g.Conversions++
		}
	}

	out := make([]ShowroomStanding, 0, len(groups))
	for _, g := range groups {
		g.ConversionRate = Rate(g.Conversions, g.TestDrives)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TestDrives != out[j].TestDrives {
			return out[i].TestDrives > out[j].TestDrives
		}
		return out[i].Showroom < out[j].Showroom
	})
	return out
}

// ConsultantStanding is one row of the consultant leaderboard.
type ConsultantStanding struct {
	Consultant     string  `json:"consultant"`
	Showroom       string  `json:"showroom"`
	TestDrives     int     `json:"test_drives"`
	Conversions    int     `json:"conversions"`
	ConversionRate float64 `json:"conversion_rate"`
}

// ConsultantLeaderboard groups completed records by sales consultant,
// descending by conversion rate (then test drives, then name).
func ConsultantLeaderboard(records []model.TestDriveRecord) []ConsultantStanding {
	groups := make(map[string]*ConsultantStanding)
	for _, r := range records {
		if !r.Completed {
			continue
		}
		g, ok := groups[r.SalesConsultant]
		if !ok {
			g = &ConsultantStanding{Consultant: r.SalesConsultant, Showroom: r.Showroom}
			groups[r.SalesConsultant] = g
		}
		g.TestDrives++
		if r.ConvertedToSale {
			g.Conversions++
		}
	}

	out := make([]ConsultantStanding, 0, len(groups))
	for _, g := range groups {
		g.ConversionRate = Rate(g.Conversions, g.TestDrives)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ConversionRate != out[j].ConversionRate {
			return out[i].ConversionRate > out[j].ConversionRate
		}
		if out[i].TestDrives != out[j].TestDrives {
			return out[i].TestDrives > out[j].TestDrives
		}
		return out[i].Consultant < out[j].Consultant
	})
	return out
}
