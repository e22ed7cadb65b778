package analysis

import "github.com/vanderheijden86/driveline/pkg/model"

// SummaryStats is the headline scalar rollup shown on the overview tab and
// at the top of exported reports.
type SummaryStats struct {
	TotalLeads      int     `json:"total_leads"`
	TestDrives      int     `json:"test_drives"`
	Sales           int     `json:"sales"`
	CompletionRate  float64 `json:"completion_rate"`
	ConversionRate  float64 `json:"conversion_rate"`
	ActiveModels    int     `json:"active_models"`
	ActiveShowrooms int     `json:"active_showrooms"`
}

// Summary computes the headline totals and rates for the filtered set.
// Conversion is sales over completed drives; completion is drives over leads.
func Summary(records []model.TestDriveRecord) SummaryStats {
	s := SummaryStats{TotalLeads: len(records)}
	models := make(map[string]struct{})
	showrooms := make(map[string]struct{})
	for _, r := range records {
		if r.Completed {
			s.TestDrives++
		}
		if r.ConvertedToSale {
			s.Sales++
		}
		models[r.Model] = struct{}{}
		showrooms[r.Showroom] = struct{}{}
	}
	s.CompletionRate = Rate(s.TestDrives, s.TotalLeads)
	s.ConversionRate = Rate(s.Sales, s.TestDrives)
	s.ActiveModels = len(models)
	s.ActiveShowrooms = len(showrooms)
	return s
}
