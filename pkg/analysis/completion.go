package analysis

import "github.com/vanderheijden86/driveline/pkg/model"

// CompletionStats is the scalar completion rollup for the filtered set.
type CompletionStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	NotCompleted   int     `json:"not_completed"`
	CompletionRate float64 `json:"completion_rate"`
}

// Completion counts completed versus not-completed test drives. An empty
// filtered set yields all zeros with a 0 rate.
func Completion(records []model.TestDriveRecord) CompletionStats {
	stats := CompletionStats{Total: len(records)}
	for _, r := range records {
		if r.Completed {
			stats.Completed++
		}
	}
	stats.NotCompleted = stats.Total - stats.Completed
	stats.CompletionRate = Rate(stats.Completed, stats.Total)
	return stats
}

// OccurrenceBreakdown splits the filtered set by attendance outcome.
// Shows covers first_show and rescheduled; Misses covers cancelled and
// no_show. The per-outcome subtotals always sum to Total.
type OccurrenceBreakdown struct {
	Total       int     `json:"total"`
	Shows       int     `json:"shows"`
	Misses      int     `json:"misses"`
	FirstShow   int     `json:"first_show"`
	Rescheduled int     `json:"rescheduled"`
	Cancelled   int     `json:"cancelled"`
	NoShow      int     `json:"no_show"`
	ShowRate    float64 `json:"show_rate"`
}

// Occurrence tallies attendance outcomes for the filtered set.
func Occurrence(records []model.TestDriveRecord) OccurrenceBreakdown {
	b := OccurrenceBreakdown{Total: len(records)}
	for _, r := range records {
		switch r.Occurrence {
		case model.OccurrenceFirstShow:
			b.FirstShow++
		case model.OccurrenceRescheduled:
			b.Rescheduled++
		case model.OccurrenceCancelled:
			b.Cancelled++
		case model.OccurrenceNoShow:
			b.NoShow++
		}
	}
	b.Shows = b.FirstShow + b.Rescheduled
	b.Misses = b.Cancelled + b.NoShow
	b.ShowRate = Rate(b.Shows, b.Total)
	return b
}
