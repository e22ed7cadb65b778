package analysis

import (
	"sort"
	"time"

	"github.com/vanderheijden86/driveline/pkg/model"
)

// DatePoint is one day of the test-drive time series.
type DatePoint struct {
	Date       string `json:"date"`
	TestDrives int    `json:"test_drives"`
}

// TestDrivesByDate groups the filtered records by calendar day and returns
// the daily counts in ascending date order. Days with no records are simply
// absent; the chart treats gaps as zero.
func TestDrivesByDate(records []model.TestDriveRecord) []DatePoint {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Date]++
	}

	out := make([]DatePoint, 0, len(counts))
	for date, n := range counts {
		out = append(out, DatePoint{Date: date, TestDrives: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// MonthPoint is one month of the long-range time series.
type MonthPoint struct {
	Month      string `json:"month"` // YYYY-MM
	TestDrives int    `json:"test_drives"`
}

// TestDrivesByMonth buckets the filtered records by YYYY-MM prefix, ascending.
// Records with dates shorter than a month prefix are counted under their raw
// date value, consistent with the permissive date handling in Matches.
func TestDrivesByMonth(records []model.TestDriveRecord) []MonthPoint {
	counts := make(map[string]int)
	for _, r := range records {
		key := r.Date
		if len(key) > 7 {
			key = key[:7]
		}
		counts[key]++
	}

	out := make([]MonthPoint, 0, len(counts))
	for month, n := range counts {
		out = append(out, MonthPoint{Month: month, TestDrives: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// WeekdayCount is one cell of the weekday profile.
type WeekdayCount struct {
	Weekday    string `json:"weekday"`
	TestDrives int    `json:"test_drives"`
}

// weekdayOrder fixes Monday-first display order regardless of data.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// WeekdayProfile counts test drives per weekday in fixed Monday..Sunday
// order. Records whose dates fail to parse as YYYY-MM-DD are skipped; the
// remaining buckets still sum to the parseable record count.
func WeekdayProfile(records []model.TestDriveRecord) []WeekdayCount {
	counts := make(map[time.Weekday]int, 7)
	for _, r := range records {
		t, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			continue
		}
		counts[t.Weekday()]++
	}

	out := make([]WeekdayCount, 0, len(weekdayOrder))
	for _, wd := range weekdayOrder {
		out = append(out, WeekdayCount{Weekday: wd.String(), TestDrives: counts[wd]})
	}
	return out
}
