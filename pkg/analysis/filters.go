// Package analysis is the aggregation core of driveline: a filter predicate
// over the record set plus a family of pure functions that turn the filtered
// records into the derived shape each dashboard view renders. Results are
// memoized by a structural hash of (records, filters) in cache.go.
package analysis

import "github.com/vanderheijden86/driveline/pkg/model"

// Matches reports whether the record satisfies every constrained field of the
// filters (logical AND). Empty filter fields are unconstrained.
//
// Date comparison is lexicographic on the ISO YYYY-MM-DD strings, inclusive at
// both ends, which equals chronological order for well-formed dates. Malformed
// dates are deliberately not validated; they compare as plain strings, which
// preserves the permissive behavior the record loaders rely on.
func Matches(r model.TestDriveRecord, f model.GlobalFilters) bool {
	if f.StartDate != "" && r.Date < f.StartDate {
		return false
	}
	if f.EndDate != "" && r.Date > f.EndDate {
		return false
	}
	if f.Model != "" && r.Model != f.Model {
		return false
	}
	if f.Showroom != "" && r.Showroom != f.Showroom {
		return false
	}
	if f.Channel != "" && r.Channel != f.Channel {
		return false
	}
	return true
}

// FilterRecords returns the subsequence of records matching f, preserving
// input order. With zero-value filters the result is a copy of the full input.
func FilterRecords(records []model.TestDriveRecord, f model.GlobalFilters) []model.TestDriveRecord {
	out := make([]model.TestDriveRecord, 0, len(records))
	for _, r := range records {
		if Matches(r, f) {
			out = append(out, r)
		}
	}
	return out
}
