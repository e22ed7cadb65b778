package analysis

import "github.com/vanderheijden86/driveline/pkg/model"

// AgeGroupCount is one bucket of the age-distribution chart.
type AgeGroupCount struct {
	AgeGroup   string  `json:"age_group"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// AgeDistribution partitions the filtered set across the fixed age buckets.
// Every record whose age falls in a declared range lands in exactly one
// bucket; output order is the declared bucket order. Percentages are relative
// to the bucketed total, so they sum to ~100 when ages are fully covered.
func AgeDistribution(records []model.TestDriveRecord) []AgeGroupCount {
	counts := make(map[string]int, len(model.AgeBuckets))
	total := 0
	for _, r := range records {
		b := model.BucketForAge(r.CustomerAge)
		if b == nil {
			continue
		}
		counts[b.Label]++
		total++
	}

	out := make([]AgeGroupCount, 0, len(model.AgeBuckets))
	for _, b := range model.AgeBuckets {
		out = append(out, AgeGroupCount{
			AgeGroup:   b.Label,
			Count:      counts[b.Label],
			Percentage: Rate(counts[b.Label], total),
		})
	}
	return out
}

// GenderCount is one slice of the gender-distribution chart.
type GenderCount struct {
	Gender     model.Gender `json:"gender"`
	Count      int          `json:"count"`
	Percentage float64      `json:"percentage"`
}

// GenderDistribution counts the filtered set per gender in fixed Male,
// Female order.
func GenderDistribution(records []model.TestDriveRecord) []GenderCount {
	counts := make(map[model.Gender]int, len(model.Genders))
	for _, r := range records {
		counts[r.CustomerGender]++
	}

	out := make([]GenderCount, 0, len(model.Genders))
	for _, g := range model.Genders {
		out = append(out, GenderCount{
			Gender:     g,
			Count:      counts[g],
			Percentage: Rate(counts[g], len(records)),
		})
	}
	return out
}
