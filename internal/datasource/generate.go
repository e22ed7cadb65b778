package datasource

import (
	"math/rand"
	"time"

	"github.com/vanderheijden86/driveline/pkg/model"
)

// GeneratorConfig controls mock record generation.
type GeneratorConfig struct {
	Seed    int64     // Random seed for determinism (0 = use current time)
	Count   int       // Number of records to generate (default 2500)
	EndDate time.Time // Last day of the generated window (default fixed date)
	Days    int       // Size of the date window in days (default 180)
}

// DefaultGeneratorConfig returns a config suitable for the dashboard and for
// tests. The seed is fixed so repeated runs produce the same record set; the
// original mock data rolled fresh values on every load, which made fixtures
// impossible to assert against.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:    42,
		Count:   2500,
		EndDate: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Days:    180,
	}
}

// Generate produces a deterministic mock record set honoring the model
// invariants: ConvertedToSale implies Completed, duration only on completed
// drives, and FunnelStage consistent with the attendance outcome.
func Generate(cfg GeneratorConfig) []model.TestDriveRecord {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.Count <= 0 {
		cfg.Count = 2500
	}
	if cfg.Days <= 0 {
		cfg.Days = 180
	}
	if cfg.EndDate.IsZero() {
		cfg.EndDate = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	}

	rng := rand.New(rand.NewSource(seed))
	records := make([]model.TestDriveRecord, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		records = append(records, generateOne(rng, cfg))
	}
	return records
}

var occurrenceWeights = []weighted[model.Occurrence]{
	{model.OccurrenceFirstShow, 55},
	{model.OccurrenceRescheduled, 15},
	{model.OccurrenceCancelled, 18},
	{model.OccurrenceNoShow, 12},
}

var channelWeights = []weighted[string]{
	{"Instagram", 22},
	{"Website Organic", 18},
	{"Google Ads", 16},
	{"Call Center", 14},
	{"Walk-in", 12},
	{"Facebook", 10},
	{"Referral", 8},
}

type weighted[T any] struct {
	value  T
	weight int
}

func pickWeighted[T any](rng *rand.Rand, choices []weighted[T]) T {
	total := 0
	for _, c := range choices {
		total += c.weight
	}
	n := rng.Intn(total)
	for _, c := range choices {
		n -= c.weight
		if n < 0 {
			return c.value
		}
	}
	return choices[len(choices)-1].value
}

func generateOne(rng *rand.Rand, cfg GeneratorConfig) model.TestDriveRecord {
	day := cfg.EndDate.AddDate(0, 0, -rng.Intn(cfg.Days))
	carModel := model.CarModels[rng.Intn(len(model.CarModels))]
	consultant := model.Consultants[rng.Intn(len(model.Consultants))]
	occurrence := pickWeighted(rng, occurrenceWeights)

	completed := occurrence == model.OccurrenceFirstShow || occurrence == model.OccurrenceRescheduled

	// Stage progression: every record was requested and booked; completed
	// drives may advance to order and invoice.
	stage := model.StageBooked
	if completed {
		stage = model.StageCompleted
		if rng.Float64() < 0.35 {
			stage = model.StageOrder
			if rng.Float64() < 0.8 {
				stage = model.StageInvoice
			}
		}
	} else if occurrence == model.OccurrenceCancelled && rng.Float64() < 0.3 {
		stage = model.StageRequest
	}

	converted := model.StageIndex(stage) >= model.StageIndex(model.StageOrder)

	duration := 0
	if completed {
		duration = 20 + rng.Intn(41) // 20..60 minutes
	}

	gender := model.GenderMale
	if rng.Float64() < 0.4 {
		gender = model.GenderFemale
	}

	return model.TestDriveRecord{
		Date:                day.Format("2006-01-02"),
		Model:               carModel.Name,
		ModelType:           carModel.Type,
		Showroom:            consultant.Showroom,
		Channel:             pickWeighted(rng, channelWeights),
		SalesConsultant:     consultant.Name,
		Completed:           completed,
		ConvertedToSale:     converted,
		Occurrence:          occurrence,
		FunnelStage:         stage,
		CustomerAge:         generateAge(rng),
		CustomerGender:      gender,
		DurationMinutes:     duration,
		TimeToTestDriveDays: rng.Intn(22),
	}
}

// generateAge skews toward the 26-45 core buying demographic.
func generateAge(rng *rand.Rand) int {
	switch {
	case rng.Float64() < 0.55:
		return 26 + rng.Intn(20) // 26..45
	case rng.Float64() < 0.5:
		return 18 + rng.Intn(8) // 18..25
	default:
		return 46 + rng.Intn(25) // 46..70
	}
}
