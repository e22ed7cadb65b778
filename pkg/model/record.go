// Package model defines the test-drive record, the shared filter value, and
// the fixed lookup catalogs (car models, showrooms, lead sources, consultants)
// that the rest of driveline operates on. The record set is immutable once
// loaded; every derived view is recomputed from it.
package model

// Occurrence is the attendance outcome of a scheduled test drive.
type Occurrence string

const (
	OccurrenceFirstShow   Occurrence = "first_show"
	OccurrenceRescheduled Occurrence = "rescheduled"
	OccurrenceCancelled   Occurrence = "cancelled"
	OccurrenceNoShow      Occurrence = "no_show"
)

// Occurrences lists every attendance outcome in display order.
var Occurrences = []Occurrence{
	OccurrenceFirstShow,
	OccurrenceRescheduled,
	OccurrenceCancelled,
	OccurrenceNoShow,
}

// FunnelStage is the furthest point a lead has reached in the
// request → invoice pipeline.
type FunnelStage string

const (
	StageRequest   FunnelStage = "request"
	StageBooked    FunnelStage = "booked"
	StageCompleted FunnelStage = "completed"
	StageOrder     FunnelStage = "order"
	StageInvoice   FunnelStage = "invoice"
)

// FunnelStages is the ordered stage list. A record at stage i counts toward
// every stage <= i for threshold purposes, so per-stage counts are
// non-increasing down this slice.
var FunnelStages = []FunnelStage{
	StageRequest,
	StageBooked,
	StageCompleted,
	StageOrder,
	StageInvoice,
}

// StageIndex returns the position of s in FunnelStages, or -1 for an
// unknown stage.
func StageIndex(s FunnelStage) int {
	for i, stage := range FunnelStages {
		if stage == s {
			return i
		}
	}
	return -1
}

// ModelType classifies a car model.
type ModelType string

const (
	TypeSUV         ModelType = "SUV"
	TypeSedan       ModelType = "Sedan"
	TypePerformance ModelType = "Performance"
)

// Gender is the customer gender recorded on the lead.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Genders lists genders in fixed display order (Male first, per the
// gender-distribution chart contract).
var Genders = []Gender{GenderMale, GenderFemale}

// TestDriveRecord is one row per test-drive event.
//
// Invariants maintained by the generators and loaders:
//   - ConvertedToSale implies Completed.
//   - DurationMinutes is meaningful only when Completed (zero otherwise).
//   - FunnelStage at or past "completed" implies Completed.
type TestDriveRecord struct {
	// Date is the calendar day the test drive occurred or was logged,
	// as an ISO YYYY-MM-DD string. Lexicographic order on well-formed
	// values equals chronological order.
	Date string `json:"date"`

	Model     string    `json:"model"`
	ModelType ModelType `json:"model_type"`
	Showroom  string    `json:"showroom"`
	Channel   string    `json:"channel"`

	SalesConsultant string `json:"sales_consultant"`

	Completed       bool        `json:"completed"`
	ConvertedToSale bool        `json:"converted_to_sale"`
	Occurrence      Occurrence  `json:"occurrence"`
	FunnelStage     FunnelStage `json:"funnel_stage"`

	CustomerAge    int    `json:"customer_age"`
	CustomerGender Gender `json:"customer_gender"`

	// DurationMinutes is the test-drive length; valid only when Completed.
	DurationMinutes int `json:"duration_minutes"`
	// TimeToTestDriveDays is the lead-to-test-drive delay in days.
	TimeToTestDriveDays int `json:"time_to_test_drive_days"`
}

// ReachedStage reports whether the record progressed at least as far as s.
func (r TestDriveRecord) ReachedStage(s FunnelStage) bool {
	want := StageIndex(s)
	if want < 0 {
		return false
	}
	return StageIndex(r.FunnelStage) >= want
}

// GlobalFilters is the dashboard-wide filter value. Every field is
// independently optional; the empty string means unconstrained. A record
// matches iff it satisfies every constrained field (logical AND).
//
// GlobalFilters is a value type: the coordinator replaces it wholesale on
// every change and never mutates a published value in place.
type GlobalFilters struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Model     string `json:"model,omitempty"`
	Showroom  string `json:"showroom,omitempty"`
	Channel   string `json:"channel,omitempty"`
}

// IsZero reports whether no field is constrained.
func (f GlobalFilters) IsZero() bool {
	return f == GlobalFilters{}
}
