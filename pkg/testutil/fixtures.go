// Package testutil provides deterministic test-drive record fixtures.
// Builders start from a plausible completed record and mutate it through
// options, so tests state only the fields they assert on.
package testutil

import (
	"fmt"

	"github.com/vanderheijden86/driveline/pkg/model"
)

// RecordOption mutates a fixture record.
type RecordOption func(*model.TestDriveRecord)

// NewRecord returns a completed Instagram RX350 test drive at the Downtown
// showroom, adjusted by the given options.
func NewRecord(opts ...RecordOption) model.TestDriveRecord {
	r := model.TestDriveRecord{
		Date:                "2025-03-15",
		Model:               "RX350",
		ModelType:           model.TypeSUV,
		Showroom:            "Downtown",
		Channel:             "Instagram",
		SalesConsultant:     "Khalid Rahman",
		Completed:           true,
		Occurrence:          model.OccurrenceFirstShow,
		FunnelStage:         model.StageCompleted,
		CustomerAge:         32,
		CustomerGender:      model.GenderMale,
		DurationMinutes:     35,
		TimeToTestDriveDays: 4,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Batch returns n records built from the same options, with dates spread
// across consecutive days so time-series tests see distinct buckets.
func Batch(n int, opts ...RecordOption) []model.TestDriveRecord {
	records := make([]model.TestDriveRecord, 0, n)
	for i := 0; i < n; i++ {
		day := i%28 + 1
		r := NewRecord(append([]RecordOption{WithDate(fmt.Sprintf("2025-03-%02d", day))}, opts...)...)
		records = append(records, r)
	}
	return records
}

// WithDate sets the record date.
func WithDate(date string) RecordOption {
	return func(r *model.TestDriveRecord) { r.Date = date }
}

// WithModel sets the car model, resolving the type from the catalog when the
// name is known.
func WithModel(name string) RecordOption {
	return func(r *model.TestDriveRecord) {
		r.Model = name
		if cm := model.ModelByName(name); cm != nil {
			r.ModelType = cm.Type
		}
	}
}

// WithShowroom sets the showroom.
func WithShowroom(name string) RecordOption {
	return func(r *model.TestDriveRecord) { r.Showroom = name }
}

// WithChannel sets the lead source.
func WithChannel(name string) RecordOption {
	return func(r *model.TestDriveRecord) { r.Channel = name }
}

// WithConsultant sets the sales consultant.
func WithConsultant(name string) RecordOption {
	return func(r *model.TestDriveRecord) { r.SalesConsultant = name }
}

// WithAge sets the customer age.
func WithAge(age int) RecordOption {
	return func(r *model.TestDriveRecord) { r.CustomerAge = age }
}

// WithGender sets the customer gender.
func WithGender(g model.Gender) RecordOption {
	return func(r *model.TestDriveRecord) { r.CustomerGender = g }
}

// WithDuration sets the test-drive duration in minutes.
func WithDuration(minutes int) RecordOption {
	return func(r *model.TestDriveRecord) { r.DurationMinutes = minutes }
}

// WithLeadTime sets the lead-to-test-drive delay in days.
func WithLeadTime(days int) RecordOption {
	return func(r *model.TestDriveRecord) { r.TimeToTestDriveDays = days }
}

// WithStage sets the funnel stage, keeping Completed and ConvertedToSale
// consistent with the stage the record reached.
func WithStage(s model.FunnelStage) RecordOption {
	return func(r *model.TestDriveRecord) {
		r.FunnelStage = s
		r.Completed = model.StageIndex(s) >= model.StageIndex(model.StageCompleted)
		r.ConvertedToSale = model.StageIndex(s) >= model.StageIndex(model.StageOrder)
		if !r.Completed {
			r.DurationMinutes = 0
			r.Occurrence = model.OccurrenceNoShow
		}
	}
}

// NotCompleted marks the record as a no-show that stalled at booking.
func NotCompleted() RecordOption {
	return func(r *model.TestDriveRecord) {
		r.Completed = false
		r.ConvertedToSale = false
		r.Occurrence = model.OccurrenceNoShow
		r.FunnelStage = model.StageBooked
		r.DurationMinutes = 0
	}
}

// Converted marks the record as a completed drive that reached invoice.
func Converted() RecordOption {
	return func(r *model.TestDriveRecord) {
		r.Completed = true
		r.ConvertedToSale = true
		r.FunnelStage = model.StageInvoice
		if r.DurationMinutes == 0 {
			r.DurationMinutes = 35
		}
	}
}

// WithOccurrence sets the attendance outcome, keeping Completed consistent.
func WithOccurrence(o model.Occurrence) RecordOption {
	return func(r *model.TestDriveRecord) {
		r.Occurrence = o
		r.Completed = o == model.OccurrenceFirstShow || o == model.OccurrenceRescheduled
		if !r.Completed {
			r.DurationMinutes = 0
			r.ConvertedToSale = false
			if model.StageIndex(r.FunnelStage) > model.StageIndex(model.StageBooked) {
				r.FunnelStage = model.StageBooked
			}
		}
	}
}
