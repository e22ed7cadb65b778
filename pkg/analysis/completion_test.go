package analysis_test

import (
	"testing"

	"github.com/vanderheijden86/driveline/pkg/analysis"
	"github.com/vanderheijden86/driveline/pkg/model"
	"github.com/vanderheijden86/driveline/pkg/testutil"
)

func TestCompletion_SixOfTen(t *testing.T) {
	var records []model.TestDriveRecord
	for i := 0; i < 6; i++ {
		records = append(records, testutil.NewRecord())
	}
	for i := 0; i < 4; i++ {
		records = append(records, testutil.NewRecord(testutil.NotCompleted()))
	}

	stats := analysis.Completion(records)
	if stats.Total != 10 || stats.Completed != 6 || stats.NotCompleted != 4 {
		t.Errorf("Got %d/%d/%d, want 10/6/4", stats.Total, stats.Completed, stats.NotCompleted)
	}
	if stats.CompletionRate != 60.0 {
		t.Errorf("CompletionRate = %v, want 60.0", stats.CompletionRate)
	}
}

func TestCompletion_Empty(t *testing.T) {
	stats := analysis.Completion(nil)
	if stats.Total != 0 || stats.CompletionRate != 0 {
		t.Errorf("Empty set should yield zeros, got %+v", stats)
	}
}

func TestOccurrence(t *testing.T) {
	records := []model.TestDriveRecord{
		testutil.NewRecord(testutil.WithOccurrence(model.OccurrenceFirstShow)),
		testutil.NewRecord(testutil.WithOccurrence(model.OccurrenceFirstShow)),
		testutil.NewRecord(testutil.WithOccurrence(model.OccurrenceRescheduled)),
		testutil.NewRecord(testutil.WithOccurrence(model.OccurrenceCancelled)),
		testutil.NewRecord(testutil.WithOccurrence(model.OccurrenceNoShow)),
	}

	b := analysis.Occurrence(records)
	if b.FirstShow != 2 || b.Rescheduled != 1 || b.Cancelled != 1 || b.NoShow != 1 {
		t.Errorf("Outcome counts wrong: %+v", b)
	}
	if b.Shows != 3 || b.Misses != 2 {
		t.Errorf("Shows/Misses = %d/%d, want 3/2", b.Shows, b.Misses)
	}
	if b.Shows+b.Misses != b.Total {
		t.Errorf("Subtotals %d+%d do not sum to total %d", b.Shows, b.Misses, b.Total)
	}
	if b.ShowRate != 60.0 {
		t.Errorf("ShowRate = %v, want 60.0", b.ShowRate)
	}
}
