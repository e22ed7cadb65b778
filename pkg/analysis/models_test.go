package analysis_test

import (
	"testing"

	"github.com/vanderheijden86/driveline/pkg/analysis"
	"github.com/vanderheijden86/driveline/pkg/model"
	"github.com/vanderheijden86/driveline/pkg/testutil"
)

func TestPopularModels_Ordering(t *testing.T) {
	var records []model.TestDriveRecord
	records = append(records, testutil.Batch(3, testutil.WithModel("ES300"))...)
	records = append(records, testutil.Batch(5, testutil.WithModel("RX350"))...)
	records = append(records, testutil.Batch(3, testutil.WithModel("LC500"))...)

	got := analysis.PopularModels(records)
	if len(got) != 3 {
		t.Fatalf("Got %d rows, want 3", len(got))
	}
	if got[0].Model != "RX350" || got[0].TestDrives != 5 {
		t.Errorf("First row = %s/%d, want RX350/5", got[0].Model, got[0].TestDrives)
	}
	// Tie between ES300 and LC500 breaks alphabetically.
	if got[1].Model != "ES300" || got[2].Model != "LC500" {
		t.Errorf("Tie order = %s, %s; want ES300, LC500", got[1].Model, got[2].Model)
	}
	if got[0].Type != model.TypeSUV {
		t.Errorf("RX350 type = %s, want %s", got[0].Type, model.TypeSUV)
	}
}

func TestPopularModels_FilteredToOneModel(t *testing.T) {
	records := append(
		testutil.Batch(4, testutil.WithModel("RX350")),
		testutil.Batch(4, testutil.WithModel("ES300"))...,
	)
	filtered := analysis.FilterRecords(records, model.GlobalFilters{Model: "RX350"})

	got := analysis.PopularModels(filtered)
	if len(got) != 1 || got[0].Model != "RX350" || got[0].TestDrives != 4 {
		t.Errorf("Expected a single RX350/4 row, got %+v", got)
	}
}

func TestDurationByModel_PrefiltersAndOmitsEmpty(t *testing.T) {
	records := []model.TestDriveRecord{
		testutil.NewRecord(testutil.WithModel("RX350"), testutil.WithDuration(30)),
		testutil.NewRecord(testutil.WithModel("RX350"), testutil.WithDuration(50)),
		// Not completed: excluded even with a duration value.
		testutil.NewRecord(testutil.WithModel("ES300"), testutil.NotCompleted()),
		// Completed but zero duration: excluded.
		testutil.NewRecord(testutil.WithModel("LS500"), testutil.WithDuration(0)),
	}

	got := analysis.DurationByModel(records)
	if len(got) != 1 {
		t.Fatalf("Expected only RX350 (empty groups omitted), got %d rows", len(got))
	}
	d := got[0]
	if d.Model != "RX350" || d.Min != 30 || d.Max != 50 || d.Avg != 40.0 {
		t.Errorf("RX350 stats = min %d max %d avg %v, want 30/50/40.0", d.Min, d.Max, d.Avg)
	}
	if len(d.Values) != 2 {
		t.Errorf("Expected 2 samples, got %d", len(d.Values))
	}
}

func TestDurationByModel_DescendingByAverage(t *testing.T) {
	records := []model.TestDriveRecord{
		testutil.NewRecord(testutil.WithModel("ES300"), testutil.WithDuration(20)),
		testutil.NewRecord(testutil.WithModel("RX350"), testutil.WithDuration(60)),
	}
	got := analysis.DurationByModel(records)
	if got[0].Model != "RX350" || got[1].Model != "ES300" {
		t.Errorf("Order = %s, %s; want RX350 first (higher average)", got[0].Model, got[1].Model)
	}
}
