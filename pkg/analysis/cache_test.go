package analysis_test

import (
	"reflect"
	"testing"

	"github.com/vanderheijden86/driveline/pkg/analysis"
	"github.com/vanderheijden86/driveline/pkg/model"
	"github.com/vanderheijden86/driveline/pkg/testutil"
)

func TestComputeDataHash_Empty(t *testing.T) {
	if hash := analysis.ComputeDataHash(nil); hash != "empty" {
		t.Errorf("Expected 'empty' for nil records, got %s", hash)
	}
	if hash := analysis.ComputeDataHash([]model.TestDriveRecord{}); hash != "empty" {
		t.Errorf("Expected 'empty' for empty slice, got %s", hash)
	}
}

func TestComputeDataHash_Deterministic(t *testing.T) {
	records := testutil.Batch(5)
	if h1, h2 := analysis.ComputeDataHash(records), analysis.ComputeDataHash(records); h1 != h2 {
		t.Errorf("Hash should be deterministic: %s != %s", h1, h2)
	}
}

func TestComputeDataHash_OrderSensitive(t *testing.T) {
	a := testutil.NewRecord(testutil.WithDate("2025-03-01"))
	b := testutil.NewRecord(testutil.WithDate("2025-03-02"))

	h1 := analysis.ComputeDataHash([]model.TestDriveRecord{a, b})
	h2 := analysis.ComputeDataHash([]model.TestDriveRecord{b, a})
	if h1 == h2 {
		t.Error("Store order is part of the identity; reordered stores must hash differently")
	}
}

func TestComputeDataHash_DifferentData(t *testing.T) {
	r1 := testutil.NewRecord()
	r2 := testutil.NewRecord(testutil.WithAge(r1.CustomerAge + 1))

	h1 := analysis.ComputeDataHash([]model.TestDriveRecord{r1})
	h2 := analysis.ComputeDataHash([]model.TestDriveRecord{r2})
	if h1 == h2 {
		t.Error("A field change should change the hash")
	}
}

func TestComputeFilterHash(t *testing.T) {
	if h := analysis.ComputeFilterHash(model.GlobalFilters{}); h != "unfiltered" {
		t.Errorf("Zero filters should hash to 'unfiltered', got %s", h)
	}

	f1 := model.GlobalFilters{Model: "RX350"}
	f2 := model.GlobalFilters{Model: "RX350"}
	if analysis.ComputeFilterHash(f1) != analysis.ComputeFilterHash(f2) {
		t.Error("Structurally equal filters must hash identically")
	}

	f3 := model.GlobalFilters{Showroom: "RX350"}
	if analysis.ComputeFilterHash(f1) == analysis.ComputeFilterHash(f3) {
		t.Error("Same value in a different field must hash differently")
	}
}

func TestMemo_ReturnsIdenticalValueForEqualFilters(t *testing.T) {
	memo := analysis.NewMemo(testutil.Batch(20))

	// Two structurally equal filter values: the second call must serve the
	// cached slice, not an equal copy.
	first := memo.PopularModels(model.GlobalFilters{Model: "RX350"})
	second := memo.PopularModels(model.GlobalFilters{Model: "RX350"})

	if len(first) == 0 {
		t.Fatal("Expected a non-empty aggregate")
	}
	if &first[0] != &second[0] {
		t.Error("Equal filters should return the identical cached slice")
	}

	hits, misses := memo.Stats()
	if hits == 0 || misses == 0 {
		t.Errorf("Expected both a miss and a hit, got %d hits / %d misses", hits, misses)
	}
}

func TestMemo_DifferentFiltersComputeSeparately(t *testing.T) {
	memo := analysis.NewMemo(testutil.Batch(10))

	all := memo.Summary(model.GlobalFilters{})
	filtered := memo.Summary(model.GlobalFilters{Model: "ES300"})
	if all.TotalLeads == filtered.TotalLeads {
		t.Errorf("Different filters should produce different aggregates: %d vs %d",
			all.TotalLeads, filtered.TotalLeads)
	}
}

func TestMemo_SetRecordsInvalidates(t *testing.T) {
	memo := analysis.NewMemo(testutil.Batch(10))
	before := memo.Summary(model.GlobalFilters{})
	beforeHash := memo.DataHash()

	memo.SetRecords(testutil.Batch(3))
	after := memo.Summary(model.GlobalFilters{})

	if memo.DataHash() == beforeHash {
		t.Error("Replacing the store should change the data hash")
	}
	if before.TotalLeads != 10 || after.TotalLeads != 3 {
		t.Errorf("Totals = %d then %d, want 10 then 3", before.TotalLeads, after.TotalLeads)
	}
}

func TestMemo_FilteredMatchesFilterRecords(t *testing.T) {
	records := testutil.Batch(15)
	memo := analysis.NewMemo(records)
	f := model.GlobalFilters{StartDate: "2025-03-05", EndDate: "2025-03-10"}

	got := memo.Filtered(f)
	want := analysis.FilterRecords(records, f)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Memoized filter diverges from FilterRecords: %d vs %d records", len(got), len(want))
	}
}

func TestMemo_AggregatesMatchPureFunctions(t *testing.T) {
	records := testutil.Batch(25)
	memo := analysis.NewMemo(records)
	f := model.GlobalFilters{Showroom: "Downtown"}
	filtered := analysis.FilterRecords(records, f)

	if got, want := memo.Summary(f), analysis.Summary(filtered); got != want {
		t.Errorf("Summary diverges: %+v vs %+v", got, want)
	}
	if got, want := memo.SalesFunnel(f), analysis.SalesFunnel(filtered); !reflect.DeepEqual(got, want) {
		t.Error("SalesFunnel diverges from the pure function")
	}
	if got, want := memo.AgeDistribution(f), analysis.AgeDistribution(filtered); !reflect.DeepEqual(got, want) {
		t.Error("AgeDistribution diverges from the pure function")
	}
}
