package analysis_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/vanderheijden86/driveline/pkg/analysis"
	"github.com/vanderheijden86/driveline/pkg/model"
	"github.com/vanderheijden86/driveline/pkg/testutil"
)

func TestAgeDistribution_FixedBucketOrder(t *testing.T) {
	// A single 60-year-old still yields every declared bucket, in order.
	records := []model.TestDriveRecord{testutil.NewRecord(testutil.WithAge(60))}

	dist := analysis.AgeDistribution(records)
	if len(dist) != len(model.AgeBuckets) {
		t.Fatalf("Got %d buckets, want %d", len(dist), len(model.AgeBuckets))
	}
	for i, b := range model.AgeBuckets {
		if dist[i].AgeGroup != b.Label {
			t.Errorf("Bucket %d = %s, want %s", i, dist[i].AgeGroup, b.Label)
		}
	}
	for _, d := range dist {
		want := 0
		if d.AgeGroup == "56+" {
			want = 1
		}
		if d.Count != want {
			t.Errorf("Bucket %s count = %d, want %d", d.AgeGroup, d.Count, want)
		}
	}
}

func TestAgeDistribution_UnbucketedAgesExcluded(t *testing.T) {
	records := []model.TestDriveRecord{
		testutil.NewRecord(testutil.WithAge(15)), // below every bucket
		testutil.NewRecord(testutil.WithAge(30)),
	}

	dist := analysis.AgeDistribution(records)
	for _, d := range dist {
		if d.AgeGroup == "26-35" {
			if d.Count != 1 || d.Percentage != 100.0 {
				t.Errorf("26-35 = %d (%v%%), want 1 (100%%): the unbucketed age must not dilute", d.Count, d.Percentage)
			}
		}
	}
}

func TestAgeDistribution_Partition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := genRecords(t, "records")

		dist := analysis.AgeDistribution(records)
		sum := 0
		for _, d := range dist {
			sum += d.Count
		}
		bucketed := 0
		for _, r := range records {
			if model.BucketForAge(r.CustomerAge) != nil {
				bucketed++
			}
		}
		if sum != bucketed {
			t.Fatalf("Bucket counts sum to %d, want %d", sum, bucketed)
		}
	})
}

func TestGenderDistribution(t *testing.T) {
	records := []model.TestDriveRecord{
		testutil.NewRecord(testutil.WithGender(model.GenderMale)),
		testutil.NewRecord(testutil.WithGender(model.GenderMale)),
		testutil.NewRecord(testutil.WithGender(model.GenderFemale)),
	}

	dist := analysis.GenderDistribution(records)
	if len(dist) != 2 {
		t.Fatalf("Got %d genders, want 2", len(dist))
	}
	if dist[0].Gender != model.GenderMale || dist[0].Count != 2 {
		t.Errorf("First row = %s/%d, want Male/2", dist[0].Gender, dist[0].Count)
	}
	if dist[1].Gender != model.GenderFemale || dist[1].Count != 1 {
		t.Errorf("Second row = %s/%d, want Female/1", dist[1].Gender, dist[1].Count)
	}
	if dist[0].Percentage != 66.7 || dist[1].Percentage != 33.3 {
		t.Errorf("Percentages = %v/%v, want 66.7/33.3", dist[0].Percentage, dist[1].Percentage)
	}
}

func TestGenderDistribution_Empty(t *testing.T) {
	dist := analysis.GenderDistribution(nil)
	for _, d := range dist {
		if d.Count != 0 || d.Percentage != 0 {
			t.Errorf("Empty set should yield zero rows, got %+v", d)
		}
	}
}
