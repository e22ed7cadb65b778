package model_test

import (
	"testing"

	"github.com/vanderheijden86/driveline/pkg/model"
)

func TestBucketForAge_Boundaries(t *testing.T) {
	cases := []struct {
		age  int
		want string
	}{
		{18, "18-25"},
		{25, "18-25"},
		{26, "26-35"},
		{35, "26-35"},
		{36, "36-45"},
		{46, "46-55"},
		{56, "56+"},
		{99, "56+"},
	}
	for _, tc := range cases {
		b := model.BucketForAge(tc.age)
		if b == nil {
			t.Errorf("BucketForAge(%d) = nil, want %s", tc.age, tc.want)
			continue
		}
		if b.Label != tc.want {
			t.Errorf("BucketForAge(%d) = %s, want %s", tc.age, b.Label, tc.want)
		}
	}
}

func TestBucketForAge_BelowRange(t *testing.T) {
	if b := model.BucketForAge(17); b != nil {
		t.Errorf("Age 17 should not land in any bucket, got %s", b.Label)
	}
	if b := model.BucketForAge(0); b != nil {
		t.Errorf("Age 0 should not land in any bucket, got %s", b.Label)
	}
}

func TestBucketForAge_Partition(t *testing.T) {
	// Every age from 18 up lands in exactly one bucket.
	for age := 18; age <= 120; age++ {
		matches := 0
		for _, b := range model.AgeBuckets {
			if b.Contains(age) {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("Age %d matches %d buckets, want exactly 1", age, matches)
		}
	}
}

func TestModelByName(t *testing.T) {
	m := model.ModelByName("RX350")
	if m == nil {
		t.Fatal("Expected RX350 in the catalog")
	}
	if m.Type != model.TypeSUV {
		t.Errorf("RX350 type = %s, want %s", m.Type, model.TypeSUV)
	}
	if model.ModelByName("ZX999") != nil {
		t.Error("Unknown model should return nil")
	}
}

func TestShowroomByName(t *testing.T) {
	s := model.ShowroomByName("Downtown")
	if s == nil {
		t.Fatal("Expected Downtown in the catalog")
	}
	if model.ShowroomByName("Airport") != nil {
		t.Error("Unknown showroom should return nil")
	}
}

func TestKnownLeadSource(t *testing.T) {
	if !model.KnownLeadSource("Instagram") {
		t.Error("Instagram should be a known lead source")
	}
	if model.KnownLeadSource("Billboard") {
		t.Error("Billboard should not be a known lead source")
	}
}

func TestConsultantsBelongToKnownShowrooms(t *testing.T) {
	for _, c := range model.Consultants {
		if model.ShowroomByName(c.Showroom) == nil {
			t.Errorf("Consultant %s references unknown showroom %s", c.Name, c.Showroom)
		}
	}
}
