package ui

import (
	"testing"

	"github.com/vanderheijden86/driveline/pkg/model"
)

func TestSelections_ToggleLeadSource(t *testing.T) {
	var s Selections

	s.ToggleLeadSource("Instagram")
	if s.LeadSource != "Instagram" {
		t.Errorf("LeadSource = %q, want Instagram", s.LeadSource)
	}

	s.ToggleLeadSource("Facebook")
	if s.LeadSource != "Facebook" {
		t.Errorf("Selecting another source should replace: got %q", s.LeadSource)
	}

	s.ToggleLeadSource("Facebook")
	if s.LeadSource != "" {
		t.Errorf("Re-selecting should clear: got %q", s.LeadSource)
	}
}

func TestSelections_AgeGroupAndGenderAreExclusive(t *testing.T) {
	var s Selections

	s.ToggleAgeGroup("26-35")
	if s.AgeGroup != "26-35" {
		t.Fatalf("AgeGroup = %q, want 26-35", s.AgeGroup)
	}

	s.ToggleGender(model.GenderFemale)
	if s.Gender != model.GenderFemale {
		t.Errorf("Gender = %q, want Female", s.Gender)
	}
	if s.AgeGroup != "" {
		t.Errorf("Selecting a gender should clear the age group, got %q", s.AgeGroup)
	}

	s.ToggleAgeGroup("46-55")
	if s.AgeGroup != "46-55" {
		t.Errorf("AgeGroup = %q, want 46-55", s.AgeGroup)
	}
	if s.Gender != "" {
		t.Errorf("Selecting an age group should clear the gender, got %q", s.Gender)
	}
}

func TestSelections_ToggleGenderTwiceClears(t *testing.T) {
	var s Selections
	s.ToggleGender(model.GenderMale)
	s.ToggleGender(model.GenderMale)
	if s.Gender != "" {
		t.Errorf("Re-selecting a gender should clear it, got %q", s.Gender)
	}
}

func TestSelections_IndependentAxes(t *testing.T) {
	var s Selections
	s.ToggleLeadSource("Referral")
	s.ToggleShowroom("Downtown")
	s.ToggleConsultant("Khalid Rahman")
	s.ToggleAgeGroup("18-25")

	// Each axis holds its own selection; only age/gender interact.
	if s.LeadSource != "Referral" || s.Showroom != "Downtown" ||
		s.Consultant != "Khalid Rahman" || s.AgeGroup != "18-25" {
		t.Errorf("Axes should be independent, got %+v", s)
	}
}

func TestSelections_Clear(t *testing.T) {
	s := Selections{
		LeadSource: "Instagram",
		AgeGroup:   "26-35",
		Showroom:   "Downtown",
		Consultant: "Khalid Rahman",
	}
	s.Clear()
	if s != (Selections{}) {
		t.Errorf("Clear should zero every field, got %+v", s)
	}
}

func TestSelections_UnrecognizedValueIsKept(t *testing.T) {
	// Selection state never validates; unknown entities simply match nothing
	// downstream.
	var s Selections
	s.ToggleShowroom("Airport")
	if s.Showroom != "Airport" {
		t.Errorf("Unrecognized values are stored as-is, got %q", s.Showroom)
	}
}
