package ui

import "github.com/vanderheijden86/driveline/pkg/model"

// Selections holds the per-chart drill-down state the dashboard coordinates
// across views. Every field follows the toggle convention: selecting the
// already-selected entity clears it, selecting a different one replaces it.
// Age group and gender are mutually exclusive drill-down axes over the same
// base population, so selecting one clears the other.
//
// Selections never validate their values; an unrecognized entity simply
// matches nothing downstream.
type Selections struct {
	LeadSource string
	AgeGroup   string
	Gender     model.Gender
	Showroom   string
	Consultant string
}

// toggle implements the shared select/clear convention.
func toggle(current, next string) string {
	if current == next {
		return ""
	}
	return next
}

// ToggleLeadSource selects or clears a lead source.
func (s *Selections) ToggleLeadSource(source string) {
	s.LeadSource = toggle(s.LeadSource, source)
}

// ToggleAgeGroup selects or clears an age group, clearing any gender
// drill-down.
func (s *Selections) ToggleAgeGroup(group string) {
	s.AgeGroup = toggle(s.AgeGroup, group)
	s.Gender = ""
}

// ToggleGender selects or clears a gender, clearing any age-group
// drill-down.
func (s *Selections) ToggleGender(g model.Gender) {
	s.Gender = model.Gender(toggle(string(s.Gender), string(g)))
	s.AgeGroup = ""
}

// ToggleShowroom selects or clears a showroom.
func (s *Selections) ToggleShowroom(name string) {
	s.Showroom = toggle(s.Showroom, name)
}

// ToggleConsultant selects or clears a consultant.
func (s *Selections) ToggleConsultant(name string) {
	s.Consultant = toggle(s.Consultant, name)
}

// Clear resets every selection.
func (s *Selections) Clear() {
	*s = Selections{}
}
