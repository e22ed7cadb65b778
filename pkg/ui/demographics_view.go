package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/driveline/pkg/analysis"
	"github.com/vanderheijden86/driveline/pkg/model"
)

// DemographicsEvent is emitted when the user toggles a demographic entity.
// Exactly one field is set.
type DemographicsEvent struct {
	AgeGroup string
	Gender   model.Gender
}

// DemographicsModel renders the age and gender distributions. The two are
// mutually exclusive drill-down axes: selecting an age group shows the gender
// split inside it, selecting a gender shows the age profile inside it.
type DemographicsModel struct {
	age    []analysis.AgeGroupCount
	gender []analysis.GenderCount

	selectedAge    string
	selectedGender model.Gender

	// drill holds the cross-dimension breakdown for the active selection,
	// computed by the coordinator.
	drillTitle  string
	drillLabels []string
	drillValues []int

	cursor int // 0..len(age)-1 over age rows, then gender rows
	width  int
	height int
	theme  Theme
}

// NewDemographicsModel creates an empty demographics view.
func NewDemographicsModel(theme Theme) DemographicsModel {
	return DemographicsModel{theme: theme}
}

// SetSize updates the render dimensions.
func (m *DemographicsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData replaces the distributions and the current selection.
func (m *DemographicsModel) SetData(age []analysis.AgeGroupCount, gender []analysis.GenderCount, selectedAge string, selectedGender model.Gender) {
	m.age = age
	m.gender = gender
	m.selectedAge = selectedAge
	m.selectedGender = selectedGender
	if m.cursor >= len(age)+len(gender) {
		m.cursor = 0
	}
}

// SetDrilldown replaces the cross-dimension breakdown panel. Empty labels
// hide the panel.
func (m *DemographicsModel) SetDrilldown(title string, labels []string, values []int) {
	m.drillTitle = title
	m.drillLabels = labels
	m.drillValues = values
}

// rowCount is the combined navigable row count (age buckets then genders).
func (m DemographicsModel) rowCount() int {
	return len(m.age) + len(m.gender)
}

// Update handles navigation; returns a toggle event on enter.
func (m *DemographicsModel) Update(msg tea.KeyMsg) (DemographicsEvent, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.cursor < len(m.age) {
			return DemographicsEvent{AgeGroup: m.age[m.cursor].AgeGroup}, nil
		}
		if i := m.cursor - len(m.age); i < len(m.gender) {
			return DemographicsEvent{Gender: m.gender[i].Gender}, nil
		}
	}
	return DemographicsEvent{}, nil
}

// View renders the demographics tab.
func (m DemographicsModel) View() string {
	left := PanelStyle.Render(m.renderDistributions())
	if len(m.drillLabels) == 0 {
		return left
	}
	right := PanelStyle.Render(m.renderDrilldown())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m DemographicsModel) renderDistributions() string {
	maxCount := 0
	for _, a := range m.age {
		if a.Count > maxCount {
			maxCount = a.Count
		}
	}
	for _, g := range m.gender {
		if g.Count > maxCount {
			maxCount = g.Count
		}
	}

	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Age groups"))
	for i, a := range m.age {
		marker := "  "
		if a.AgeGroup == m.selectedAge {
			marker = "● "
		}
		line := fmt.Sprintf("%s%s %s %4d  %s",
			marker, padRight(a.AgeGroup, 6),
			m.theme.Accent.Render(bar(a.Count, maxCount, 20)),
			a.Count, formatPct(a.Percentage))
		b.WriteString("\n")
		b.WriteString(m.rowStyle(i).Render(line))
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.Header.Render("Gender"))
	for i, g := range m.gender {
		marker := "  "
		if g.Gender == m.selectedGender {
			marker = "● "
		}
		line := fmt.Sprintf("%s%s %s %4d  %s",
			marker, padRight(string(g.Gender), 6),
			m.theme.Accent.Render(bar(g.Count, maxCount, 20)),
			g.Count, formatPct(g.Percentage))
		b.WriteString("\n")
		b.WriteString(m.rowStyle(len(m.age) + i).Render(line))
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.Muted.Render("enter: drill down (selecting one axis clears the other)"))
	return b.String()
}

func (m DemographicsModel) rowStyle(row int) lipgloss.Style {
	if row == m.cursor {
		return m.theme.Selected
	}
	return m.theme.Base
}

func (m DemographicsModel) renderDrilldown() string {
	maxVal := 0
	for _, v := range m.drillValues {
		if v > maxVal {
			maxVal = v
		}
	}

	var b strings.Builder
	b.WriteString(m.theme.Header.Render(m.drillTitle))
	for i, label := range m.drillLabels {
		b.WriteString(fmt.Sprintf("\n%s %s %d",
			padRight(label, 8),
			m.theme.Good.Render(bar(m.drillValues[i], maxVal, 16)),
			m.drillValues[i]))
	}
	return b.String()
}
