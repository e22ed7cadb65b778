package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/driveline/pkg/analysis"
)

// FunnelModel renders the sales funnel: overall stage bars plus a per-source
// breakdown. Moving the cursor over the source list and pressing enter emits
// that source as a selection toggle.
type FunnelModel struct {
	funnel   analysis.Funnel
	selected string // currently selected lead source, "" = none
	cursor   int
	width    int
	height   int
	theme    Theme
}

// NewFunnelModel creates an empty funnel view.
func NewFunnelModel(theme Theme) FunnelModel {
	return FunnelModel{theme: theme}
}

// SetSize updates the render dimensions.
func (m *FunnelModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData replaces the funnel aggregate and the current source selection.
func (m *FunnelModel) SetData(funnel analysis.Funnel, selected string) {
	m.funnel = funnel
	m.selected = selected
	if m.cursor >= len(funnel.Sources) {
		m.cursor = 0
	}
}

// Update handles navigation keys; returns the source under the cursor on
// enter so the coordinator can toggle the selection.
func (m *FunnelModel) Update(msg tea.KeyMsg) (string, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.funnel.Sources)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.cursor >= 0 && m.cursor < len(m.funnel.Sources) {
			return m.funnel.Sources[m.cursor].Source, nil
		}
	}
	return "", nil
}

// View renders the funnel tab.
func (m FunnelModel) View() string {
	left := PanelStyle.Render(m.renderStages())
	right := PanelStyle.Render(m.renderSources())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// renderStages shows the overall funnel, or the selected source's funnel
// when one is chosen.
func (m FunnelModel) renderStages() string {
	stages := m.funnel.Overall
	title := "Sales funnel: all sources"
	var split *analysis.InvoiceSplit
	if m.selected != "" {
		for i := range m.funnel.Sources {
			if m.funnel.Sources[i].Source == m.selected {
				stages = m.funnel.Sources[i].Stages
				split = &m.funnel.Sources[i].Split
				title = "Sales funnel: " + m.selected
				break
			}
		}
	}

	maxVal := 0
	for _, s := range stages {
		if s.Value > maxVal {
			maxVal = s.Value
		}
	}

	var b strings.Builder
	b.WriteString(m.theme.Header.Render(title))
	for _, s := range stages {
		b.WriteString(fmt.Sprintf("\n%s %s %d",
			padRight(string(s.Name), 9),
			m.theme.Accent.Render(bar(s.Value, maxVal, 28)),
			s.Value))
	}

	if split != nil {
		b.WriteString("\n\n")
		b.WriteString(m.theme.Muted.Render(
			fmt.Sprintf("invoices: %d financed / %d cash", split.Financed, split.Cash)))
	}
	return b.String()
}

func (m FunnelModel) renderSources() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Lead sources"))
	for i, sf := range m.funnel.Sources {
		requested := sf.Stages[0].Value
		invoiced := sf.Stages[len(sf.Stages)-1].Value
		line := fmt.Sprintf("%s %5d → %d", padRight(sf.Source, 16), requested, invoiced)

		marker := "  "
		if sf.Source == m.selected {
			marker = "● "
		}
		line = marker + line

		b.WriteString("\n")
		if i == m.cursor {
			b.WriteString(m.theme.Selected.Render(line))
		} else {
			b.WriteString(m.theme.Base.Render(line))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.Muted.Render("enter: focus source (again to clear)"))
	return b.String()
}
