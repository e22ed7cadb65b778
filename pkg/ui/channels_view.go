package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/driveline/pkg/analysis"
	"github.com/vanderheijden86/driveline/pkg/model"
)

// ChannelsModel renders lead-source performance: leads, completed drives and
// conversion per source. Enter toggles the source selection shared with the
// funnel tab.
type ChannelsModel struct {
	rows     []analysis.ChannelPerformance
	selected string
	cursor   int
	width    int
	height   int
	theme    Theme
}

// NewChannelsModel creates an empty channels view.
func NewChannelsModel(theme Theme) ChannelsModel {
	return ChannelsModel{theme: theme}
}

// SetSize updates the render dimensions.
func (m *ChannelsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData replaces the channel aggregates and current selection.
func (m *ChannelsModel) SetData(rows []analysis.ChannelPerformance, selected string) {
	m.rows = rows
	m.selected = selected
	if m.cursor >= len(rows) {
		m.cursor = 0
	}
}

// Update handles navigation; returns the source under the cursor on enter.
func (m *ChannelsModel) Update(msg tea.KeyMsg) (string, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.cursor >= 0 && m.cursor < len(m.rows) {
			return m.rows[m.cursor].Source, nil
		}
	}
	return "", nil
}

// View renders the channels tab.
func (m ChannelsModel) View() string {
	table := PanelStyle.Render(m.renderTable())
	bars := PanelStyle.Render(m.renderBars())
	return lipgloss.JoinHorizontal(lipgloss.Top, table, " ", bars)
}

func (m ChannelsModel) renderTable() string {
	rows := make([][]string, 0, len(m.rows))
	for _, r := range m.rows {
		name := r.Source
		if r.Source == m.selected {
			name = "● " + name
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", r.Leads),
			fmt.Sprintf("%d", r.TestDrives),
			formatPct(r.Conversion),
		})
	}
	return m.theme.Header.Render("Channel performance") + "\n" +
		renderTable(m.theme, []string{"Source", "Leads", "Drives", "Conv"}, rows, m.cursor, m.width/2-4)
}

func (m ChannelsModel) renderBars() string {
	maxLeads := 0
	for _, r := range m.rows {
		if r.Leads > maxLeads {
			maxLeads = r.Leads
		}
	}

	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Leads by source"))
	for _, r := range m.rows {
		style := m.theme.Accent
		if hex, ok := model.ChannelColors[r.Source]; ok {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		}
		if r.Source == m.selected {
			style = m.theme.Good
		}
		b.WriteString(fmt.Sprintf("\n%s %s %d",
			padRight(truncate(r.Source, 15), 15),
			style.Render(bar(r.Leads, maxLeads, 20)),
			r.Leads))
	}
	return b.String()
}
