package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/driveline/pkg/analysis"
	"github.com/vanderheijden86/driveline/pkg/config"
)

// CustomTabModel renders a user-defined tab from its saved layout template.
// Custom tabs are read-only composites of the built-in charts; drill-down
// stays on the dedicated tabs.
type CustomTabModel struct {
	layout config.TabLayout

	summary   analysis.SummaryStats
	funnel    analysis.Funnel
	popular   []analysis.ModelCount
	channels  []analysis.ChannelPerformance
	daily     []analysis.DatePoint
	showrooms []analysis.ShowroomStanding

	width  int
	height int
	theme  Theme
}

// NewCustomTabModel creates a view for the given saved layout.
func NewCustomTabModel(theme Theme, layout config.TabLayout) CustomTabModel {
	return CustomTabModel{theme: theme, layout: layout}
}

// Layout returns the saved layout this tab renders.
func (m CustomTabModel) Layout() config.TabLayout {
	return m.layout
}

// SetSize updates the render dimensions.
func (m *CustomTabModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData replaces the aggregates the template composes.
func (m *CustomTabModel) SetData(
	summary analysis.SummaryStats,
	funnel analysis.Funnel,
	popular []analysis.ModelCount,
	channels []analysis.ChannelPerformance,
	daily []analysis.DatePoint,
	showrooms []analysis.ShowroomStanding,
) {
	m.summary = summary
	m.funnel = funnel
	m.popular = popular
	m.channels = channels
	m.daily = daily
	m.showrooms = showrooms
}

// View renders the tab according to its template. Unknown templates fall
// back to the single-chart layout rather than erroring.
func (m CustomTabModel) View() string {
	switch m.layout.Template {
	case "grid-2x2":
		top := lipgloss.JoinHorizontal(lipgloss.Top,
			PanelStyle.Render(m.renderSummary()), " ",
			PanelStyle.Render(m.renderFunnel()))
		bottom := lipgloss.JoinHorizontal(lipgloss.Top,
			PanelStyle.Render(m.renderPopular()), " ",
			PanelStyle.Render(m.renderChannels()))
		return top + "\n" + bottom
	case "focus-funnel":
		return PanelStyle.Render(m.renderFunnel()) + "\n" +
			PanelStyle.Render(m.renderChannels())
	case "focus-leaderboard":
		return PanelStyle.Render(m.renderShowrooms()) + "\n" +
			PanelStyle.Render(m.renderSummary())
	default: // "single"
		return PanelStyle.Render(m.renderTrend())
	}
}

func (m CustomTabModel) renderSummary() string {
	return m.theme.Header.Render("Summary") + "\n" +
		fmt.Sprintf("Leads %d · Drives %d · Sales %d\nCompletion %s · Conversion %s",
			m.summary.TotalLeads, m.summary.TestDrives, m.summary.Sales,
			formatPct(m.summary.CompletionRate), formatPct(m.summary.ConversionRate))
}

func (m CustomTabModel) renderFunnel() string {
	maxVal := 0
	for _, s := range m.funnel.Overall {
		if s.Value > maxVal {
			maxVal = s.Value
		}
	}
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Funnel"))
	for _, s := range m.funnel.Overall {
		b.WriteString(fmt.Sprintf("\n%s %s %d",
			padRight(string(s.Name), 9),
			m.theme.Accent.Render(bar(s.Value, maxVal, 20)), s.Value))
	}
	return b.String()
}

func (m CustomTabModel) renderPopular() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Top models"))
	limit := 5
	for i, mc := range m.popular {
		if i >= limit {
			break
		}
		b.WriteString(fmt.Sprintf("\n%s %d", padRight(mc.Model, 8), mc.TestDrives))
	}
	return b.String()
}

func (m CustomTabModel) renderChannels() string {
	maxLeads := 0
	for _, r := range m.channels {
		if r.Leads > maxLeads {
			maxLeads = r.Leads
		}
	}
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Channels"))
	for _, r := range m.channels {
		b.WriteString(fmt.Sprintf("\n%s %s %d",
			padRight(truncate(r.Source, 15), 15),
			m.theme.Accent.Render(bar(r.Leads, maxLeads, 14)), r.Leads))
	}
	return b.String()
}

func (m CustomTabModel) renderShowrooms() string {
	rows := make([][]string, 0, len(m.showrooms))
	for _, s := range m.showrooms {
		rows = append(rows, []string{
			s.Showroom,
			fmt.Sprintf("%d", s.TestDrives),
			formatPct(s.ConversionRate),
		})
	}
	return m.theme.Header.Render("Showrooms") + "\n" +
		renderTable(m.theme, []string{"Showroom", "Drives", "Conv"}, rows, -1, m.width-4)
}

func (m CustomTabModel) renderTrend() string {
	values := make([]int, 0, len(m.daily))
	for _, p := range m.daily {
		values = append(values, p.TestDrives)
	}
	width := m.width - 6
	if width < 10 {
		width = 10
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	return m.theme.Header.Render("Daily test drives") + "\n" +
		m.theme.Accent.Render(sparkline(values))
}
