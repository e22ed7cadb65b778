package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/driveline/pkg/analysis"
)

// OverviewModel renders the headline tab: summary cards, the daily test-drive
// sparkline, weekday profile, and the popular-models and duration tables.
type OverviewModel struct {
	summary    analysis.SummaryStats
	completion analysis.CompletionStats
	occurrence analysis.OccurrenceBreakdown
	daily      []analysis.DatePoint
	weekday    []analysis.WeekdayCount
	popular    []analysis.ModelCount
	durations  []analysis.ModelDuration

	width  int
	height int
	theme  Theme
}

// NewOverviewModel creates an empty overview view.
func NewOverviewModel(theme Theme) OverviewModel {
	return OverviewModel{theme: theme}
}

// SetSize updates the render dimensions.
func (m *OverviewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData replaces the aggregates the view renders.
func (m *OverviewModel) SetData(
	summary analysis.SummaryStats,
	completion analysis.CompletionStats,
	occurrence analysis.OccurrenceBreakdown,
	daily []analysis.DatePoint,
	weekday []analysis.WeekdayCount,
	popular []analysis.ModelCount,
	durations []analysis.ModelDuration,
) {
	m.summary = summary
	m.completion = completion
	m.occurrence = occurrence
	m.daily = daily
	m.weekday = weekday
	m.popular = popular
	m.durations = durations
}

// View renders the overview tab.
func (m OverviewModel) View() string {
	var sections []string

	sections = append(sections, m.renderCards())
	sections = append(sections, m.renderTrend())
	sections = append(sections, m.renderWeekdays())

	tables := lipgloss.JoinHorizontal(lipgloss.Top,
		PanelStyle.Render(m.renderPopular()),
		" ",
		PanelStyle.Render(m.renderDurations()),
	)
	sections = append(sections, tables)

	return strings.Join(sections, "\n")
}

func (m OverviewModel) renderCards() string {
	card := func(label, value string, style lipgloss.Style) string {
		return PanelStyle.Render(
			m.theme.Muted.Render(label) + "\n" + style.Render(value),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Leads", fmt.Sprintf("%d", m.summary.TotalLeads), m.theme.Header),
		card("Test drives", fmt.Sprintf("%d", m.summary.TestDrives), m.theme.Good),
		card("Sales", fmt.Sprintf("%d", m.summary.Sales), m.theme.Accent),
		card("Completion", formatPct(m.summary.CompletionRate), m.theme.Good),
		card("Conversion", formatPct(m.summary.ConversionRate), m.theme.Accent),
		card("Show rate", formatPct(m.occurrence.ShowRate), m.theme.Warn),
	)
}

func (m OverviewModel) renderTrend() string {
	if len(m.daily) == 0 {
		return m.theme.Muted.Render("No test drives in the selected window")
	}

	width := m.width - 4
	if width < 10 {
		width = 10
	}
	values := make([]int, 0, len(m.daily))
	for _, p := range m.daily {
		values = append(values, p.TestDrives)
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	header := fmt.Sprintf("Daily test drives  %s … %s",
		m.daily[0].Date, m.daily[len(m.daily)-1].Date)
	return m.theme.Header.Render(header) + "\n" + m.theme.Accent.Render(sparkline(values))
}

func (m OverviewModel) renderWeekdays() string {
	if len(m.weekday) == 0 {
		return ""
	}
	maxVal := 0
	for _, w := range m.weekday {
		if w.TestDrives > maxVal {
			maxVal = w.TestDrives
		}
	}

	var b strings.Builder
	b.WriteString(m.theme.Header.Render("By weekday"))
	for _, w := range m.weekday {
		b.WriteString(fmt.Sprintf("\n%s %s %d",
			padRight(w.Weekday[:3], 3),
			m.theme.Accent.Render(bar(w.TestDrives, maxVal, 24)),
			w.TestDrives))
	}
	return b.String()
}

func (m OverviewModel) renderPopular() string {
	rows := make([][]string, 0, len(m.popular))
	for _, mc := range m.popular {
		rows = append(rows, []string{mc.Model, string(mc.Type), fmt.Sprintf("%d", mc.TestDrives)})
	}
	return m.theme.Header.Render("Popular models") + "\n" +
		renderTable(m.theme, []string{"Model", "Type", "Drives"}, rows, -1, m.width/2-4)
}

func (m OverviewModel) renderDurations() string {
	if len(m.durations) == 0 {
		return m.theme.Header.Render("Drive duration") + "\n" +
			m.theme.Muted.Render("No completed drives")
	}
	rows := make([][]string, 0, len(m.durations))
	for _, d := range m.durations {
		rows = append(rows, []string{
			d.Model,
			fmt.Sprintf("%d", d.Min),
			fmt.Sprintf("%.1f", d.Avg),
			fmt.Sprintf("%d", d.Max),
		})
	}
	return m.theme.Header.Render("Drive duration (min)") + "\n" +
		renderTable(m.theme, []string{"Model", "Min", "Avg", "Max"}, rows, -1, m.width/2-4)
}
