package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/driveline/pkg/analysis"
)

// leaderboardPane identifies which pane owns the cursor.
type leaderboardPane int

const (
	paneShowrooms leaderboardPane = iota
	paneConsultants
)

// LeaderboardEvent is emitted when the user activates a row.
type LeaderboardEvent struct {
	Showroom   string
	Consultant string
}

// LeaderboardModel renders the showroom and consultant leaderboards plus the
// lead-time table. Enter on a showroom row cross-filters the whole dashboard
// to that showroom; enter on a consultant row highlights the consultant.
type LeaderboardModel struct {
	showrooms   []analysis.ShowroomStanding
	consultants []analysis.ConsultantStanding
	timing      []analysis.ShowroomTiming

	selectedShowroom   string
	selectedConsultant string

	pane   leaderboardPane
	cursor int
	width  int
	height int
	theme  Theme
}

// NewLeaderboardModel creates an empty leaderboard view.
func NewLeaderboardModel(theme Theme) LeaderboardModel {
	return LeaderboardModel{theme: theme}
}

// SetSize updates the render dimensions.
func (m *LeaderboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData replaces the leaderboard aggregates and current selections.
func (m *LeaderboardModel) SetData(
	showrooms []analysis.ShowroomStanding,
	consultants []analysis.ConsultantStanding,
	timing []analysis.ShowroomTiming,
	selectedShowroom, selectedConsultant string,
) {
	m.showrooms = showrooms
	m.consultants = consultants
	m.timing = timing
	m.selectedShowroom = selectedShowroom
	m.selectedConsultant = selectedConsultant
	if m.cursor >= m.paneLen() {
		m.cursor = 0
	}
}

func (m LeaderboardModel) paneLen() int {
	if m.pane == paneShowrooms {
		return len(m.showrooms)
	}
	return len(m.consultants)
}

// Update handles navigation; returns a non-zero event on enter.
func (m *LeaderboardModel) Update(msg tea.KeyMsg) (LeaderboardEvent, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < m.paneLen()-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "h", "left":
		m.pane = paneShowrooms
		m.cursor = 0
	case "l", "right":
		m.pane = paneConsultants
		m.cursor = 0
	case "enter":
		if m.pane == paneShowrooms && m.cursor < len(m.showrooms) {
			return LeaderboardEvent{Showroom: m.showrooms[m.cursor].Showroom}, nil
		}
		if m.pane == paneConsultants && m.cursor < len(m.consultants) {
			return LeaderboardEvent{Consultant: m.consultants[m.cursor].Consultant}, nil
		}
	}
	return LeaderboardEvent{}, nil
}

// View renders the leaderboards tab.
func (m LeaderboardModel) View() string {
	showrooms := m.renderShowrooms()
	consultants := m.renderConsultants()

	if m.pane == paneShowrooms {
		showrooms = PanelFocusStyle.Render(showrooms)
		consultants = PanelStyle.Render(consultants)
	} else {
		showrooms = PanelStyle.Render(showrooms)
		consultants = PanelFocusStyle.Render(consultants)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, showrooms, " ", consultants)
	return top + "\n" + PanelStyle.Render(m.renderTiming())
}

func (m LeaderboardModel) renderShowrooms() string {
	rows := make([][]string, 0, len(m.showrooms))
	for _, s := range m.showrooms {
		name := s.Showroom
		if s.Showroom == m.selectedShowroom {
			name = "● " + name
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", s.TestDrives),
			fmt.Sprintf("%d", s.Conversions),
			formatPct(s.ConversionRate),
		})
	}
	cursor := -1
	if m.pane == paneShowrooms {
		cursor = m.cursor
	}
	return m.theme.Header.Render("Showrooms (completed drives)") + "\n" +
		renderTable(m.theme, []string{"Showroom", "Drives", "Sales", "Conv"}, rows, cursor, m.width/2-4)
}

func (m LeaderboardModel) renderConsultants() string {
	rows := make([][]string, 0, len(m.consultants))
	for _, c := range m.consultants {
		name := c.Consultant
		if c.Consultant == m.selectedConsultant {
			name = "● " + name
		}
		rows = append(rows, []string{
			name,
			c.Showroom,
			fmt.Sprintf("%d", c.TestDrives),
			formatPct(c.ConversionRate),
		})
	}
	cursor := -1
	if m.pane == paneConsultants {
		cursor = m.cursor
	}
	return m.theme.Header.Render("Consultants (by conversion)") + "\n" +
		renderTable(m.theme, []string{"Consultant", "Showroom", "Drives", "Conv"}, rows, cursor, m.width/2-4)
}

func (m LeaderboardModel) renderTiming() string {
	rows := make([][]string, 0, len(m.timing))
	for _, t := range m.timing {
		rows = append(rows, []string{
			t.Showroom,
			fmt.Sprintf("%d", t.Min),
			fmt.Sprintf("%.1f", t.Avg),
			fmt.Sprintf("%d", t.Max),
		})
	}
	return m.theme.Header.Render("Lead → test drive (days)") + "\n" +
		renderTable(m.theme, []string{"Showroom", "Min", "Avg", "Max"}, rows, -1, m.width-4)
}
