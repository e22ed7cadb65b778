package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/driveline/pkg/analysis"
	"github.com/vanderheijden86/driveline/pkg/config"
	"github.com/vanderheijden86/driveline/pkg/debug"
	"github.com/vanderheijden86/driveline/pkg/model"
)

// Fixed tab order. Custom tabs follow.
const (
	tabOverview = iota
	tabFunnel
	tabShowrooms
	tabDemographics
	tabChannels
	tabFixedCount
)

var fixedTabLabels = []string{"Overview", "Funnel", "Showrooms", "Demographics", "Channels"}

// DataReloadedMsg carries a freshly loaded record set into the dashboard.
// Sent by the file watcher or by a manual reload.
type DataReloadedMsg struct {
	Records []model.TestDriveRecord
	Source  string
}

// reloadErrMsg reports a failed manual reload.
type reloadErrMsg struct{ err error }

// ReloadFunc re-reads the active data source.
type ReloadFunc func() ([]model.TestDriveRecord, error)

// DashboardModel is the cross-filter coordinator. It owns the global filters
// and every per-chart selection, computes aggregates through the memo layer,
// and pushes them into the passive tab views.
type DashboardModel struct {
	memo       *analysis.Memo
	filters    model.GlobalFilters
	selections Selections

	overview     OverviewModel
	funnel       FunnelModel
	leaderboards LeaderboardModel
	demographics DemographicsModel
	channels     ChannelsModel
	customs      []CustomTabModel

	help     HelpModel
	showHelp bool

	activeTab int
	width     int
	height    int
	theme     Theme

	source string
	status string
	reload ReloadFunc
}

// DashboardOption configures the dashboard at construction.
type DashboardOption func(*DashboardModel)

// WithReload wires a manual reload function, bound to the "r" key.
func WithReload(fn ReloadFunc) DashboardOption {
	return func(m *DashboardModel) { m.reload = fn }
}

// WithSource labels the active data source in the status bar.
func WithSource(name string) DashboardOption {
	return func(m *DashboardModel) { m.source = name }
}

// WithCustomTabs appends user-defined tabs after the built-in ones.
func WithCustomTabs(layouts []config.TabLayout) DashboardOption {
	return func(m *DashboardModel) {
		for _, l := range layouts {
			m.customs = append(m.customs, NewCustomTabModel(m.theme, l))
		}
	}
}

// WithInitialTab selects the starting tab by its config name.
func WithInitialTab(name string) DashboardOption {
	return func(m *DashboardModel) {
		for i, label := range fixedTabLabels {
			if strings.EqualFold(label, name) {
				m.activeTab = i
				return
			}
		}
	}
}

// WithFilters seeds the global filters.
func WithFilters(f model.GlobalFilters) DashboardOption {
	return func(m *DashboardModel) { m.filters = f }
}

// NewDashboard builds the dashboard over an already-populated memo.
func NewDashboard(memo *analysis.Memo, opts ...DashboardOption) DashboardModel {
	theme := DefaultTheme(nil)
	m := DashboardModel{
		memo:         memo,
		theme:        theme,
		overview:     NewOverviewModel(theme),
		funnel:       NewFunnelModel(theme),
		leaderboards: NewLeaderboardModel(theme),
		demographics: NewDemographicsModel(theme),
		channels:     NewChannelsModel(theme),
		help:         NewHelpModel(theme),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.refreshData()
	return m
}

// Filters returns the current global filters.
func (m DashboardModel) Filters() model.GlobalFilters {
	return m.filters
}

// SetFilters replaces the global filters wholesale and recomputes every
// aggregate. Partial in-place edits are deliberately not supported.
func (m *DashboardModel) SetFilters(f model.GlobalFilters) {
	m.filters = f
	m.refreshData()
}

// ClearAll resets filters and selections to their zero values.
func (m *DashboardModel) ClearAll() {
	m.filters = model.GlobalFilters{}
	m.selections.Clear()
	m.refreshData()
}

// Init implements tea.Model.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case DataReloadedMsg:
		m.memo.SetRecords(msg.Records)
		if msg.Source != "" {
			m.source = msg.Source
		}
		m.status = fmt.Sprintf("reloaded %d records", len(msg.Records))
		m.refreshData()
		return m, nil

	case reloadErrMsg:
		m.status = "reload failed: " + msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *DashboardModel) setSize(width, height int) {
	m.width = width
	m.height = height

	// Tab bar and status bar each take a line.
	contentHeight := height - 4
	if contentHeight < 4 {
		contentHeight = 4
	}
	m.overview.SetSize(width, contentHeight)
	m.funnel.SetSize(width, contentHeight)
	m.leaderboards.SetSize(width, contentHeight)
	m.demographics.SetSize(width, contentHeight)
	m.channels.SetSize(width, contentHeight)
	for i := range m.customs {
		m.customs[i].SetSize(width, contentHeight)
	}
	m.help.SetSize(width, contentHeight)
}

func (m DashboardModel) tabCount() int {
	return tabFixedCount + len(m.customs)
}

func (m DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "?", "q", "esc":
			m.showHelp = false
			return m, nil
		default:
			cmd := m.help.Update(msg)
			return m, cmd
		}
	}

	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "tab":
		m.activeTab = (m.activeTab + 1) % m.tabCount()
		return m, nil
	case "shift+tab":
		m.activeTab = (m.activeTab - 1 + m.tabCount()) % m.tabCount()
		return m, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		if idx < m.tabCount() {
			m.activeTab = idx
		}
		return m, nil

	case "m":
		f := m.filters
		f.Model = cycleModel(f.Model)
		m.SetFilters(f)
		return m, nil
	case "M":
		f := m.filters
		f.Model = ""
		m.SetFilters(f)
		return m, nil
	case "s":
		f := m.filters
		f.Showroom = cycleShowroom(f.Showroom)
		m.SetFilters(f)
		return m, nil
	case "S":
		f := m.filters
		f.Showroom = ""
		m.SetFilters(f)
		return m, nil
	case "c":
		f := m.filters
		f.Channel = cycleChannel(f.Channel)
		m.SetFilters(f)
		return m, nil
	case "C":
		f := m.filters
		f.Channel = ""
		m.SetFilters(f)
		return m, nil
	case "x":
		m.ClearAll()
		m.status = "filters cleared"
		return m, nil

	case "y":
		m.status = m.yankSummary()
		return m, nil

	case "r":
		if m.reload == nil {
			m.status = "no reloadable source"
			return m, nil
		}
		reload := m.reload
		return m, func() tea.Msg {
			records, err := reload()
			if err != nil {
				return reloadErrMsg{err}
			}
			return DataReloadedMsg{Records: records}
		}
	}

	// Remaining keys belong to the active view.
	switch m.activeTab {
	case tabOverview:
		// Overview has no interactive state.
	case tabFunnel:
		source, cmd := m.funnel.Update(msg)
		if source != "" {
			m.selections.ToggleLeadSource(source)
			m.refreshData()
		}
		return m, cmd
	case tabShowrooms:
		event, cmd := m.leaderboards.Update(msg)
		if event.Showroom != "" {
			m.selections.ToggleShowroom(event.Showroom)
			m.refreshData()
		}
		if event.Consultant != "" {
			m.selections.ToggleConsultant(event.Consultant)
			m.refreshData()
		}
		return m, cmd
	case tabDemographics:
		event, cmd := m.demographics.Update(msg)
		if event.AgeGroup != "" {
			m.selections.ToggleAgeGroup(event.AgeGroup)
			m.refreshData()
		}
		if event.Gender != "" {
			m.selections.ToggleGender(event.Gender)
			m.refreshData()
		}
		return m, cmd
	case tabChannels:
		source, cmd := m.channels.Update(msg)
		if source != "" {
			m.selections.ToggleLeadSource(source)
			m.refreshData()
		}
		return m, cmd
	}
	return m, nil
}

// refreshData recomputes every aggregate through the memo and pushes the
// results into the views. Selections cross-filter the charts they don't own:
// a selected showroom narrows every other chart, a selected lead source
// narrows the charts that don't break down by source.
func (m *DashboardModel) refreshData() {
	base := m.filters

	// Leaderboards keep the full showroom list so the selection stays
	// visible; they do honor a lead-source selection.
	leaderF := base
	if m.selections.LeadSource != "" {
		leaderF.Channel = m.selections.LeadSource
	}

	// Funnel and channels break down by source themselves, so only the
	// showroom selection narrows them.
	sourceF := base
	if m.selections.Showroom != "" {
		sourceF.Showroom = m.selections.Showroom
	}

	// Everything else gets both.
	crossF := sourceF
	if m.selections.LeadSource != "" {
		crossF.Channel = m.selections.LeadSource
	}

	m.overview.SetData(
		m.memo.Summary(crossF),
		m.memo.Completion(crossF),
		m.memo.Occurrence(crossF),
		m.memo.TestDrivesByDate(crossF),
		m.memo.WeekdayProfile(crossF),
		m.memo.PopularModels(crossF),
		m.memo.DurationByModel(crossF),
	)
	m.funnel.SetData(m.memo.SalesFunnel(sourceF), m.selections.LeadSource)
	m.leaderboards.SetData(
		m.memo.ShowroomLeaderboard(leaderF),
		m.memo.ConsultantLeaderboard(leaderF),
		m.memo.TimeToTestDrive(leaderF),
		m.selections.Showroom,
		m.selections.Consultant,
	)
	m.demographics.SetData(
		m.memo.AgeDistribution(crossF),
		m.memo.GenderDistribution(crossF),
		m.selections.AgeGroup,
		m.selections.Gender,
	)
	m.refreshDrilldown(crossF)
	m.channels.SetData(m.memo.ChannelPerformance(sourceF), m.selections.LeadSource)

	for i := range m.customs {
		m.customs[i].SetData(
			m.memo.Summary(crossF),
			m.memo.SalesFunnel(sourceF),
			m.memo.PopularModels(crossF),
			m.memo.ChannelPerformance(sourceF),
			m.memo.TestDrivesByDate(crossF),
			m.memo.ShowroomLeaderboard(leaderF),
		)
	}

	if hits, misses := m.memo.Stats(); misses > 0 || hits > 0 {
		debug.Log("memo stats: %d hits, %d misses", hits, misses)
	}
}

// refreshDrilldown computes the cross-dimension demographics breakdown for
// the active age-group or gender selection.
func (m *DashboardModel) refreshDrilldown(f model.GlobalFilters) {
	switch {
	case m.selections.AgeGroup != "":
		subset := recordsInAgeGroup(m.memo.Filtered(f), m.selections.AgeGroup)
		genders := analysis.GenderDistribution(subset)
		labels := make([]string, 0, len(genders))
		values := make([]int, 0, len(genders))
		for _, g := range genders {
			labels = append(labels, string(g.Gender))
			values = append(values, g.Count)
		}
		m.demographics.SetDrilldown("Gender within "+m.selections.AgeGroup, labels, values)

	case m.selections.Gender != "":
		subset := recordsOfGender(m.memo.Filtered(f), m.selections.Gender)
		ages := analysis.AgeDistribution(subset)
		labels := make([]string, 0, len(ages))
		values := make([]int, 0, len(ages))
		for _, a := range ages {
			labels = append(labels, a.AgeGroup)
			values = append(values, a.Count)
		}
		m.demographics.SetDrilldown("Ages within "+string(m.selections.Gender), labels, values)

	default:
		m.demographics.SetDrilldown("", nil, nil)
	}
}

func recordsInAgeGroup(records []model.TestDriveRecord, group string) []model.TestDriveRecord {
	var out []model.TestDriveRecord
	for _, r := range records {
		if b := model.BucketForAge(r.CustomerAge); b != nil && b.Label == group {
			out = append(out, r)
		}
	}
	return out
}

func recordsOfGender(records []model.TestDriveRecord, g model.Gender) []model.TestDriveRecord {
	var out []model.TestDriveRecord
	for _, r := range records {
		if r.CustomerGender == g {
			out = append(out, r)
		}
	}
	return out
}

// yankSummary copies the headline numbers for the current filters to the
// clipboard and returns a status line.
func (m DashboardModel) yankSummary() string {
	s := m.memo.Summary(m.filters)
	text := fmt.Sprintf("leads=%d drives=%d sales=%d completion=%.1f%% conversion=%.1f%%",
		s.TotalLeads, s.TestDrives, s.Sales, s.CompletionRate, s.ConversionRate)
	if err := clipboard.WriteAll(text); err != nil {
		debug.Log("clipboard: %v", err)
		return "clipboard unavailable"
	}
	return "copied summary"
}

// View implements tea.Model.
func (m DashboardModel) View() string {
	if m.width == 0 {
		return "loading..."
	}
	if m.showHelp {
		return m.renderTabBar() + "\n" + m.help.View() + "\n" + m.renderStatusBar()
	}

	var content string
	switch {
	case m.activeTab == tabOverview:
		content = m.overview.View()
	case m.activeTab == tabFunnel:
		content = m.funnel.View()
	case m.activeTab == tabShowrooms:
		content = m.leaderboards.View()
	case m.activeTab == tabDemographics:
		content = m.demographics.View()
	case m.activeTab == tabChannels:
		content = m.channels.View()
	default:
		content = m.customs[m.activeTab-tabFixedCount].View()
	}
	return m.renderTabBar() + "\n" + content + "\n" + m.renderStatusBar()
}

func (m DashboardModel) renderTabBar() string {
	labels := make([]string, 0, m.tabCount())
	for i, label := range fixedTabLabels {
		labels = append(labels, m.renderTab(i, label))
	}
	for i := range m.customs {
		labels = append(labels, m.renderTab(tabFixedCount+i, m.customs[i].Layout().Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

func (m DashboardModel) renderTab(index int, label string) string {
	title := fmt.Sprintf("%d %s", index+1, label)
	if index == m.activeTab {
		return m.theme.TabActive.Render(title)
	}
	return m.theme.TabInactive.Render(title)
}

func (m DashboardModel) renderStatusBar() string {
	var chips []string
	if m.filters.StartDate != "" || m.filters.EndDate != "" {
		chips = append(chips, m.theme.FilterChip.Render(
			m.filters.StartDate+" → "+m.filters.EndDate))
	}
	if m.filters.Model != "" {
		chips = append(chips, m.theme.FilterChip.Render("model:"+m.filters.Model))
	}
	if m.filters.Showroom != "" {
		chips = append(chips, m.theme.FilterChip.Render("showroom:"+m.filters.Showroom))
	}
	if m.filters.Channel != "" {
		chips = append(chips, m.theme.FilterChip.Render("channel:"+m.filters.Channel))
	}

	left := fmt.Sprintf(" %d records · %s ", len(m.memo.Records()), m.source)
	if m.status != "" {
		left += "· " + m.status + " "
	}

	bar := m.theme.StatusBar.Render(left)
	if len(chips) > 0 {
		bar = lipgloss.JoinHorizontal(lipgloss.Top,
			bar, " ", lipgloss.JoinHorizontal(lipgloss.Top, chips...))
	}
	hint := m.theme.Muted.Render(" ?: help")
	return bar + hint
}

// cycleModel advances the model filter through the catalog, wrapping back to
// unfiltered after the last entry.
func cycleModel(current string) string {
	names := make([]string, 0, len(model.CarModels))
	for _, c := range model.CarModels {
		names = append(names, c.Name)
	}
	return cycleValue(current, names)
}

func cycleShowroom(current string) string {
	names := make([]string, 0, len(model.Showrooms))
	for _, s := range model.Showrooms {
		names = append(names, s.Name)
	}
	return cycleValue(current, names)
}

func cycleChannel(current string) string {
	return cycleValue(current, model.LeadSources)
}

func cycleValue(current string, values []string) string {
	if len(values) == 0 {
		return ""
	}
	if current == "" {
		return values[0]
	}
	for i, v := range values {
		if v == current {
			if i == len(values)-1 {
				return ""
			}
			return values[i+1]
		}
	}
	return values[0]
}
