package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/driveline/pkg/analysis"
	"github.com/vanderheijden86/driveline/pkg/config"
	"github.com/vanderheijden86/driveline/pkg/model"
	"github.com/vanderheijden86/driveline/pkg/testutil"
)

func newTestDashboard(t *testing.T, opts ...DashboardOption) DashboardModel {
	t.Helper()
	memo := analysis.NewMemo(testutil.Batch(20))
	m := NewDashboard(memo, opts...)
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return sized.(DashboardModel)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(m DashboardModel, keys ...string) DashboardModel {
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		m = updated.(DashboardModel)
	}
	return m
}

func TestDashboard_TabSwitching(t *testing.T) {
	m := newTestDashboard(t)
	if m.activeTab != tabOverview {
		t.Fatalf("Initial tab = %d, want overview", m.activeTab)
	}

	m = press(m, "tab")
	if m.activeTab != tabFunnel {
		t.Errorf("After tab: %d, want funnel", m.activeTab)
	}

	m = press(m, "shift+tab")
	if m.activeTab != tabOverview {
		t.Errorf("After shift+tab: %d, want overview", m.activeTab)
	}

	m = press(m, "shift+tab")
	if m.activeTab != tabChannels {
		t.Errorf("shift+tab should wrap to the last tab, got %d", m.activeTab)
	}

	m = press(m, "3")
	if m.activeTab != tabShowrooms {
		t.Errorf("Digit key should jump to the tab, got %d", m.activeTab)
	}

	m = press(m, "9")
	if m.activeTab != tabShowrooms {
		t.Errorf("Out-of-range digit should be ignored, got %d", m.activeTab)
	}
}

func TestDashboard_InitialTabByName(t *testing.T) {
	m := newTestDashboard(t, WithInitialTab("funnel"))
	if m.activeTab != tabFunnel {
		t.Errorf("Initial tab = %d, want funnel", m.activeTab)
	}
}

func TestDashboard_FilterCycling(t *testing.T) {
	m := newTestDashboard(t)

	m = press(m, "m")
	if m.filters.Model != model.CarModels[0].Name {
		t.Errorf("First cycle = %q, want %q", m.filters.Model, model.CarModels[0].Name)
	}

	m = press(m, "m")
	if m.filters.Model != model.CarModels[1].Name {
		t.Errorf("Second cycle = %q, want %q", m.filters.Model, model.CarModels[1].Name)
	}

	m = press(m, "M")
	if m.filters.Model != "" {
		t.Errorf("Clear key should empty the filter, got %q", m.filters.Model)
	}
}

func TestDashboard_CycleWrapsToUnfiltered(t *testing.T) {
	last := model.LeadSources[len(model.LeadSources)-1]
	if got := cycleValue(last, model.LeadSources); got != "" {
		t.Errorf("Cycling past the last value should return unfiltered, got %q", got)
	}
	if got := cycleValue("", model.LeadSources); got != model.LeadSources[0] {
		t.Errorf("Cycling from unfiltered should return the first value, got %q", got)
	}
	if got := cycleValue("not-in-list", model.LeadSources); got != model.LeadSources[0] {
		t.Errorf("Cycling from an unknown value should restart, got %q", got)
	}
}

func TestDashboard_SetFiltersReplacesWholesale(t *testing.T) {
	m := newTestDashboard(t, WithFilters(model.GlobalFilters{Model: "RX350", Showroom: "Downtown"}))

	m.SetFilters(model.GlobalFilters{Channel: "Referral"})
	if m.filters.Model != "" || m.filters.Showroom != "" || m.filters.Channel != "Referral" {
		t.Errorf("SetFilters must replace the whole value, got %+v", m.filters)
	}
}

func TestDashboard_ClearAll(t *testing.T) {
	m := newTestDashboard(t, WithFilters(model.GlobalFilters{Model: "RX350"}))
	m.selections.ToggleLeadSource("Instagram")

	m = press(m, "x")
	if !m.filters.IsZero() {
		t.Errorf("Clear-all should zero the filters, got %+v", m.filters)
	}
	if m.selections != (Selections{}) {
		t.Errorf("Clear-all should zero the selections, got %+v", m.selections)
	}
}

func TestDashboard_FunnelSelectionToggle(t *testing.T) {
	m := newTestDashboard(t)
	m = press(m, "2") // funnel tab

	m = press(m, "enter")
	first := model.LeadSources[0]
	if m.selections.LeadSource != first {
		t.Errorf("Enter should select the source under the cursor, got %q", m.selections.LeadSource)
	}

	m = press(m, "enter")
	if m.selections.LeadSource != "" {
		t.Errorf("Enter again should clear the selection, got %q", m.selections.LeadSource)
	}
}

func TestDashboard_DataReloaded(t *testing.T) {
	m := newTestDashboard(t)
	updated, _ := m.Update(DataReloadedMsg{Records: testutil.Batch(5)})
	m = updated.(DashboardModel)

	if n := len(m.memo.Records()); n != 5 {
		t.Errorf("Record store = %d, want 5", n)
	}
	if !strings.Contains(m.status, "5") {
		t.Errorf("Status should mention the new record count, got %q", m.status)
	}
}

func TestDashboard_ResizeKeepsAggregates(t *testing.T) {
	m := newTestDashboard(t)
	_, before := m.memo.Stats()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(DashboardModel)
	_, after := m.memo.Stats()

	if after != before {
		t.Errorf("Resize must not recompute aggregates: misses %d -> %d", before, after)
	}
	if m.width != 80 || m.height != 24 {
		t.Errorf("Size = %dx%d, want 80x24", m.width, m.height)
	}
}

func TestDashboard_ViewRendersTabs(t *testing.T) {
	m := newTestDashboard(t, WithCustomTabs([]config.TabLayout{
		{ID: "mine-1", Label: "Mine", Template: "single"},
	}))

	view := m.View()
	for _, label := range []string{"Overview", "Funnel", "Mine"} {
		if !strings.Contains(view, label) {
			t.Errorf("Tab bar should contain %q", label)
		}
	}

	m = press(m, "6")
	if m.activeTab != tabFixedCount {
		t.Errorf("Digit 6 should reach the first custom tab, got %d", m.activeTab)
	}
	if m.View() == "" {
		t.Error("Custom tab should render")
	}
}

func TestDashboard_HelpOverlay(t *testing.T) {
	m := newTestDashboard(t)
	m = press(m, "?")
	if !m.showHelp {
		t.Fatal("? should open the help overlay")
	}
	m = press(m, "?")
	if m.showHelp {
		t.Error("? should close the help overlay")
	}
}
