// Package export renders aggregate reports and static chart snapshots
// without starting the TUI.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/vanderheijden86/driveline/pkg/analysis"
	"github.com/vanderheijden86/driveline/pkg/model"
	"github.com/vanderheijden86/driveline/pkg/version"
)

// Report bundles every aggregate for one filter set, plus provenance.
type Report struct {
	GeneratedAt string              `json:"generated_at"`
	Version     string              `json:"version"`
	DataHash    string              `json:"data_hash"`
	Filters     model.GlobalFilters `json:"filters"`
	RecordCount int                 `json:"record_count"`

	Summary     analysis.SummaryStats          `json:"summary"`
	Completion  analysis.CompletionStats       `json:"completion"`
	Occurrence  analysis.OccurrenceBreakdown   `json:"occurrence"`
	Daily       []analysis.DatePoint           `json:"test_drives_by_date"`
	Monthly     []analysis.MonthPoint          `json:"test_drives_by_month"`
	Weekdays    []analysis.WeekdayCount        `json:"weekday_profile"`
	Models      []analysis.ModelCount          `json:"popular_models"`
	Durations   []analysis.ModelDuration       `json:"duration_by_model"`
	Channels    []analysis.ChannelPerformance  `json:"channel_performance"`
	Ages        []analysis.AgeGroupCount       `json:"age_distribution"`
	Genders     []analysis.GenderCount         `json:"gender_distribution"`
	Showrooms   []analysis.ShowroomStanding    `json:"showroom_leaderboard"`
	Consultants []analysis.ConsultantStanding  `json:"consultant_leaderboard"`
	Timing      []analysis.ShowroomTiming      `json:"time_to_test_drive"`
	Funnel      analysis.Funnel                `json:"sales_funnel"`
}

// BuildReport computes the full aggregate set through the memo.
func BuildReport(memo *analysis.Memo, f model.GlobalFilters) Report {
	return Report{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Version:     version.Version,
		DataHash:    memo.DataHash(),
		Filters:     f,
		RecordCount: len(memo.Filtered(f)),

		Summary:     memo.Summary(f),
		Completion:  memo.Completion(f),
		Occurrence:  memo.Occurrence(f),
		Daily:       memo.TestDrivesByDate(f),
		Monthly:     memo.TestDrivesByMonth(f),
		Weekdays:    memo.WeekdayProfile(f),
		Models:      memo.PopularModels(f),
		Durations:   memo.DurationByModel(f),
		Channels:    memo.ChannelPerformance(f),
		Ages:        memo.AgeDistribution(f),
		Genders:     memo.GenderDistribution(f),
		Showrooms:   memo.ShowroomLeaderboard(f),
		Consultants: memo.ConsultantLeaderboard(f),
		Timing:      memo.TimeToTestDrive(f),
		Funnel:      memo.SalesFunnel(f),
	}
}

// WriteReport writes the report to path. The format is inferred from the
// extension: .json, or anything else as plain text.
func WriteReport(r Report, path string) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		data = append(data, '\n')
	} else {
		data = []byte(FormatText(r))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// FormatText renders the report as a plain-text summary.
func FormatText(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Test-drive report · %s · %d records\n", r.GeneratedAt, r.RecordCount)
	if !r.Filters.IsZero() {
		b.WriteString("Filters:")
		if r.Filters.StartDate != "" || r.Filters.EndDate != "" {
			fmt.Fprintf(&b, " dates=%s..%s", r.Filters.StartDate, r.Filters.EndDate)
		}
		if r.Filters.Model != "" {
			fmt.Fprintf(&b, " model=%s", r.Filters.Model)
		}
		if r.Filters.Showroom != "" {
			fmt.Fprintf(&b, " showroom=%s", r.Filters.Showroom)
		}
		if r.Filters.Channel != "" {
			fmt.Fprintf(&b, " channel=%s", r.Filters.Channel)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Summary\n")
	fmt.Fprintf(&b, "  leads        %6d\n", r.Summary.TotalLeads)
	fmt.Fprintf(&b, "  test drives  %6d\n", r.Summary.TestDrives)
	fmt.Fprintf(&b, "  sales        %6d\n", r.Summary.Sales)
	fmt.Fprintf(&b, "  completion   %5.1f%%\n", r.Summary.CompletionRate)
	fmt.Fprintf(&b, "  conversion   %5.1f%%\n", r.Summary.ConversionRate)
	fmt.Fprintf(&b, "  show rate    %5.1f%%\n", r.Occurrence.ShowRate)
	b.WriteString("\n")

	fmt.Fprintf(&b, "Funnel\n")
	for _, s := range r.Funnel.Overall {
		fmt.Fprintf(&b, "  %-10s %6d\n", s.Name, s.Value)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Models\n")
	for _, m := range r.Models {
		fmt.Fprintf(&b, "  %-8s %-12s %6d\n", m.Model, m.Type, m.TestDrives)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Channels\n")
	for _, c := range r.Channels {
		fmt.Fprintf(&b, "  %-16s leads=%-5d drives=%-5d conv=%5.1f%%\n",
			c.Source, c.Leads, c.TestDrives, c.Conversion)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Showrooms\n")
	for _, s := range r.Showrooms {
		fmt.Fprintf(&b, "  %-14s drives=%-5d sales=%-5d conv=%5.1f%%\n",
			s.Showroom, s.TestDrives, s.Conversions, s.ConversionRate)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Consultants\n")
	for _, c := range r.Consultants {
		fmt.Fprintf(&b, "  %-18s %-14s drives=%-5d conv=%5.1f%%\n",
			c.Consultant, c.Showroom, c.TestDrives, c.ConversionRate)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Demographics\n")
	for _, a := range r.Ages {
		fmt.Fprintf(&b, "  %-6s %6d  %5.1f%%\n", a.AgeGroup, a.Count, a.Percentage)
	}
	for _, g := range r.Genders {
		fmt.Fprintf(&b, "  %-6s %6d  %5.1f%%\n", g.Gender, g.Count, g.Percentage)
	}

	return b.String()
}
