package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/driveline/internal/datasource"
	"github.com/vanderheijden86/driveline/pkg/analysis"
	"github.com/vanderheijden86/driveline/pkg/config"
	"github.com/vanderheijden86/driveline/pkg/debug"
	"github.com/vanderheijden86/driveline/pkg/export"
	"github.com/vanderheijden86/driveline/pkg/model"
	"github.com/vanderheijden86/driveline/pkg/ui"
	"github.com/vanderheijden86/driveline/pkg/version"
	"github.com/vanderheijden86/driveline/pkg/watcher"
)

func main() {
	recordsPath := flag.String("records", "", "JSON records file (overrides config)")
	snapshotPath := flag.String("snapshot", "", "SQLite snapshot file (overrides config)")
	seed := flag.Int64("seed", 0, "Generator seed when no data file exists (0 = default)")
	reportPath := flag.String("report", "", "Write an aggregate report (.json or .txt) and exit")
	snapshotDir := flag.String("snapshot-dir", "", "Render chart snapshots (SVG + PNG) into a directory and exit")
	writeSnapshot := flag.String("write-snapshot", "", "Write the loaded records to a SQLite snapshot and exit")
	newTab := flag.Bool("new-tab", false, "Create a custom dashboard tab interactively")
	noWatch := flag.Bool("no-watch", false, "Disable live reload of the data file")
	versionFlag := flag.Bool("version", false, "Show version")
	helpFlag := flag.Bool("help", false, "Show help")

	fromDate := flag.String("from", "", "Start date filter (YYYY-MM-DD, inclusive)")
	toDate := flag.String("to", "", "End date filter (YYYY-MM-DD, inclusive)")
	modelFilter := flag.String("model", "", "Car model filter")
	showroomFilter := flag.String("showroom", "", "Showroom filter")
	channelFilter := flag.String("channel", "", "Lead channel filter")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("tdv %s\n", version.Version)
		return
	}
	if *helpFlag {
		fmt.Println("Usage: tdv [options]")
		fmt.Println("\nA terminal dashboard for test-drive program analytics.")
		flag.PrintDefaults()
		return
	}

	if *newTab {
		if err := createTab(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	if *recordsPath != "" {
		cfg.Data.RecordsPath = *recordsPath
	}
	if *snapshotPath != "" {
		cfg.Data.SnapshotPath = *snapshotPath
	}
	if *seed != 0 {
		cfg.Data.Seed = *seed
	}

	src := datasource.Discover(cfg.Data.SnapshotPath, cfg.Data.RecordsPath, cfg.Data.Seed)
	records, err := datasource.Load(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		os.Exit(1)
	}
	debug.Log("loaded %d records from %s", len(records), src)

	filters := model.GlobalFilters{
		StartDate: *fromDate,
		EndDate:   *toDate,
		Model:     *modelFilter,
		Showroom:  *showroomFilter,
		Channel:   *channelFilter,
	}
	if filters.StartDate == "" && filters.EndDate == "" && cfg.UI.DefaultDateDays > 0 {
		filters.StartDate, filters.EndDate = defaultWindow(records, cfg.UI.DefaultDateDays)
	}

	memo := analysis.NewMemo(records)

	if *writeSnapshot != "" {
		if err := datasource.WriteSnapshot(*writeSnapshot, records); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d records to %s\n", len(records), *writeSnapshot)
		return
	}

	if *reportPath != "" || *snapshotDir != "" {
		report := export.BuildReport(memo, filters)
		if *reportPath != "" {
			if err := export.WriteReport(report, *reportPath); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Wrote report to %s\n", *reportPath)
		}
		if *snapshotDir != "" {
			if err := export.SaveAllSnapshots(*snapshotDir, report); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Wrote chart snapshots to %s\n", *snapshotDir)
		}
		return
	}

	dashboard := ui.NewDashboard(memo,
		ui.WithFilters(filters),
		ui.WithSource(src.String()),
		ui.WithCustomTabs(config.LoadLayouts()),
		ui.WithInitialTab(cfg.UI.DefaultTab),
		ui.WithReload(func() ([]model.TestDriveRecord, error) {
			return datasource.Load(src)
		}),
	)

	p := tea.NewProgram(dashboard, tea.WithAltScreen())

	if src.Path != "" && cfg.Data.Watch && !*noWatch {
		w, err := watcher.New(src.Path, func() {
			fresh, err := datasource.Load(src)
			if err != nil {
				debug.Log("reload after change: %v", err)
				return
			}
			p.Send(ui.DataReloadedMsg{Records: fresh})
		}, watcher.WithOnError(func(err error) {
			debug.Log("watcher: %v", err)
		}))
		if err != nil {
			debug.Log("watch %s: %v", src.Path, err)
		} else if err := w.Start(); err != nil {
			debug.Log("watch %s: %v", src.Path, err)
		} else {
			defer w.Stop()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// createTab runs the custom-tab wizard and persists the result.
func createTab() error {
	existing := config.LoadLayouts()
	layout, err := ui.RunTabWizard(existing)
	if err != nil {
		return err
	}
	if err := config.SaveLayouts(append(existing, layout)); err != nil {
		return err
	}
	fmt.Printf("Created tab %q (%s)\n", layout.Label, layout.Template)
	return nil
}

// defaultWindow derives the initial date filter from the data: the last n
// days ending at the newest record date. Falls back to unconstrained when no
// date parses.
func defaultWindow(records []model.TestDriveRecord, days int) (string, string) {
	var maxDate string
	for _, r := range records {
		if r.Date > maxDate {
			maxDate = r.Date
		}
	}
	end, err := time.Parse("2006-01-02", maxDate)
	if err != nil {
		return "", ""
	}
	start := end.AddDate(0, 0, -(days - 1))
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}
