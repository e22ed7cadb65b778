package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vanderheijden86/driveline/pkg/analysis"
	"github.com/vanderheijden86/driveline/pkg/model"
	"github.com/vanderheijden86/driveline/pkg/testutil"
)

func TestRenderSVGToWriter(t *testing.T) {
	var b strings.Builder
	opts := ChartSnapshotOptions{
		Title:    "Sales funnel",
		Subtitle: "5 records",
		Rows: []chartRow{
			{Label: "request", Value: 5},
			{Label: "invoice", Value: 1},
		},
	}
	if err := renderSVGToWriter(&b, opts); err != nil {
		t.Fatalf("renderSVGToWriter: %v", err)
	}

	out := b.String()
	for _, want := range []string{"<svg", "</svg>", "Sales funnel", "request", "invoice"} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output should contain %q", want)
		}
	}
}

func TestRenderSVG_ZeroRows(t *testing.T) {
	var b strings.Builder
	if err := renderSVGToWriter(&b, ChartSnapshotOptions{Title: "Empty"}); err != nil {
		t.Fatalf("Zero rows should still render a valid chart: %v", err)
	}
	if !strings.Contains(b.String(), "</svg>") {
		t.Error("Output should be a closed SVG document")
	}
}

func TestRenderSVG_PerRowColor(t *testing.T) {
	var b strings.Builder
	opts := ChartSnapshotOptions{
		Title: "Channels",
		Rows: []chartRow{
			{Label: "Instagram", Value: 4, Color: "#E1306C"},
			{Label: "Walk-in", Value: 2},
		},
	}
	if err := renderSVGToWriter(&b, opts); err != nil {
		t.Fatalf("renderSVGToWriter: %v", err)
	}
	if !strings.Contains(b.String(), "fill:#E1306C") {
		t.Error("Row color should override the default bar fill")
	}
}

func TestHexColor(t *testing.T) {
	c, ok := hexColor("#e1306c")
	if !ok {
		t.Fatal("hexColor should parse a #rrggbb string")
	}
	if c.R != 0xe1 || c.G != 0x30 || c.B != 0x6c || c.A != 0xff {
		t.Errorf("hexColor = %+v", c)
	}
	for _, bad := range []string{"", "e1306c", "#fff", "#zzzzzz"} {
		if _, ok := hexColor(bad); ok {
			t.Errorf("hexColor(%q) should not parse", bad)
		}
	}
}

func TestSaveChartSnapshot_FormatInference(t *testing.T) {
	dir := t.TempDir()
	opts := ChartSnapshotOptions{
		Title: "Models",
		Rows:  []chartRow{{Label: "RX350", Value: 3}},
	}

	opts.Path = filepath.Join(dir, "chart.svg")
	if err := SaveChartSnapshot(opts); err != nil {
		t.Fatalf("SVG by extension: %v", err)
	}
	opts.Path = filepath.Join(dir, "chart.png")
	if err := SaveChartSnapshot(opts); err != nil {
		t.Fatalf("PNG by extension: %v", err)
	}

	opts.Path = filepath.Join(dir, "chart.bmp")
	if err := SaveChartSnapshot(opts); err == nil {
		t.Error("Unsupported extension should error")
	}
}

func TestSaveAllSnapshots(t *testing.T) {
	memo := analysis.NewMemo(testutil.Batch(10))
	dir := filepath.Join(t.TempDir(), "charts")

	if err := SaveAllSnapshots(dir, BuildReport(memo, model.GlobalFilters{})); err != nil {
		t.Fatalf("SaveAllSnapshots: %v", err)
	}

	for _, name := range []string{
		"funnel.svg", "funnel.png",
		"channels.svg", "channels.png",
		"models.svg", "models.png",
	} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("Missing snapshot %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("Snapshot %s is empty", name)
		}
	}
}
