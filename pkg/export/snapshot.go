package export

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~sbinet/gg"
	"github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/sync/errgroup"

	"github.com/vanderheijden86/driveline/pkg/model"
)

// Snapshot palette, shared by PNG and SVG output.
var (
	colorBackdrop = color.RGBA{R: 0x1e, G: 0x1f, B: 0x29, A: 0xff}
	colorBar      = color.RGBA{R: 0x8b, G: 0xe9, B: 0xfd, A: 0xff}
	colorBarAlt   = color.RGBA{R: 0x50, G: 0xfa, B: 0x7b, A: 0xff}
	colorText     = color.RGBA{R: 0xf8, G: 0xf8, B: 0xf2, A: 0xff}
	colorSubtle   = color.RGBA{R: 0x62, G: 0x72, B: 0xa4, A: 0xff}
)

const (
	chartWidth   = 720
	chartRowH    = 34
	chartHeader  = 64
	chartPadding = 24
	labelWidth   = 170
	valueWidth   = 70
)

// chartRow is one horizontal bar in a snapshot chart. Color, when set,
// overrides the chart-level bar color for this row ("#rrggbb").
type chartRow struct {
	Label string
	Value int
	Color string
}

// ChartSnapshotOptions controls a single chart render.
type ChartSnapshotOptions struct {
	Path     string // Output path; format inferred from extension when Format empty
	Format   string // "svg" or "png" (case-insensitive)
	Title    string
	Subtitle string
	Rows     []chartRow
	Accent   bool // use the alternate bar color
}

// SaveChartSnapshot renders one horizontal bar chart to disk.
func SaveChartSnapshot(opts ChartSnapshotOptions) error {
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.Path)), ".")
	}
	switch format {
	case "svg":
		return renderSVG(opts)
	case "png":
		return renderPNG(opts)
	default:
		return fmt.Errorf("unsupported snapshot format %q (want svg or png)", format)
	}
}

func chartHeight(rows int) int {
	return chartHeader + rows*chartRowH + chartPadding
}

func maxRowValue(rows []chartRow) int {
	maxVal := 0
	for _, r := range rows {
		if r.Value > maxVal {
			maxVal = r.Value
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}
	return maxVal
}

func renderPNG(opts ChartSnapshotOptions) error {
	height := chartHeight(len(opts.Rows))
	dc := gg.NewContext(chartWidth, height)
	dc.SetColor(colorBackdrop)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(colorText)
	dc.DrawString(opts.Title, chartPadding, 28)
	if opts.Subtitle != "" {
		dc.SetColor(colorSubtle)
		dc.DrawString(opts.Subtitle, chartPadding, 46)
	}

	barColor := colorBar
	if opts.Accent {
		barColor = colorBarAlt
	}
	maxVal := maxRowValue(opts.Rows)
	barSpan := float64(chartWidth - labelWidth - valueWidth - 2*chartPadding)

	for i, row := range opts.Rows {
		y := float64(chartHeader + i*chartRowH)

		dc.SetColor(colorText)
		dc.DrawString(snapshotTruncate(row.Label, 22), chartPadding, y+18)

		w := barSpan * float64(row.Value) / float64(maxVal)
		rowColor := barColor
		if c, ok := hexColor(row.Color); ok {
			rowColor = c
		}
		dc.SetColor(rowColor)
		dc.DrawRoundedRectangle(float64(chartPadding+labelWidth), y+4, w, chartRowH-12, 4)
		dc.Fill()

		dc.SetColor(colorSubtle)
		dc.DrawString(fmt.Sprintf("%d", row.Value),
			float64(chartPadding+labelWidth)+w+8, y+18)
	}

	return dc.SavePNG(opts.Path)
}

func renderSVG(opts ChartSnapshotOptions) error {
	file, err := os.Create(opts.Path)
	if err != nil {
		return err
	}
	defer file.Close()
	return renderSVGToWriter(file, opts)
}

func renderSVGToWriter(w io.Writer, opts ChartSnapshotOptions) error {
	height := chartHeight(len(opts.Rows))
	canvas := svg.New(w)
	canvas.Start(chartWidth, height)
	canvas.Rect(0, 0, chartWidth, height, "fill:"+css(colorBackdrop))

	canvas.Text(chartPadding, 28, opts.Title,
		fmt.Sprintf("fill:%s;font-size:15px;font-family:monospace;font-weight:bold", css(colorText)))
	if opts.Subtitle != "" {
		canvas.Text(chartPadding, 46, opts.Subtitle,
			fmt.Sprintf("fill:%s;font-size:12px;font-family:monospace", css(colorSubtle)))
	}

	barColor := colorBar
	if opts.Accent {
		barColor = colorBarAlt
	}
	maxVal := maxRowValue(opts.Rows)
	barSpan := chartWidth - labelWidth - valueWidth - 2*chartPadding

	for i, row := range opts.Rows {
		y := chartHeader + i*chartRowH

		canvas.Text(chartPadding, y+18, snapshotTruncate(row.Label, 22),
			fmt.Sprintf("fill:%s;font-size:13px;font-family:monospace", css(colorText)))

		w := barSpan * row.Value / maxVal
		fill := css(barColor)
		if _, ok := hexColor(row.Color); ok {
			fill = row.Color
		}
		canvas.Roundrect(chartPadding+labelWidth, y+4, w, chartRowH-12, 4, 4,
			"fill:"+fill)

		canvas.Text(chartPadding+labelWidth+w+8, y+18, fmt.Sprintf("%d", row.Value),
			fmt.Sprintf("fill:%s;font-size:12px;font-family:monospace", css(colorSubtle)))
	}

	canvas.End()
	return nil
}

// SaveAllSnapshots renders the standard chart set into dir, one SVG and one
// PNG per chart, concurrently.
func SaveAllSnapshots(dir string, r Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot dir: %w", err)
	}

	funnelRows := make([]chartRow, 0, len(r.Funnel.Overall))
	for _, s := range r.Funnel.Overall {
		funnelRows = append(funnelRows, chartRow{Label: string(s.Name), Value: s.Value})
	}
	channelRows := make([]chartRow, 0, len(r.Channels))
	for _, c := range r.Channels {
		channelRows = append(channelRows, chartRow{
			Label: c.Source,
			Value: c.Leads,
			Color: model.ChannelColors[c.Source],
		})
	}
	modelRows := make([]chartRow, 0, len(r.Models))
	for _, m := range r.Models {
		modelRows = append(modelRows, chartRow{Label: m.Model, Value: m.TestDrives})
	}

	subtitle := fmt.Sprintf("%d records · %s", r.RecordCount, r.GeneratedAt)
	charts := []ChartSnapshotOptions{
		{Title: "Sales funnel", Subtitle: subtitle, Rows: funnelRows},
		{Title: "Leads by channel", Subtitle: subtitle, Rows: channelRows, Accent: true},
		{Title: "Test drives by model", Subtitle: subtitle, Rows: modelRows},
	}
	names := []string{"funnel", "channels", "models"}

	var g errgroup.Group
	for i := range charts {
		for _, format := range []string{"svg", "png"} {
			opts := charts[i]
			opts.Format = format
			opts.Path = filepath.Join(dir, names[i]+"."+format)
			g.Go(func() error {
				return SaveChartSnapshot(opts)
			})
		}
	}
	return g.Wait()
}

func snapshotTruncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// hexColor parses "#rrggbb"; ok is false for anything else.
func hexColor(s string) (color.RGBA, bool) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil || len(s) != 7 {
		return color.RGBA{}, false
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
}
