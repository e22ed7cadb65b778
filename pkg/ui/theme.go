package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the pre-computed styles every view renders with. Styles are
// created once at startup instead of per-frame.
type Theme struct {
	Renderer *lipgloss.Renderer

	Base     lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Good     lipgloss.Style
	Warn     lipgloss.Style
	Bad      lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	StatusBar   lipgloss.Style
	FilterChip  lipgloss.Style
}

// DefaultTheme returns the standard adaptive theme.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Renderer: r,

		Base:     r.NewStyle().Foreground(ColorText),
		Header:   r.NewStyle().Foreground(ColorPrimary).Bold(true),
		Selected: r.NewStyle().Foreground(ColorText).Background(ColorBgHighlight).Bold(true),
		Muted:    r.NewStyle().Foreground(ColorMuted),
		Accent:   r.NewStyle().Foreground(ColorInfo),
		Good:     r.NewStyle().Foreground(ColorSuccess),
		Warn:     r.NewStyle().Foreground(ColorWarning),
		Bad:      r.NewStyle().Foreground(ColorDanger),

		TabActive: r.NewStyle().Foreground(ColorPrimary).Bold(true).
			Padding(0, SpaceXS).Underline(true),
		TabInactive: r.NewStyle().Foreground(ColorSubtext).Padding(0, SpaceXS),
		StatusBar:   r.NewStyle().Foreground(ColorSubtext).Background(ColorBgSubtle),
		FilterChip:  r.NewStyle().Foreground(ColorBg).Background(ColorPrimary).Padding(0, 1),
	}
}
