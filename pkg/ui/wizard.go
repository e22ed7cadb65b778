package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/vanderheijden86/driveline/pkg/config"
)

// isTerminal reports whether stdin is connected to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// RunTabWizard walks the user through creating a custom tab layout and
// returns it. The caller persists the result and adds the tab to the
// dashboard. Requires an interactive terminal.
func RunTabWizard(existing []config.TabLayout) (config.TabLayout, error) {
	if !isTerminal() {
		return config.TabLayout{}, fmt.Errorf("creating a tab requires an interactive terminal")
	}

	var label, template string

	options := make([]huh.Option[string], 0, len(config.LayoutTemplates))
	for _, t := range config.LayoutTemplates {
		options = append(options, huh.NewOption(templateDescription(t), t))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Tab name").
				Description("Shown in the tab bar").
				Value(&label).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return fmt.Errorf("name cannot be empty")
					}
					for _, l := range existing {
						if strings.EqualFold(l.Label, s) {
							return fmt.Errorf("a tab named %q already exists", l.Label)
						}
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Layout").
				Options(options...).
				Value(&template),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return config.TabLayout{}, err
	}

	label = strings.TrimSpace(label)
	return config.TabLayout{
		ID:       layoutID(label),
		Label:    label,
		Template: template,
	}, nil
}

func templateDescription(template string) string {
	switch template {
	case "grid-2x2":
		return "Grid: summary, funnel, models, channels"
	case "focus-funnel":
		return "Funnel with channel bars"
	case "focus-leaderboard":
		return "Showroom leaderboard with summary"
	default:
		return "Single chart: daily trend"
	}
}

// layoutID derives a stable-enough identifier from the label plus a
// timestamp, so renaming and re-adding never collides.
func layoutID(label string) string {
	slug := strings.ToLower(label)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		}
		return -1
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "tab"
	}
	return fmt.Sprintf("%s-%d", slug, time.Now().Unix())
}
