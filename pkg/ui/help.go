package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/vanderheijden86/driveline/pkg/debug"
)

const helpMarkdown = `# Test-drive viewer

## Tabs

| Key | Tab |
|-----|-----|
| ` + "`1`" + ` | Overview |
| ` + "`2`" + ` | Funnel |
| ` + "`3`" + ` | Showrooms |
| ` + "`4`" + ` | Demographics |
| ` + "`5`" + ` | Channels |
| ` + "`tab` / `shift+tab`" + ` | next / previous tab |

Custom tabs created with ` + "`--new-tab`" + ` follow the built-in ones.

## Filters

Global filters apply to every chart at once.

- ` + "`m`" + ` cycle model filter, ` + "`M`" + ` clear it
- ` + "`s`" + ` cycle showroom filter, ` + "`S`" + ` clear it
- ` + "`c`" + ` cycle channel filter, ` + "`C`" + ` clear it
- ` + "`x`" + ` clear all filters and selections

## Drill-down

Each chart has its own selection, toggled with ` + "`enter`" + `. Selecting
the same entity again clears it. Age group and gender are exclusive:
picking one clears the other.

## Other keys

- ` + "`j`/`k`" + ` move, ` + "`h`/`l`" + ` switch panes
- ` + "`y`" + ` copy the current tab as text to the clipboard
- ` + "`r`" + ` reload data from disk
- ` + "`?`" + ` toggle this help, ` + "`q`" + ` quit
`

// HelpModel is the scrollable help overlay, rendered once from markdown.
type HelpModel struct {
	viewport viewport.Model
	rendered string
	ready    bool
	theme    Theme
}

// NewHelpModel creates the help overlay.
func NewHelpModel(theme Theme) HelpModel {
	return HelpModel{theme: theme}
}

// SetSize resizes the overlay and lazily renders the markdown at the new
// width.
func (m *HelpModel) SetSize(width, height int) {
	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(contentWidth),
	)
	if err != nil {
		debug.Log("help renderer: %v", err)
		m.rendered = helpMarkdown
	} else {
		out, err := renderer.Render(helpMarkdown)
		if err != nil {
			debug.Log("help render: %v", err)
			out = helpMarkdown
		}
		m.rendered = out
	}

	if !m.ready {
		m.viewport = viewport.New(width-2, height-2)
		m.ready = true
	} else {
		m.viewport.Width = width - 2
		m.viewport.Height = height - 2
	}
	m.viewport.SetContent(m.rendered)
}

// Update scrolls the viewport.
func (m *HelpModel) Update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// View renders the overlay.
func (m HelpModel) View() string {
	if !m.ready {
		return ""
	}
	return PanelFocusStyle.Render(m.viewport.View())
}
