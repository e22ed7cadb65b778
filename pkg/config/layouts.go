package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/vanderheijden86/driveline/pkg/debug"
)

// layoutsFileName is the single state file holding every custom tab.
const layoutsFileName = "tab_layouts.json"

// TabLayout is one user-defined dashboard tab: a label plus the layout
// template that decides which charts it shows.
type TabLayout struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Template string `json:"template"` // grid-2x2, focus-funnel, focus-leaderboard, single
}

// LayoutTemplates lists the available layout templates in wizard order.
var LayoutTemplates = []string{
	"grid-2x2",
	"focus-funnel",
	"focus-leaderboard",
	"single",
}

// LayoutsPath returns the full path to the layouts state file.
func LayoutsPath() string {
	dir := StateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, layoutsFileName)
}

// LoadLayouts reads the saved custom tabs. Any failure (missing file,
// unreadable file, corrupt JSON) degrades to an empty list; persistence
// problems must never take the dashboard down.
func LoadLayouts() []TabLayout {
	return LoadLayoutsFrom(LayoutsPath())
}

// LoadLayoutsFrom reads custom tabs from a specific path.
func LoadLayoutsFrom(path string) []TabLayout {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			debug.Log("reading tab layouts: %v", err)
		}
		return nil
	}

	var layouts []TabLayout
	if err := json.Unmarshal(data, &layouts); err != nil {
		debug.Log("corrupt tab layouts file %s: %v", path, err)
		return nil
	}
	return layouts
}

// SaveLayouts writes the custom tabs to the state directory.
func SaveLayouts(layouts []TabLayout) error {
	return SaveLayoutsTo(LayoutsPath(), layouts)
}

// SaveLayoutsTo writes custom tabs to a specific path.
func SaveLayoutsTo(path string, layouts []TabLayout) error {
	if path == "" {
		return fmt.Errorf("cannot determine state directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	if layouts == nil {
		layouts = []TabLayout{}
	}
	data, err := json.MarshalIndent(layouts, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling tab layouts: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing tab layouts: %w", err)
	}
	return nil
}
