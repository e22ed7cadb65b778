// Package datasource resolves where the test-drive record set comes from:
// a SQLite snapshot, a JSON records file, or the seeded in-process generator.
// Discovery prefers the freshest valid on-disk source and falls back to
// generation, so tdv always starts with a populated store.
package datasource

import (
	"fmt"
	"os"
	"time"

	"github.com/vanderheijden86/driveline/pkg/model"
)

// SourceType identifies the type of record source.
type SourceType string

const (
	// SourceTypeSQLite is a snapshot database (drives.db).
	SourceTypeSQLite SourceType = "sqlite"
	// SourceTypeJSON is a JSON records file (drives.json).
	SourceTypeJSON SourceType = "json"
	// SourceTypeGenerated is the seeded in-process generator.
	SourceTypeGenerated SourceType = "generated"
)

// Priority values for source types (higher = more authoritative).
const (
	prioritySQLite = 100
	priorityJSON   = 80
)

// Source represents a resolved record source.
type Source struct {
	Type    SourceType `json:"type"`
	Path    string     `json:"path,omitempty"`
	ModTime time.Time  `json:"mod_time,omitempty"`
	// Seed is set for generated sources.
	Seed int64 `json:"seed,omitempty"`
}

// String returns a human-readable description of the source.
func (s Source) String() string {
	switch s.Type {
	case SourceTypeGenerated:
		return fmt.Sprintf("generated (seed=%d)", s.Seed)
	default:
		return fmt.Sprintf("%s (%s)", s.Path, s.Type)
	}
}

// Discover picks the record source. Explicit paths win; otherwise the
// freshest existing candidate file is used, with SQLite preferred on equal
// timestamps; otherwise the generator.
func Discover(sqlitePath, jsonPath string, seed int64) Source {
	type candidate struct {
		src      Source
		priority int
	}
	var candidates []candidate

	if sqlitePath != "" {
		if info, err := os.Stat(sqlitePath); err == nil && !info.IsDir() {
			candidates = append(candidates, candidate{
				src:      Source{Type: SourceTypeSQLite, Path: sqlitePath, ModTime: info.ModTime()},
				priority: prioritySQLite,
			})
		}
	}
	if jsonPath != "" {
		if info, err := os.Stat(jsonPath); err == nil && !info.IsDir() {
			candidates = append(candidates, candidate{
				src:      Source{Type: SourceTypeJSON, Path: jsonPath, ModTime: info.ModTime()},
				priority: priorityJSON,
			})
		}
	}

	best := -1
	for i, c := range candidates {
		if best < 0 {
			best = i
			continue
		}
		b := candidates[best]
		if c.src.ModTime.After(b.src.ModTime) ||
			(c.src.ModTime.Equal(b.src.ModTime) && c.priority > b.priority) {
			best = i
		}
	}
	if best >= 0 {
		return candidates[best].src
	}
	return Source{Type: SourceTypeGenerated, Seed: seed}
}

// Load reads the record set from the source.
func Load(src Source) ([]model.TestDriveRecord, error) {
	switch src.Type {
	case SourceTypeSQLite:
		return ReadSnapshot(src.Path)
	case SourceTypeJSON:
		return LoadJSON(src.Path)
	case SourceTypeGenerated:
		cfg := DefaultGeneratorConfig()
		if src.Seed != 0 {
			cfg.Seed = src.Seed
		}
		return Generate(cfg), nil
	default:
		return nil, fmt.Errorf("unknown source type %q", src.Type)
	}
}
