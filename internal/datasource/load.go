package datasource

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/vanderheijden86/driveline/pkg/model"
)

// LoadJSON reads a record set from a JSON array file.
func LoadJSON(path string) ([]model.TestDriveRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading records file: %w", err)
	}

	var records []model.TestDriveRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing records file %s: %w", path, err)
	}
	return records, nil
}

// SaveJSON writes a record set as an indented JSON array, so the file stays
// diffable and hand-editable.
func SaveJSON(path string, records []model.TestDriveRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing records file: %w", err)
	}
	return nil
}
