package datasource

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/vanderheijden86/driveline/pkg/model"
)

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS test_drives (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	model TEXT NOT NULL,
	model_type TEXT NOT NULL,
	showroom TEXT NOT NULL,
	channel TEXT NOT NULL,
	sales_consultant TEXT NOT NULL,
	completed INTEGER NOT NULL,
	converted_to_sale INTEGER NOT NULL,
	occurrence TEXT NOT NULL,
	funnel_stage TEXT NOT NULL,
	customer_age INTEGER NOT NULL,
	customer_gender TEXT NOT NULL,
	duration_minutes INTEGER NOT NULL,
	time_to_test_drive_days INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_test_drives_date ON test_drives(date);
`

// WriteSnapshot replaces the snapshot database at path with the given record
// set. The whole write runs in one transaction so readers never observe a
// half-written snapshot.
func WriteSnapshot(path string, records []model.TestDriveRecord) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening snapshot: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(snapshotSchema); err != nil {
		return fmt.Errorf("creating snapshot schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM test_drives`); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO test_drives (
			date, model, model_type, showroom, channel, sales_consultant,
			completed, converted_to_sale, occurrence, funnel_stage,
			customer_age, customer_gender, duration_minutes, time_to_test_drive_days
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing snapshot insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.Date, r.Model, string(r.ModelType), r.Showroom, r.Channel, r.SalesConsultant,
			boolToInt(r.Completed), boolToInt(r.ConvertedToSale), string(r.Occurrence), string(r.FunnelStage),
			r.CustomerAge, string(r.CustomerGender), r.DurationMinutes, r.TimeToTestDriveDays,
		)
		if err != nil {
			return fmt.Errorf("inserting record: %w", err)
		}
	}

	return tx.Commit()
}

// ReadSnapshot loads the record set from a snapshot database, in insertion
// order so the store keeps the order it was written with.
func ReadSnapshot(path string) ([]model.TestDriveRecord, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT date, model, model_type, showroom, channel, sales_consultant,
			completed, converted_to_sale, occurrence, funnel_stage,
			customer_age, customer_gender, duration_minutes, time_to_test_drive_days
		FROM test_drives ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying snapshot: %w", err)
	}
	defer rows.Close()

	var records []model.TestDriveRecord
	for rows.Next() {
		var r model.TestDriveRecord
		var modelType, occurrence, stage, gender string
		var completed, converted int
		err := rows.Scan(
			&r.Date, &r.Model, &modelType, &r.Showroom, &r.Channel, &r.SalesConsultant,
			&completed, &converted, &occurrence, &stage,
			&r.CustomerAge, &gender, &r.DurationMinutes, &r.TimeToTestDriveDays,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning snapshot row: %w", err)
		}
		r.ModelType = model.ModelType(modelType)
		r.Occurrence = model.Occurrence(occurrence)
		r.FunnelStage = model.FunnelStage(stage)
		r.CustomerGender = model.Gender(gender)
		r.Completed = completed != 0
		r.ConvertedToSale = converted != 0
		records = append(records, r)
	}
	return records, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
