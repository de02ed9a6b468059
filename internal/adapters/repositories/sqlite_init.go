package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRequestsQuery := `
	CREATE TABLE IF NOT EXISTS shipment_requests (
		request_id INTEGER PRIMARY KEY,
		shipper_code TEXT NOT NULL,
		receiver_code TEXT NOT NULL,
		volume_tons REAL NOT NULL,
		working_hours REAL NOT NULL
	);
	`

	if _, err := tx.Exec(createRequestsQuery); err != nil {
		return fmt.Errorf("init schema: create shipment_requests: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the SQLite database with shipment request data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := loadRequestSeeds(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed requests: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO shipment_requests (
		request_id,
		shipper_code,
		receiver_code,
		volume_tons,
		working_hours
	)
	VALUES (?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed requests: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.RequestID, r.ShipperCode, r.ReceiverCode, r.VolumeTons, r.WorkingHours); err != nil {
			return fmt.Errorf("seed requests: insert request_id=%d: %w", r.RequestID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed requests: commit tx: %w", err)
	}

	return nil
}
