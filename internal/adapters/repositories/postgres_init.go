package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Postgres variants of schema init and seeding, used by cmd/dbtool.
// Kept separate from the SQLite statements because the placeholder syntax
// and upsert forms differ between the two engines.

// Initialize the Postgres database schema.
func InitSchemaPostgres(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createRequestsQuery := `
	CREATE TABLE IF NOT EXISTS shipment_requests (
		request_id INTEGER PRIMARY KEY,
		shipper_code TEXT NOT NULL,
		receiver_code TEXT NOT NULL,
		volume_tons DOUBLE PRECISION NOT NULL,
		working_hours DOUBLE PRECISION NOT NULL
	);
	`

	if _, err := db.Exec(createRequestsQuery); err != nil {
		return fmt.Errorf("init schema: create shipment_requests: %w", err)
	}

	return nil
}

// Populate the Postgres database with shipment request data from a JSON file.
func SeedFromJSONPostgres(db *sql.DB, jsonPath string) error {
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
	INSERT INTO shipment_requests (
		request_id,
		shipper_code,
		receiver_code,
		volume_tons,
		working_hours
	)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (request_id) DO UPDATE SET
		shipper_code = EXCLUDED.shipper_code,
		receiver_code = EXCLUDED.receiver_code,
		volume_tons = EXCLUDED.volume_tons,
		working_hours = EXCLUDED.working_hours;
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
