package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"truckload-plan-service/internal/domain"
	"truckload-plan-service/internal/platform/obs"
)

// SQLite-backed implementation of the RequestRepository port.
type SqliteRequestRepository struct{ DB *sql.DB }

func NewSqliteRequestRepository(db *sql.DB) *SqliteRequestRepository {
	return &SqliteRequestRepository{DB: db}
}

// Return all shipment requests stored in the database, in request_id order.
// No grid-code validation happens here: the plan builder owns acceptance and
// records its own errors for bad rows.
func (s *SqliteRequestRepository) ListRequests(ctx context.Context) (_ []domain.ShipmentRequest, err error) {
	defer obs.Time(ctx, "requests.repo.ListRequests")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite request repository: DB is nil")
	}

	query := `
	SELECT
		request_id,
		shipper_code,
		receiver_code,
		volume_tons,
		working_hours
	FROM shipment_requests
	ORDER BY request_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list requests: query shipment_requests table: %w", err)
	}
	defer rows.Close()

	requests := make([]domain.ShipmentRequest, 0, 64)
	for rows.Next() {
		var r domain.ShipmentRequest
		if err := rows.Scan(&r.RequestID, &r.ShipperCode, &r.ReceiverCode, &r.Volume, &r.WorkingHours); err != nil {
			return nil, fmt.Errorf("list requests: scan row: %w", err)
		}
		requests = append(requests, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list requests: row iteration: %w", err)
	}

	return requests, nil
}
