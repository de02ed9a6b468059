package ports

import (
	"context"

	"truckload-plan-service/internal/domain"
)

// Port: a boundary for retrieving ShipmentRequest entities from a data source.
type RequestRepository interface {
	// Retrieve all shipment requests available for planning, in stored order.
	ListRequests(ctx context.Context) ([]domain.ShipmentRequest, error)
}
