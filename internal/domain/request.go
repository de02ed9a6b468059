package domain

// Represents a single full-truckload shipment order handled by the system:
// move Volume tonnes from the shipper's grid zone to the receiver's.
// Requests are created externally (seed store or API body) and are never
// mutated by planning; invalid ones are dropped with a recorded error.
type ShipmentRequest struct {
	RequestID    int
	ShipperCode  string
	ReceiverCode string
	Volume       float64 // tonnes
	WorkingHours float64 // customer service window, hours from shift start
}
