package dto

// RequestInput is a shipment request supplied inline in a plan request body.
// Field-level validation is deliberately absent: the plan builder owns
// acceptance and reports bad requests in the plan's errors list instead of
// failing the call.
type RequestInput struct {
	RequestID    int     `json:"request_id"`
	ShipperCode  string  `json:"shipper_code"`
	ReceiverCode string  `json:"receiver_code"`
	VolumeTons   float64 `json:"volume_tons"`
	WorkingHours float64 `json:"working_hours"`
}

type RequestResponse struct {
	RequestID    int     `json:"request_id"`
	ShipperCode  string  `json:"shipper_code"`
	ReceiverCode string  `json:"receiver_code"`
	VolumeTons   float64 `json:"volume_tons"`
	WorkingHours float64 `json:"working_hours"`
}

type ListRequestsResponse struct {
	Requests []RequestResponse `json:"requests"`
}
