package dto

// PlanRequest carries optional inline requests plus fleet parameter
// overrides. Zero-valued parameters fall back to the operational defaults;
// the validate tags reject explicit nonsense (negative capacity, unknown
// metric) before the parameter set is assembled.
type PlanRequest struct {
	Requests []RequestInput `json:"requests"`

	Capacity       float64 `json:"capacity" validate:"omitempty,gt=0"`
	LoadUnloadRate float64 `json:"load_unload_rate" validate:"omitempty,gte=0"`
	CellSize       float64 `json:"cell_size" validate:"omitempty,gt=0"`
	Speed          float64 `json:"speed" validate:"omitempty,gt=0"`
	DistanceMode   string  `json:"distance_mode" validate:"omitempty,oneof=manhattan euclidean"`
	WorkdayLength  float64 `json:"workday_length" validate:"omitempty,gt=0"`
}

type TripScheduleResponse struct {
	Start          float64 `json:"start"`
	ArriveShipper  float64 `json:"arrive_shipper"`
	DepartShipper  float64 `json:"depart_shipper"`
	ArriveReceiver float64 `json:"arrive_receiver"`
	DepartReceiver float64 `json:"depart_receiver"`
	End            float64 `json:"end"`
}

type TripResponse struct {
	RequestID      int                  `json:"request_id"`
	TripSeq        int                  `json:"trip_seq"`
	VehicleID      int                  `json:"vehicle_id"`
	Shipper        string               `json:"shipper"`
	Receiver       string               `json:"receiver"`
	LoadTons       float64              `json:"load_tons"`
	DistToShipper  float64              `json:"dist_to_shipper_km"`
	DistToReceiver float64              `json:"dist_to_receiver_km"`
	DistToDepot    float64              `json:"dist_to_depot_km"`
	TotalKm        float64              `json:"total_km"`
	TravelHours    float64              `json:"travel_hours"`
	LoadingHours   float64              `json:"loading_hours"`
	UnloadingHours float64              `json:"unloading_hours"`
	TotalHours     float64              `json:"total_hours"`
	Schedule       TripScheduleResponse `json:"schedule"`
	Warnings       []string             `json:"warnings"`
}

type VehicleResponse struct {
	VehicleID int      `json:"vehicle_id"`
	TripCount int      `json:"trip_count"`
	Distance  float64  `json:"distance_km"`
	Time      float64  `json:"time_hours"`
	TripRefs  []string `json:"trips"` // "requestID/seq", assignment order
}

type SummaryResponse struct {
	TripCount        int     `json:"trip_count"`
	TotalVolume      float64 `json:"total_volume_tons"`
	TotalDistance    float64 `json:"total_distance_km"`
	LoadedDistance   float64 `json:"loaded_distance_km"`
	EmptyDistance    float64 `json:"empty_distance_km"`
	Utilization      float64 `json:"utilization"`
	TotalTime        float64 `json:"total_time_hours"`
	MaxCompletion    float64 `json:"max_completion_hour"`
	VehiclesRequired int     `json:"vehicles_required"`
}

type PlanResponse struct {
	Trips    []TripResponse    `json:"trips"`
	Vehicles []VehicleResponse `json:"vehicles"`
	Summary  SummaryResponse   `json:"summary"`
	Errors   []string          `json:"errors"`
}
