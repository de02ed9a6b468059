package domain

// TripSchedule holds the absolute event times of one trip, in hours from
// shift start.
type TripSchedule struct {
	Start          float64
	ArriveShipper  float64
	DepartShipper  float64
	ArriveReceiver float64
	DepartReceiver float64
	End            float64
}

// Trip is one capacity-bounded round trip depot→shipper→receiver→depot.
// It is the output of trip decomposition and describes one vehicle booking:
// load carried, the three leg distances, the time breakdown, and the absolute
// schedule. Immutable planning data once the builder has assigned it.
type Trip struct {
	RequestID int
	Sequence  int // 1-based within the parent request

	Shipper  GridPoint
	Receiver GridPoint
	Load     float64 // tonnes, always in (0, capacity]

	DistToShipper  float64
	DistToReceiver float64 // the loaded leg
	DistToDepot    float64
	TotalDistance  float64

	TravelTime    float64
	LoadingTime   float64
	UnloadingTime float64
	TotalTime     float64

	Schedule  TripSchedule
	VehicleID int
	Warnings  []string
}
