package domain

// Vehicle is the mutable planning-time state of one truck: when it next
// becomes available and what it has accumulated so far. It exists only during
// a single build pass and is projected into a VehicleSchedule for output.
type Vehicle struct {
	VehicleID   int     // 1-based, assigned in creation order
	AvailableAt float64 // hours from shift start
	Distance    float64
	Time        float64
	Trips       []*Trip
}

// Assign books the trip onto the vehicle and advances its availability to the
// trip's end time. The trip must already be scheduled from this vehicle's
// current availability, so bookings never overlap.
func (v *Vehicle) Assign(t *Trip) {
	t.VehicleID = v.VehicleID
	v.AvailableAt = t.Schedule.End
	v.Distance += t.TotalDistance
	v.Time += t.TotalTime
	v.Trips = append(v.Trips, t)
}

// VehicleSchedule is the read-only projection of a vehicle after planning:
// its trips in assignment order plus accumulated distance and time.
type VehicleSchedule struct {
	VehicleID int
	Trips     []*Trip
	Distance  float64
	Time      float64
}

// Snapshot projects the planning-time state into its output form.
func (v *Vehicle) Snapshot() VehicleSchedule {
	return VehicleSchedule{
		VehicleID: v.VehicleID,
		Trips:     v.Trips,
		Distance:  v.Distance,
		Time:      v.Time,
	}
}
