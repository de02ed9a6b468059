package services

import (
	"fmt"
	"math"
	"strings"

	"truckload-plan-service/internal/domain"
)

// fitEpsilon absorbs floating-point noise in the "trip fits in the remaining
// shift" comparison. Assignment decisions must be reproducible, so the
// tolerance is fixed here rather than derived.
const fitEpsilon = 1e-6

// BuildPlan computes the full delivery plan for a batch of shipment requests:
// capacity-bounded trip decomposition, greedy vehicle assignment, per-trip
// schedules, and fleet-wide aggregates.
//
// The assignment is first-fit by earliest vehicle availability, processed in
// input request order and chunk order within a request. It minimizes nothing
// globally and never backtracks: once assigned, a trip's vehicle and start
// time are final. The design prioritizes determinism and simplicity over
// optimality.
//
// Invalid requests are dropped with a recorded error and never abort the
// batch. params must satisfy params.Validate(); BuildPlan has no failure mode
// beyond that and all anomalies surface as data on the result.
func BuildPlan(requests []domain.ShipmentRequest, params domain.PlanParams) domain.PlanResult {
	depot := domain.Depot()

	pool := &vehiclePool{}
	var fleet []*domain.Vehicle // creation order, VehicleID = index+1
	var trips []*domain.Trip
	var errs []string

	for _, req := range requests {
		shipper, receiver, err := validateRequest(req)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}

		// Peel capacity-sized chunks until the request volume is exhausted.
		// The final chunk equals the remaining volume exactly, so the chunk
		// loads always sum back to the original volume.
		remaining := req.Volume
		for seq := 1; remaining > 0; seq++ {
			load := math.Min(params.Capacity, remaining)
			remaining -= load

			trip := buildTrip(req, seq, shipper, receiver, load, depot, params)

			var vehicle *domain.Vehicle
			if pool.fits(trip.TotalTime, params.WorkdayLength, fitEpsilon) {
				vehicle = pool.takeEarliest()
			} else {
				vehicle = &domain.Vehicle{VehicleID: len(fleet) + 1}
				fleet = append(fleet, vehicle)
			}

			scheduleTrip(trip, vehicle.AvailableAt, params.Speed)
			flagOverruns(trip, req.WorkingHours, params.WorkdayLength)

			vehicle.Assign(trip)
			pool.release(vehicle)

			trips = append(trips, trip)
		}
	}

	schedules := make([]domain.VehicleSchedule, 0, len(fleet))
	for _, v := range fleet {
		schedules = append(schedules, v.Snapshot())
	}

	return domain.PlanResult{
		Trips:    trips,
		Vehicles: schedules,
		Summary:  summarize(trips, len(fleet)),
		Errors:   errs,
	}
}

// validateRequest applies the acceptance pre-pass: both grid codes present
// and parsable, volume positive. The first failure is reported; the request
// carries at most one error string.
func validateRequest(req domain.ShipmentRequest) (shipper, receiver domain.GridPoint, err error) {
	if strings.TrimSpace(req.ShipperCode) == "" {
		return shipper, receiver, fmt.Errorf("request %d: shipper code is required", req.RequestID)
	}
	if strings.TrimSpace(req.ReceiverCode) == "" {
		return shipper, receiver, fmt.Errorf("request %d: receiver code is required", req.RequestID)
	}
	if req.Volume <= 0 {
		return shipper, receiver, fmt.Errorf("request %d: volume must be positive, got %g", req.RequestID, req.Volume)
	}

	shipper, err = domain.ParseCode(req.ShipperCode)
	if err != nil {
		return shipper, receiver, fmt.Errorf("request %d: shipper: %w", req.RequestID, err)
	}
	receiver, err = domain.ParseCode(req.ReceiverCode)
	if err != nil {
		return shipper, receiver, fmt.Errorf("request %d: receiver: %w", req.RequestID, err)
	}

	return shipper, receiver, nil
}

// buildTrip computes the geometry and time breakdown of one load chunk.
// The schedule is filled in later, once a vehicle (and thus a start time)
// is known.
func buildTrip(
	req domain.ShipmentRequest,
	seq int,
	shipper, receiver domain.GridPoint,
	load float64,
	depot domain.GridPoint,
	params domain.PlanParams,
) *domain.Trip {
	toShipper := domain.Distance(depot, shipper, params.CellSize, params.DistanceMode)
	toReceiver := domain.Distance(shipper, receiver, params.CellSize, params.DistanceMode)
	toDepot := domain.Distance(receiver, depot, params.CellSize, params.DistanceMode)
	total := toShipper + toReceiver + toDepot

	travel := total / params.Speed
	loading := load * params.LoadUnloadRate
	unloading := load * params.LoadUnloadRate

	return &domain.Trip{
		RequestID:      req.RequestID,
		Sequence:       seq,
		Shipper:        shipper,
		Receiver:       receiver,
		Load:           load,
		DistToShipper:  toShipper,
		DistToReceiver: toReceiver,
		DistToDepot:    toDepot,
		TotalDistance:  total,
		TravelTime:     travel,
		LoadingTime:    loading,
		UnloadingTime:  unloading,
		TotalTime:      travel + loading + unloading,
	}
}

// scheduleTrip derives the absolute event times from the assigned vehicle's
// availability. The end time is start + total trip time, which equals the
// receiver departure plus the return leg.
func scheduleTrip(t *domain.Trip, start, speed float64) {
	arriveShipper := start + t.DistToShipper/speed
	departShipper := arriveShipper + t.LoadingTime
	arriveReceiver := departShipper + t.DistToReceiver/speed
	departReceiver := arriveReceiver + t.UnloadingTime

	t.Schedule = domain.TripSchedule{
		Start:          start,
		ArriveShipper:  arriveShipper,
		DepartShipper:  departShipper,
		ArriveReceiver: arriveReceiver,
		DepartReceiver: departReceiver,
		End:            start + t.TotalTime,
	}
}

// flagOverruns attaches non-blocking warnings: unloading past the customer's
// service window, or a trip that alone outlasts a full shift. Warnings never
// alter assignment or scheduling. Both comparisons are exact; the fit
// tolerance applies only to the assignment decision.
func flagOverruns(t *domain.Trip, workingHours, workday float64) {
	if t.Schedule.DepartReceiver > workingHours {
		t.Warnings = append(t.Warnings, fmt.Sprintf(
			"unloading finishes at %.2f h, past the customer window of %.2f h",
			t.Schedule.DepartReceiver, workingHours,
		))
	}
	if t.TotalTime > workday {
		t.Warnings = append(t.Warnings, fmt.Sprintf(
			"trip takes %.2f h, longer than the %.2f h shift",
			t.TotalTime, workday,
		))
	}
}

// summarize folds all trips into the fleet-wide totals. Loaded distance
// counts only the shipper→receiver legs; everything else is empty running.
func summarize(trips []*domain.Trip, vehicleCount int) domain.PlanSummary {
	s := domain.PlanSummary{
		TripCount:        len(trips),
		VehiclesRequired: vehicleCount,
	}

	for _, t := range trips {
		s.TotalVolume += t.Load
		s.TotalDistance += t.TotalDistance
		s.LoadedDistance += t.DistToReceiver
		s.TotalTime += t.TotalTime
		if t.Schedule.End > s.MaxCompletion {
			s.MaxCompletion = t.Schedule.End
		}
	}

	s.EmptyDistance = s.TotalDistance - s.LoadedDistance
	if s.TotalDistance > 0 {
		s.Utilization = s.LoadedDistance / s.TotalDistance
	}

	return s
}
