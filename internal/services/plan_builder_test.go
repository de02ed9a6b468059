package services

import (
	"math"
	"reflect"
	"sort"
	"strings"
	"testing"

	"truckload-plan-service/internal/domain"
)

// Reference geometry used through the tests, under defaults (cell size 4 km,
// manhattan, speed 40, rate 0.1): depot A1 → B3 = 12 km, B3 → E2 = 16 km,
// E2 → depot = 20 km. A full 6 t trip is 48 km and 2.4 h.

func TestBuildPlanSplitsVolumeByCapacity(t *testing.T) {
	requests := []domain.ShipmentRequest{
		{RequestID: 1, ShipperCode: "B3", ReceiverCode: "E2", Volume: 8, WorkingHours: 24},
	}

	plan := BuildPlan(requests, domain.DefaultPlanParams())

	if len(plan.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", plan.Errors)
	}
	if len(plan.Trips) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(plan.Trips))
	}
	if plan.Trips[0].Load != 6 || plan.Trips[1].Load != 2 {
		t.Fatalf("loads = [%g %g], want [6 2]", plan.Trips[0].Load, plan.Trips[1].Load)
	}
	if plan.Trips[0].Sequence != 1 || plan.Trips[1].Sequence != 2 {
		t.Fatalf("sequences = [%d %d], want [1 2]", plan.Trips[0].Sequence, plan.Trips[1].Sequence)
	}
}

func TestBuildPlanVolumeConservation(t *testing.T) {
	requests := []domain.ShipmentRequest{
		{RequestID: 1, ShipperCode: "B3", ReceiverCode: "E2", Volume: 14, WorkingHours: 24},
		{RequestID: 2, ShipperCode: "C5", ReceiverCode: "A2", Volume: 4.5, WorkingHours: 24},
		{RequestID: 3, ShipperCode: "F6", ReceiverCode: "B1", Volume: 0.75, WorkingHours: 24},
	}

	plan := BuildPlan(requests, domain.DefaultPlanParams())

	sums := map[int]float64{}
	for _, trip := range plan.Trips {
		if trip.Load <= 0 || trip.Load > 6 {
			t.Fatalf("trip %d/%d load %g outside (0, capacity]", trip.RequestID, trip.Sequence, trip.Load)
		}
		sums[trip.RequestID] += trip.Load
	}

	wants := map[int]float64{1: 14, 2: 4.5, 3: 0.75}
	for id, want := range wants {
		if math.Abs(sums[id]-want) > 1e-9 {
			t.Errorf("request %d: trip loads sum to %g, want %g", id, sums[id], want)
		}
	}
}

func TestBuildPlanTripGeometryAndTiming(t *testing.T) {
	requests := []domain.ShipmentRequest{
		{RequestID: 1, ShipperCode: "B3", ReceiverCode: "E2", Volume: 6, WorkingHours: 24},
	}

	plan := BuildPlan(requests, domain.DefaultPlanParams())
	if len(plan.Trips) != 1 {
		t.Fatalf("expected 1 trip, got %d", len(plan.Trips))
	}

	trip := plan.Trips[0]
	if trip.DistToShipper != 12 || trip.DistToReceiver != 16 || trip.DistToDepot != 20 {
		t.Fatalf("legs = [%g %g %g], want [12 16 20]", trip.DistToShipper, trip.DistToReceiver, trip.DistToDepot)
	}
	if trip.TotalDistance != 48 {
		t.Fatalf("total distance = %g, want 48", trip.TotalDistance)
	}

	if math.Abs(trip.TravelTime-1.2) > 1e-9 {
		t.Errorf("travel time = %g, want 1.2", trip.TravelTime)
	}
	if math.Abs(trip.LoadingTime-0.6) > 1e-9 || math.Abs(trip.UnloadingTime-0.6) > 1e-9 {
		t.Errorf("loading/unloading = %g/%g, want 0.6/0.6", trip.LoadingTime, trip.UnloadingTime)
	}
	if math.Abs(trip.TotalTime-2.4) > 1e-9 {
		t.Errorf("total time = %g, want 2.4", trip.TotalTime)
	}

	s := trip.Schedule
	if s.Start != 0 {
		t.Errorf("start = %g, want 0", s.Start)
	}
	if math.Abs(s.ArriveShipper-0.3) > 1e-9 || math.Abs(s.DepartShipper-0.9) > 1e-9 {
		t.Errorf("shipper events = %g/%g, want 0.3/0.9", s.ArriveShipper, s.DepartShipper)
	}
	if math.Abs(s.ArriveReceiver-1.3) > 1e-9 || math.Abs(s.DepartReceiver-1.9) > 1e-9 {
		t.Errorf("receiver events = %g/%g, want 1.3/1.9", s.ArriveReceiver, s.DepartReceiver)
	}
	if math.Abs(s.End-2.4) > 1e-9 {
		t.Errorf("end = %g, want 2.4", s.End)
	}
}

func TestBuildPlanSequentialOnOneVehicle(t *testing.T) {
	// Two trips of 2.4 h each fit a 24 h shift back to back.
	requests := []domain.ShipmentRequest{
		{RequestID: 1, ShipperCode: "B3", ReceiverCode: "E2", Volume: 6, WorkingHours: 24},
		{RequestID: 2, ShipperCode: "B3", ReceiverCode: "E2", Volume: 6, WorkingHours: 24},
	}

	plan := BuildPlan(requests, domain.DefaultPlanParams())

	if plan.Summary.VehiclesRequired != 1 {
		t.Fatalf("vehicles required = %d, want 1", plan.Summary.VehiclesRequired)
	}
	if len(plan.Trips) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(plan.Trips))
	}

	first, second := plan.Trips[0], plan.Trips[1]
	if first.VehicleID != 1 || second.VehicleID != 1 {
		t.Fatalf("vehicle ids = [%d %d], want [1 1]", first.VehicleID, second.VehicleID)
	}
	if second.Schedule.Start != first.Schedule.End {
		t.Fatalf("second start = %g, want first end %g", second.Schedule.Start, first.Schedule.End)
	}
}

func TestBuildPlanCreatesVehicleWhenShiftFull(t *testing.T) {
	params := domain.DefaultPlanParams()
	params.WorkdayLength = 4 // one 2.4 h trip fits, two do not

	requests := []domain.ShipmentRequest{
		{RequestID: 1, ShipperCode: "B3", ReceiverCode: "E2", Volume: 12, WorkingHours: 24},
	}

	plan := BuildPlan(requests, params)

	if plan.Summary.VehiclesRequired != 2 {
		t.Fatalf("vehicles required = %d, want 2", plan.Summary.VehiclesRequired)
	}
	if got := []int{plan.Trips[0].VehicleID, plan.Trips[1].VehicleID}; got[0] != 1 || got[1] != 2 {
		t.Fatalf("vehicle ids = %v, want [1 2]", got)
	}
	for i, v := range plan.Vehicles {
		if v.VehicleID != i+1 {
			t.Errorf("vehicle at index %d has id %d, want dense 1-based ids", i, v.VehicleID)
		}
	}
}

func TestBuildPlanFitToleranceAtShiftBoundary(t *testing.T) {
	// With no load/unload time the trip is exactly 1.2 h; two of them land
	// exactly on a 2.4 h workday and must still share one vehicle.
	params := domain.DefaultPlanParams()
	params.LoadUnloadRate = 0
	params.WorkdayLength = 2.4

	requests := []domain.ShipmentRequest{
		{RequestID: 1, ShipperCode: "B3", ReceiverCode: "E2", Volume: 12, WorkingHours: 24},
	}

	plan := BuildPlan(requests, params)

	if plan.Summary.VehiclesRequired != 1 {
		t.Fatalf("vehicles required = %d, want 1", plan.Summary.VehiclesRequired)
	}
}

func TestBuildPlanServiceWindowWarning(t *testing.T) {
	requests := []domain.ShipmentRequest{
		{RequestID: 1, ShipperCode: "B3", ReceiverCode: "E2", Volume: 6, WorkingHours: 1},
	}

	plan := BuildPlan(requests, domain.DefaultPlanParams())
	if len(plan.Trips) != 1 {
		t.Fatalf("expected 1 trip, got %d", len(plan.Trips))
	}

	trip := plan.Trips[0]
	if len(trip.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", trip.Warnings)
	}
	// Unloading finishes at 1.90 h against a 1.00 h window; the warning must
	// carry both formatted values.
	if !strings.Contains(trip.Warnings[0], "1.90") || !strings.Contains(trip.Warnings[0], "1.00") {
		t.Fatalf("warning %q missing formatted hour values", trip.Warnings[0])
	}
}

func TestBuildPlanShiftLengthWarning(t *testing.T) {
	params := domain.DefaultPlanParams()
	params.WorkdayLength = 2 // below the 2.4 h trip time

	requests := []domain.ShipmentRequest{
		{RequestID: 1, ShipperCode: "B3", ReceiverCode: "E2", Volume: 6, WorkingHours: 24},
	}

	plan := BuildPlan(requests, params)
	if len(plan.Trips) != 1 {
		t.Fatalf("expected 1 trip, got %d", len(plan.Trips))
	}

	trip := plan.Trips[0]
	if len(trip.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", trip.Warnings)
	}
	if !strings.Contains(trip.Warnings[0], "2.40") || !strings.Contains(trip.Warnings[0], "2.00") {
		t.Fatalf("warning %q missing formatted hour values", trip.Warnings[0])
	}
	// Overruns never block assignment.
	if trip.VehicleID != 1 {
		t.Errorf("vehicle id = %d, want 1", trip.VehicleID)
	}
}

func TestBuildPlanRejectsInvalidRequests(t *testing.T) {
	requests := []domain.ShipmentRequest{
		{RequestID: 1, ShipperCode: "G1", ReceiverCode: "B4", Volume: 5, WorkingHours: 10},
		{RequestID: 2, ShipperCode: "", ReceiverCode: "B4", Volume: 5, WorkingHours: 10},
		{RequestID: 3, ShipperCode: "B3", ReceiverCode: "E2", Volume: 0, WorkingHours: 10},
		{RequestID: 4, ShipperCode: "B3", ReceiverCode: "E9", Volume: 5, WorkingHours: 10},
		{RequestID: 5, ShipperCode: "B3", ReceiverCode: "E2", Volume: 5, WorkingHours: 10},
	}

	plan := BuildPlan(requests, domain.DefaultPlanParams())

	if len(plan.Errors) != 4 {
		t.Fatalf("errors = %v, want 4 entries", plan.Errors)
	}
	if len(plan.Trips) != 1 || plan.Trips[0].RequestID != 5 {
		t.Fatalf("expected only request 5 planned, got %+v", plan.Trips)
	}
	for i, want := range []string{"request 1", "request 2", "request 3", "request 4"} {
		if !strings.Contains(plan.Errors[i], want) {
			t.Errorf("errors[%d] = %q, want mention of %q", i, plan.Errors[i], want)
		}
	}
}

func TestBuildPlanNoDoubleBooking(t *testing.T) {
	params := domain.DefaultPlanParams()
	params.WorkdayLength = 8

	requests := []domain.ShipmentRequest{
		{RequestID: 1, ShipperCode: "B3", ReceiverCode: "E2", Volume: 20, WorkingHours: 24},
		{RequestID: 2, ShipperCode: "F6", ReceiverCode: "B1", Volume: 15, WorkingHours: 24},
		{RequestID: 3, ShipperCode: "C5", ReceiverCode: "A2", Volume: 9, WorkingHours: 24},
	}

	plan := BuildPlan(requests, params)

	for _, v := range plan.Vehicles {
		trips := append([]*domain.Trip{}, v.Trips...)
		sort.Slice(trips, func(i, j int) bool { return trips[i].Schedule.Start < trips[j].Schedule.Start })
		for i := 0; i+1 < len(trips); i++ {
			if trips[i].Schedule.End > trips[i+1].Schedule.Start {
				t.Errorf("vehicle %d: trip ending %g overlaps trip starting %g",
					v.VehicleID, trips[i].Schedule.End, trips[i+1].Schedule.Start)
			}
		}
	}
}

func TestBuildPlanSummary(t *testing.T) {
	requests := []domain.ShipmentRequest{
		{RequestID: 1, ShipperCode: "B3", ReceiverCode: "E2", Volume: 6, WorkingHours: 24},
	}

	plan := BuildPlan(requests, domain.DefaultPlanParams())
	s := plan.Summary

	if s.TripCount != 1 || s.VehiclesRequired != 1 {
		t.Fatalf("trip count/vehicles = %d/%d, want 1/1", s.TripCount, s.VehiclesRequired)
	}
	if s.TotalDistance != 48 || s.LoadedDistance != 16 || s.EmptyDistance != 32 {
		t.Fatalf("distances = %g/%g/%g, want 48/16/32", s.TotalDistance, s.LoadedDistance, s.EmptyDistance)
	}
	if math.Abs(s.Utilization-16.0/48.0) > 1e-12 {
		t.Errorf("utilization = %g, want %g", s.Utilization, 16.0/48.0)
	}
	if math.Abs(s.TotalTime-2.4) > 1e-9 || math.Abs(s.MaxCompletion-2.4) > 1e-9 {
		t.Errorf("total time/max completion = %g/%g, want 2.4/2.4", s.TotalTime, s.MaxCompletion)
	}
	if s.TotalVolume != 6 {
		t.Errorf("total volume = %g, want 6", s.TotalVolume)
	}
}

func TestBuildPlanZeroDistanceUtilization(t *testing.T) {
	// Shipper and receiver both at the depot: nothing is driven at all.
	requests := []domain.ShipmentRequest{
		{RequestID: 1, ShipperCode: "A1", ReceiverCode: "A1", Volume: 3, WorkingHours: 24},
	}

	plan := BuildPlan(requests, domain.DefaultPlanParams())

	if plan.Summary.TotalDistance != 0 {
		t.Fatalf("total distance = %g, want 0", plan.Summary.TotalDistance)
	}
	if plan.Summary.Utilization != 0 {
		t.Fatalf("utilization = %g, want 0 for zero distance", plan.Summary.Utilization)
	}
}

func TestBuildPlanEmptyInput(t *testing.T) {
	plan := BuildPlan(nil, domain.DefaultPlanParams())

	if len(plan.Trips) != 0 || len(plan.Vehicles) != 0 || len(plan.Errors) != 0 {
		t.Fatalf("empty input produced non-empty plan: %+v", plan)
	}
	if plan.Summary.Utilization != 0 {
		t.Fatalf("utilization = %g, want 0", plan.Summary.Utilization)
	}
}

func TestBuildPlanDeterminism(t *testing.T) {
	params := domain.DefaultPlanParams()
	params.WorkdayLength = 8

	requests := []domain.ShipmentRequest{
		{RequestID: 1, ShipperCode: "B3", ReceiverCode: "E2", Volume: 20, WorkingHours: 10},
		{RequestID: 2, ShipperCode: "F6", ReceiverCode: "B1", Volume: 15, WorkingHours: 12},
		{RequestID: 3, ShipperCode: "G9", ReceiverCode: "B1", Volume: 1, WorkingHours: 12},
		{RequestID: 4, ShipperCode: "C5", ReceiverCode: "A2", Volume: 9, WorkingHours: 6},
	}

	first := BuildPlan(requests, params)
	second := BuildPlan(requests, params)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical input produced different plans")
	}
}
