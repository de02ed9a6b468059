package domain

import "fmt"

// PlanParams are the fleet and grid operating parameters for one build pass.
type PlanParams struct {
	Capacity       float64 // tonnes per vehicle
	LoadUnloadRate float64 // hours per tonne, applied at both ends
	CellSize       float64 // km per grid cell
	Speed          float64 // km/h
	DistanceMode   DistanceMode
	WorkdayLength  float64 // hours
}

// DefaultPlanParams returns the reference parameter set.
func DefaultPlanParams() PlanParams {
	return PlanParams{
		Capacity:       6,
		LoadUnloadRate: 0.1,
		CellSize:       4,
		Speed:          40,
		DistanceMode:   DistanceManhattan,
		WorkdayLength:  24,
	}
}

// Validate checks parameter sanity. The plan builder assumes these hold and
// misbehaves otherwise (a zero capacity would peel zero-size chunks forever),
// so callers must validate before building.
func (p PlanParams) Validate() error {
	if p.Capacity <= 0 {
		return fmt.Errorf("plan params: capacity must be positive, got %g", p.Capacity)
	}
	if p.LoadUnloadRate < 0 {
		return fmt.Errorf("plan params: load/unload rate must not be negative, got %g", p.LoadUnloadRate)
	}
	if p.CellSize <= 0 {
		return fmt.Errorf("plan params: cell size must be positive, got %g", p.CellSize)
	}
	if p.Speed <= 0 {
		return fmt.Errorf("plan params: speed must be positive, got %g", p.Speed)
	}
	if p.WorkdayLength <= 0 {
		return fmt.Errorf("plan params: workday length must be positive, got %g", p.WorkdayLength)
	}
	if p.DistanceMode != DistanceManhattan && p.DistanceMode != DistanceEuclidean {
		return fmt.Errorf("plan params: unknown distance mode %q", p.DistanceMode)
	}
	return nil
}

// PlanSummary aggregates fleet-wide metrics over all trips of one plan.
type PlanSummary struct {
	TripCount        int
	TotalVolume      float64
	TotalDistance    float64
	LoadedDistance   float64
	EmptyDistance    float64
	Utilization      float64 // loaded / total distance; 0 when nothing was driven
	TotalTime        float64
	MaxCompletion    float64 // latest trip end time across the fleet
	VehiclesRequired int
}

// PlanResult is the complete output of one build pass: every trip in creation
// order, per-vehicle schedules, the fleet summary, and one error string per
// request that failed validation and was excluded. It is immutable planning
// data and contains no side effects.
type PlanResult struct {
	Trips    []*Trip
	Vehicles []VehicleSchedule
	Summary  PlanSummary
	Errors   []string
}
