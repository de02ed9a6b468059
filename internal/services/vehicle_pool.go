package services

import (
	"container/heap"

	"truckload-plan-service/internal/domain"
)

// vehiclePool is an indexed min-heap of vehicles keyed by availability time.
// Ties break on vehicle ID (creation order) so that assignment never depends
// on heap internals or sort stability.
//
// Because every pooled vehicle has availability >= the root's, the root is the
// only candidate a first-fit scan can ever accept: if the earliest-available
// vehicle cannot finish the trip inside the workday, no vehicle can.
type vehiclePool []*domain.Vehicle

func (p vehiclePool) Len() int { return len(p) }

func (p vehiclePool) Less(i, j int) bool {
	if p[i].AvailableAt != p[j].AvailableAt {
		return p[i].AvailableAt < p[j].AvailableAt
	}
	return p[i].VehicleID < p[j].VehicleID
}

func (p vehiclePool) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

func (p *vehiclePool) Push(x any) { *p = append(*p, x.(*domain.Vehicle)) }

func (p *vehiclePool) Pop() any {
	old := *p
	n := len(old)
	v := old[n-1]
	old[n-1] = nil
	*p = old[:n-1]
	return v
}

// fits reports whether the earliest-available vehicle can take a trip of the
// given duration and still end inside the workday (plus tolerance).
func (p vehiclePool) fits(tripTime, workday, tolerance float64) bool {
	return len(p) > 0 && p[0].AvailableAt+tripTime <= workday+tolerance
}

// takeEarliest removes and returns the vehicle with the lowest availability.
// The caller books a trip on it and returns it via release.
func (p *vehiclePool) takeEarliest() *domain.Vehicle {
	return heap.Pop(p).(*domain.Vehicle)
}

// release puts a vehicle (back) into the pool at its current availability.
func (p *vehiclePool) release(v *domain.Vehicle) {
	heap.Push(p, v)
}
