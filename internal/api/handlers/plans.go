package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"truckload-plan-service/internal/api/dto"
	"truckload-plan-service/internal/domain"
	"truckload-plan-service/internal/export"
	"truckload-plan-service/internal/ports"
	"truckload-plan-service/internal/services"

	"github.com/go-playground/validator/v10"
)

// PlanHandler computes delivery plans over stored or inline shipment requests.
// It coordinates repository access, parameter assembly, and the plan builder.
type PlanHandler struct {
	Repo     ports.RequestRepository
	validate *validator.Validate
}

func NewPlanHandler(repo ports.RequestRepository) *PlanHandler {
	return &PlanHandler{
		Repo:     repo,
		validate: validator.New(),
	}
}

// Plan builds a delivery plan and returns it as JSON.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	plan, status, err := h.buildPlan(r)
	if err != nil {
		if status == http.StatusInternalServerError {
			log.Printf("build plan failed: %v", err)
			writeError(w, r, status, "internal server error")
			return
		}
		writeError(w, r, status, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, toPlanResponse(plan))
}

// Export builds the same plan and streams its trip table as a CSV attachment.
// The export layer only reads PlanResult fields; nothing is recomputed.
func (h *PlanHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	plan, status, err := h.buildPlan(r)
	if err != nil {
		if status == http.StatusInternalServerError {
			log.Printf("build plan for export failed: %v", err)
			writeError(w, r, status, "internal server error")
			return
		}
		writeError(w, r, status, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="trips.csv"`)
	if err := export.WriteTripsCSV(r.Context(), w, plan); err != nil {
		// Headers are already out; all we can do is log the broken stream.
		log.Printf("export trips csv failed: %v", err)
	}
}

// buildPlan decodes and validates the request body, resolves the request list
// (inline when provided, otherwise the store), assembles parameters, and runs
// the builder. The returned status is the HTTP code to use on error.
func (h *PlanHandler) buildPlan(r *http.Request) (domain.PlanResult, int, error) {
	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		return domain.PlanResult{}, http.StatusBadRequest, errors.New("invalid json body")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return domain.PlanResult{}, http.StatusBadRequest, errors.New("body must contain only one JSON object")
	}

	if err := h.validate.Struct(req); err != nil {
		return domain.PlanResult{}, http.StatusBadRequest, fmt.Errorf("invalid parameters: %v", err)
	}

	params := assembleParams(req)
	// Parameter sanity is this layer's responsibility: the builder assumes
	// positive capacity/speed/cell size and is never called without it.
	if err := params.Validate(); err != nil {
		return domain.PlanResult{}, http.StatusBadRequest, err
	}

	requests, status, err := h.resolveRequests(r, req)
	if err != nil {
		return domain.PlanResult{}, status, err
	}

	return services.BuildPlan(requests, params), http.StatusOK, nil
}

func (h *PlanHandler) resolveRequests(r *http.Request, req dto.PlanRequest) ([]domain.ShipmentRequest, int, error) {
	if len(req.Requests) > 0 {
		requests := make([]domain.ShipmentRequest, 0, len(req.Requests))
		for _, in := range req.Requests {
			requests = append(requests, domain.ShipmentRequest{
				RequestID:    in.RequestID,
				ShipperCode:  in.ShipperCode,
				ReceiverCode: in.ReceiverCode,
				Volume:       in.VolumeTons,
				WorkingHours: in.WorkingHours,
			})
		}
		return requests, http.StatusOK, nil
	}

	requests, err := h.Repo.ListRequests(r.Context())
	if err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("list requests: %w", err)
	}
	return requests, http.StatusOK, nil
}

// assembleParams starts from the operational defaults and applies only the
// overrides the caller actually set.
func assembleParams(req dto.PlanRequest) domain.PlanParams {
	params := domain.DefaultPlanParams()

	if req.Capacity != 0 {
		params.Capacity = req.Capacity
	}
	if req.LoadUnloadRate != 0 {
		params.LoadUnloadRate = req.LoadUnloadRate
	}
	if req.CellSize != 0 {
		params.CellSize = req.CellSize
	}
	if req.Speed != 0 {
		params.Speed = req.Speed
	}
	if req.DistanceMode != "" {
		params.DistanceMode = domain.DistanceMode(req.DistanceMode)
	}
	if req.WorkdayLength != 0 {
		params.WorkdayLength = req.WorkdayLength
	}

	return params
}

func toPlanResponse(plan domain.PlanResult) dto.PlanResponse {
	res := dto.PlanResponse{
		Trips:    make([]dto.TripResponse, 0, len(plan.Trips)),
		Vehicles: make([]dto.VehicleResponse, 0, len(plan.Vehicles)),
		Errors:   plan.Errors,
		Summary: dto.SummaryResponse{
			TripCount:        plan.Summary.TripCount,
			TotalVolume:      plan.Summary.TotalVolume,
			TotalDistance:    plan.Summary.TotalDistance,
			LoadedDistance:   plan.Summary.LoadedDistance,
			EmptyDistance:    plan.Summary.EmptyDistance,
			Utilization:      plan.Summary.Utilization,
			TotalTime:        plan.Summary.TotalTime,
			MaxCompletion:    plan.Summary.MaxCompletion,
			VehiclesRequired: plan.Summary.VehiclesRequired,
		},
	}
	if res.Errors == nil {
		res.Errors = []string{}
	}

	for _, t := range plan.Trips {
		warnings := t.Warnings
		if warnings == nil {
			warnings = []string{}
		}
		res.Trips = append(res.Trips, dto.TripResponse{
			RequestID:      t.RequestID,
			TripSeq:        t.Sequence,
			VehicleID:      t.VehicleID,
			Shipper:        t.Shipper.Code,
			Receiver:       t.Receiver.Code,
			LoadTons:       t.Load,
			DistToShipper:  t.DistToShipper,
			DistToReceiver: t.DistToReceiver,
			DistToDepot:    t.DistToDepot,
			TotalKm:        t.TotalDistance,
			TravelHours:    t.TravelTime,
			LoadingHours:   t.LoadingTime,
			UnloadingHours: t.UnloadingTime,
			TotalHours:     t.TotalTime,
			Schedule: dto.TripScheduleResponse{
				Start:          t.Schedule.Start,
				ArriveShipper:  t.Schedule.ArriveShipper,
				DepartShipper:  t.Schedule.DepartShipper,
				ArriveReceiver: t.Schedule.ArriveReceiver,
				DepartReceiver: t.Schedule.DepartReceiver,
				End:            t.Schedule.End,
			},
			Warnings: warnings,
		})
	}

	for _, v := range plan.Vehicles {
		refs := make([]string, 0, len(v.Trips))
		for _, t := range v.Trips {
			refs = append(refs, fmt.Sprintf("%d/%d", t.RequestID, t.Sequence))
		}
		res.Vehicles = append(res.Vehicles, dto.VehicleResponse{
			VehicleID: v.VehicleID,
			TripCount: len(v.Trips),
			Distance:  v.Distance,
			Time:      v.Time,
			TripRefs:  refs,
		})
	}

	return res
}
