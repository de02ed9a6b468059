package handlers

import (
	"log"
	"net/http"

	"truckload-plan-service/internal/api/dto"
	"truckload-plan-service/internal/ports"
)

// RequestHandler exposes read-only shipment request retrieval endpoints.
type RequestHandler struct {
	Repo ports.RequestRepository
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	requests, err := h.Repo.ListRequests(r.Context())
	if err != nil {
		log.Printf("list requests failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRequestsResponse{
		Requests: make([]dto.RequestResponse, 0, len(requests)),
	}
	for _, req := range requests {
		res.Requests = append(res.Requests, dto.RequestResponse{
			RequestID:    req.RequestID,
			ShipperCode:  req.ShipperCode,
			ReceiverCode: req.ReceiverCode,
			VolumeTons:   req.Volume,
			WorkingHours: req.WorkingHours,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
