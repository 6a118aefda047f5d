package api

import (
	"encoding/json"
	"net/http"

	"fleetbook/internal/entities"
	"fleetbook/internal/service"
)

type AvailabilityHandler struct {
	Service *service.AvailabilityService
}

func NewAvailabilityHandler(svc *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// CheckAvailability answers whether one vehicle is free for a requested
// range; on conflict the response carries the colliding sub-range.
func (h *AvailabilityHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req entities.AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	resp, err := h.Service.CheckAvailability(req)
	if err != nil {
		writeError(w, err, "Error checking availability")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// FullyBookedDates lists the dates in a range on which every vehicle of the
// category is taken, for calendar shading.
func (h *AvailabilityHandler) FullyBookedDates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start := q.Get("start")
	end := q.Get("end")
	if start == "" || end == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "start and end query params are required"})
		return
	}
	resp, err := h.Service.FullyBookedDates(start, end, q.Get("category"))
	if err != nil {
		writeError(w, err, "Error computing fully booked dates")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// SoonestAvailable returns the first free (vehicle, date) pair inside the
// search horizon, or a not-found payload when the whole horizon is taken.
func (h *AvailabilityHandler) SoonestAvailable(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.SoonestAvailable(r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, err, "Error searching availability")
		return
	}
	if !resp.Found {
		writeJSON(w, http.StatusNotFound, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
