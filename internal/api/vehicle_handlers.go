package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fleetbook/internal/db"
	"fleetbook/internal/entities"
	"fleetbook/internal/service"
	"github.com/gorilla/mux"
)

type VehicleHandler struct {
	Service *service.VehicleService
}

func NewVehicleHandler(svc *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{Service: svc}
}

func (h *VehicleHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Service.ListVehicles()
	if err != nil {
		writeError(w, err, "Database error")
		return
	}
	if vehicles == nil {
		vehicles = []db.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req entities.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	vehicle, err := h.Service.CreateVehicle(req)
	if err != nil {
		writeError(w, err, "Could not create vehicle")
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid ID"})
		return
	}
	var req entities.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	vehicle, err := h.Service.UpdateVehicle(id, req)
	if err != nil {
		writeError(w, err, "Could not update vehicle")
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid ID"})
		return
	}
	if err := h.Service.DeleteVehicle(id); err != nil {
		writeError(w, err, "Could not delete vehicle")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Vehicle deleted"})
}
