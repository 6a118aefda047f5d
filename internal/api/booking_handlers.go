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

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Service.ListBookings()
	if err != nil {
		writeError(w, err, "Database error")
		return
	}
	if bookings == nil {
		bookings = []db.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	booking, err := h.Service.CreateBooking(req)
	if err != nil {
		writeError(w, err, "Could not create booking")
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid ID"})
		return
	}
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	booking, err := h.Service.UpdateBooking(id, req)
	if err != nil {
		writeError(w, err, "Could not update booking")
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid ID"})
		return
	}
	if err := h.Service.DeleteBooking(id); err != nil {
		writeError(w, err, "Could not delete booking")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Booking deleted"})
}

// ListBookingsFiltered serves the admin listing with optional date and
// vehicle filters.
func (h *BookingHandler) ListBookingsFiltered(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	vehicleID := 0
	if raw := r.URL.Query().Get("vehicle_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid vehicle_id"})
			return
		}
		vehicleID = parsed
	}
	bookings, err := h.Service.ListBookingsFiltered(date, vehicleID)
	if err != nil {
		writeError(w, err, "Database error")
		return
	}
	if bookings == nil {
		bookings = []db.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}
