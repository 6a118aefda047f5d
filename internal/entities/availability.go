package entities

import "fleetbook/internal/availability"

type AvailabilityRequest struct {
	VehicleID int    `json:"vehicle_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type AvailabilityResponse struct {
	Available          bool               `json:"available"`
	RequestedStartDate availability.Date  `json:"requested_start_date"`
	RequestedEndDate   availability.Date  `json:"requested_end_date"`
	ConflictStartDate  *availability.Date `json:"conflict_start_date,omitempty"`
	ConflictEndDate    *availability.Date `json:"conflict_end_date,omitempty"`
	Message            string             `json:"message,omitempty"`
}

type FullyBookedResponse struct {
	Category string              `json:"category"`
	Dates    []availability.Date `json:"dates"`
}

type SoonestResponse struct {
	Found     bool               `json:"found"`
	VehicleID int                `json:"vehicle_id,omitempty"`
	Date      *availability.Date `json:"date,omitempty"`
	Message   string             `json:"message,omitempty"`
}
