package db

import "fleetbook/internal/availability"

type Vehicle struct {
	ID       int    `json:"vehicle_id"`
	Model    string `json:"model"`
	Trim     string `json:"trim"`
	VIN      string `json:"vin"`
	Nickname string `json:"nickname,omitempty"`
}

type Booking struct {
	ID        int               `json:"booking_id"`
	VehicleID int               `json:"vehicle_id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	StartDate availability.Date `json:"start_date"`
	EndDate   availability.Date `json:"end_date"`
}

type Admin struct {
	ID           int
	Email        string
	PasswordHash string
}
