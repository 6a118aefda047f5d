package entities

type BookingRequest struct {
	VehicleID int    `json:"vehicle_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type VehicleRequest struct {
	Model    string `json:"model"`
	Trim     string `json:"trim"`
	VIN      string `json:"vin"`
	Nickname string `json:"nickname"`
}
