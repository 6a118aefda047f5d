package entities

type BookingEmailData struct {
	Name               string
	BookingID          int
	VehicleModel       string
	VehicleTrim        string
	VehicleNickname    string
	StartDateFormatted string
	EndDateFormatted   string
	Status             string
	CurrentYear        int
}
