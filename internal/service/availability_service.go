package service

import (
	"fmt"
	"log"
	"time"

	"fleetbook/internal/availability"
	"fleetbook/internal/db"
	"fleetbook/internal/entities"
	apperrors "fleetbook/internal/errors"
	"fleetbook/internal/repository"
)

// AvailabilityService answers availability questions over a fresh snapshot of
// the fleet and booking tables. All date math happens in the pure engine; this
// layer only fetches the snapshot and shapes responses.
type AvailabilityService struct {
	Vehicles    repository.VehicleStore
	Bookings    repository.BookingStore
	offsetHours int
}

// NewAvailabilityService wires the stores. offsetHours is the fixed UTC
// offset used to anchor "today" for the soonest-available scan, so the search
// does not start a day early or late around midnight.
func NewAvailabilityService(vehicles repository.VehicleStore, bookings repository.BookingStore, offsetHours int) *AvailabilityService {
	return &AvailabilityService{Vehicles: vehicles, Bookings: bookings, offsetHours: offsetHours}
}

func (s *AvailabilityService) CheckAvailability(req entities.AvailabilityRequest) (*entities.AvailabilityResponse, error) {
	iv, err := parseInterval(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	bookings, err := s.Bookings.ListBookings()
	if err != nil {
		log.Printf("Error listing bookings for availability check: %v", err)
		return nil, fmt.Errorf("internal error checking availability: %w", err)
	}

	check := availability.CheckInterval(req.VehicleID, iv, toEngineBookings(bookings))
	resp := &entities.AvailabilityResponse{
		Available:          check.Available,
		RequestedStartDate: iv.Start,
		RequestedEndDate:   iv.End,
	}
	if !check.Available {
		conflictStart := check.ConflictStart
		conflictEnd := check.ConflictEnd
		resp.ConflictStartDate = &conflictStart
		resp.ConflictEndDate = &conflictEnd
		resp.Message = fmt.Sprintf("vehicle %d already booked from %s to %s", req.VehicleID, conflictStart, conflictEnd)
	}
	return resp, nil
}

// FullyBookedDates returns every date in [start, end] on which no vehicle of
// the category is free.
func (s *AvailabilityService) FullyBookedDates(start, end, category string) (*entities.FullyBookedResponse, error) {
	iv, err := parseInterval(start, end)
	if err != nil {
		return nil, err
	}

	vehicles, bookings, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	candidates := availability.FilterByCategory(vehicles, category)
	ix := availability.NewIndex(bookings)

	resp := &entities.FullyBookedResponse{Category: category, Dates: []availability.Date{}}
	for d := iv.Start; !d.After(iv.End); d = d.AddDays(1) {
		if ix.IsDateFullyBooked(d, candidates) {
			resp.Dates = append(resp.Dates, d)
		}
	}
	return resp, nil
}

// SoonestAvailable finds the first free (vehicle, date) pair starting today,
// scanning the default 365-day horizon.
func (s *AvailabilityService) SoonestAvailable(category string) (*entities.SoonestResponse, error) {
	vehicles, bookings, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	candidates := availability.FilterByCategory(vehicles, category)
	start := s.today()
	slot, found := availability.FindSoonestAvailable(candidates, bookings, start, availability.DefaultHorizonDays)
	if !found {
		return &entities.SoonestResponse{
			Found:   false,
			Message: fmt.Sprintf("no vehicles available in the next %d days", availability.DefaultHorizonDays),
		}, nil
	}
	date := slot.Date
	return &entities.SoonestResponse{Found: true, VehicleID: slot.VehicleID, Date: &date}, nil
}

// today anchors the calendar date to the configured fixed UTC offset.
func (s *AvailabilityService) today() availability.Date {
	loc := time.FixedZone("booking", s.offsetHours*3600)
	return availability.DateOf(time.Now().In(loc))
}

func (s *AvailabilityService) snapshot() ([]availability.Vehicle, []availability.Booking, error) {
	vehicles, err := s.Vehicles.ListVehicles()
	if err != nil {
		log.Printf("Error listing vehicles for availability snapshot: %v", err)
		return nil, nil, fmt.Errorf("internal error loading fleet: %w", err)
	}
	bookings, err := s.Bookings.ListBookings()
	if err != nil {
		log.Printf("Error listing bookings for availability snapshot: %v", err)
		return nil, nil, fmt.Errorf("internal error loading bookings: %w", err)
	}
	return toEngineVehicles(vehicles), toEngineBookings(bookings), nil
}

func parseInterval(start, end string) (availability.Interval, error) {
	startDate, err := availability.ParseDate(start)
	if err != nil {
		return availability.Interval{}, apperrors.ErrBadRequest(err.Error())
	}
	endDate, err := availability.ParseDate(end)
	if err != nil {
		return availability.Interval{}, apperrors.ErrBadRequest(err.Error())
	}
	return availability.NewInterval(startDate, endDate), nil
}

func toEngineBookings(rows []db.Booking) []availability.Booking {
	bookings := make([]availability.Booking, 0, len(rows))
	for _, b := range rows {
		bookings = append(bookings, availability.Booking{
			VehicleID: b.VehicleID,
			Start:     b.StartDate,
			End:       b.EndDate,
		})
	}
	return bookings
}

func toEngineVehicles(rows []db.Vehicle) []availability.Vehicle {
	vehicles := make([]availability.Vehicle, 0, len(rows))
	for _, v := range rows {
		vehicles = append(vehicles, availability.Vehicle{ID: v.ID, Trim: v.Trim})
	}
	return vehicles
}
