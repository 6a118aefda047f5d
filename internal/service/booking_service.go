package service

import (
	"errors"
	"fmt"
	"log"

	"fleetbook/internal/availability"
	"fleetbook/internal/db"
	"fleetbook/internal/entities"
	apperrors "fleetbook/internal/errors"
	"fleetbook/internal/repository"
)

const (
	statusConfirmed = "confirmed"
	statusUpdated   = "updated"
	statusCancelled = "cancelled"
)

type BookingService struct {
	Bookings repository.BookingStore
	Vehicles repository.VehicleStore
	Notify   *NotifyService
}

func NewBookingService(bookings repository.BookingStore, vehicles repository.VehicleStore, notify *NotifyService) *BookingService {
	return &BookingService{Bookings: bookings, Vehicles: vehicles, Notify: notify}
}

func (s *BookingService) ListBookings() ([]db.Booking, error) {
	return s.Bookings.ListBookings()
}

func (s *BookingService) ListBookingsFiltered(date string, vehicleID int) ([]db.Booking, error) {
	return s.Bookings.ListBookingsFiltered(date, vehicleID)
}

// CreateBooking runs the overlap check against a snapshot of the current
// bookings before inserting. A conflict comes back as a 409 naming the
// colliding sub-range.
func (s *BookingService) CreateBooking(req entities.BookingRequest) (*db.Booking, error) {
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return nil, apperrors.ErrBadRequest("name, email and phone are required")
	}
	iv, err := parseInterval(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.Vehicles.GetVehicle(req.VehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrNotFound(fmt.Sprintf("vehicle %d not found", req.VehicleID))
		}
		return nil, err
	}

	existing, err := s.Bookings.ListBookings()
	if err != nil {
		return nil, fmt.Errorf("internal error checking availability: %w", err)
	}
	if err := checkConflict(req.VehicleID, iv, toEngineBookings(existing)); err != nil {
		return nil, err
	}

	booking := &db.Booking{
		VehicleID: req.VehicleID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		StartDate: iv.Start,
		EndDate:   iv.End,
	}
	if err := s.Bookings.CreateBooking(booking); err != nil {
		log.Printf("Error creating booking in repository: %v", err)
		return nil, err
	}

	s.notify(booking, vehicle, statusConfirmed)
	return booking, nil
}

// UpdateBooking re-validates the new interval against every booking except
// the one being edited, so an edit that keeps some of its own days is not
// rejected against itself.
func (s *BookingService) UpdateBooking(id int, req entities.BookingRequest) (*db.Booking, error) {
	current, err := s.Bookings.GetBooking(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrNotFound(fmt.Sprintf("booking %d not found", id))
		}
		return nil, err
	}

	iv, err := parseInterval(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	existing, err := s.Bookings.ListBookings()
	if err != nil {
		return nil, fmt.Errorf("internal error checking availability: %w", err)
	}
	others := make([]db.Booking, 0, len(existing))
	for _, b := range existing {
		if b.ID != id {
			others = append(others, b)
		}
	}
	if err := checkConflict(current.VehicleID, iv, toEngineBookings(others)); err != nil {
		return nil, err
	}

	current.Name = req.Name
	current.Email = req.Email
	current.Phone = req.Phone
	current.StartDate = iv.Start
	current.EndDate = iv.End
	if err := s.Bookings.UpdateBooking(current); err != nil {
		log.Printf("Error updating booking %d: %v", id, err)
		return nil, err
	}

	s.notifyWithVehicle(current, statusUpdated)
	return current, nil
}

func (s *BookingService) DeleteBooking(id int) error {
	booking, err := s.Bookings.GetBooking(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.ErrNotFound(fmt.Sprintf("booking %d not found", id))
		}
		return err
	}
	if err := s.Bookings.DeleteBooking(id); err != nil {
		return err
	}
	s.notifyWithVehicle(booking, statusCancelled)
	return nil
}

func (s *BookingService) notify(booking *db.Booking, vehicle *db.Vehicle, status string) {
	if s.Notify == nil {
		return
	}
	s.Notify.SendBookingEmail(*booking, *vehicle, status)
	s.Notify.SendBookingSMS(*booking, *vehicle, status)
}

func (s *BookingService) notifyWithVehicle(booking *db.Booking, status string) {
	if s.Notify == nil {
		return
	}
	vehicle, err := s.Vehicles.GetVehicle(booking.VehicleID)
	if err != nil {
		log.Printf("Could not load vehicle %d for notification: %v", booking.VehicleID, err)
		return
	}
	s.notify(booking, vehicle, status)
}

func checkConflict(vehicleID int, iv availability.Interval, bookings []availability.Booking) error {
	check := availability.CheckInterval(vehicleID, iv, bookings)
	if check.Available {
		return nil
	}
	return apperrors.ErrConflict(fmt.Sprintf(
		"vehicle %d already booked from %s to %s", vehicleID, check.ConflictStart, check.ConflictEnd))
}
