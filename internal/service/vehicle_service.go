package service

import (
	"errors"
	"fmt"

	"fleetbook/internal/db"
	"fleetbook/internal/entities"
	apperrors "fleetbook/internal/errors"
	"fleetbook/internal/repository"
)

type VehicleService struct {
	Vehicles repository.VehicleStore
}

func NewVehicleService(vehicles repository.VehicleStore) *VehicleService {
	return &VehicleService{Vehicles: vehicles}
}

func (s *VehicleService) ListVehicles() ([]db.Vehicle, error) {
	return s.Vehicles.ListVehicles()
}

func (s *VehicleService) CreateVehicle(req entities.VehicleRequest) (*db.Vehicle, error) {
	if err := validateVehicle(req); err != nil {
		return nil, err
	}
	vehicle := &db.Vehicle{
		Model:    req.Model,
		Trim:     req.Trim,
		VIN:      req.VIN,
		Nickname: req.Nickname,
	}
	if err := s.Vehicles.CreateVehicle(vehicle); err != nil {
		if errors.Is(err, repository.ErrDuplicateVIN) {
			return nil, apperrors.ErrConflict(fmt.Sprintf("vin %q already registered", req.VIN))
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) UpdateVehicle(id int, req entities.VehicleRequest) (*db.Vehicle, error) {
	if err := validateVehicle(req); err != nil {
		return nil, err
	}
	vehicle := &db.Vehicle{
		ID:       id,
		Model:    req.Model,
		Trim:     req.Trim,
		VIN:      req.VIN,
		Nickname: req.Nickname,
	}
	if err := s.Vehicles.UpdateVehicle(vehicle); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperrors.ErrNotFound(fmt.Sprintf("vehicle %d not found", id))
		case errors.Is(err, repository.ErrDuplicateVIN):
			return nil, apperrors.ErrConflict(fmt.Sprintf("vin %q already registered", req.VIN))
		}
		return nil, err
	}
	return vehicle, nil
}

// DeleteVehicle removes the vehicle and, through the store, every booking
// attached to it.
func (s *VehicleService) DeleteVehicle(id int) error {
	if err := s.Vehicles.DeleteVehicle(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.ErrNotFound(fmt.Sprintf("vehicle %d not found", id))
		}
		return err
	}
	return nil
}

func validateVehicle(req entities.VehicleRequest) error {
	if req.Model == "" || req.Trim == "" || req.VIN == "" {
		return apperrors.ErrBadRequest("model, trim and vin are required")
	}
	return nil
}
