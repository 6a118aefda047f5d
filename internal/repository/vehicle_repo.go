package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"fleetbook/internal/db"
	"github.com/lib/pq"
)

// ErrDuplicateVIN is returned when a vehicle insert or update collides with
// an existing VIN.
var ErrDuplicateVIN = errors.New("vin already registered")

// VehicleStore is the vehicle half of the store surface.
type VehicleStore interface {
	ListVehicles() ([]db.Vehicle, error)
	GetVehicle(id int) (*db.Vehicle, error)
	CreateVehicle(v *db.Vehicle) error
	UpdateVehicle(v *db.Vehicle) error
	DeleteVehicle(id int) error
}

type VehicleRepository struct {
	DB *sql.DB
}

func NewVehicleRepository(database *sql.DB) *VehicleRepository {
	return &VehicleRepository{DB: database}
}

func (r *VehicleRepository) ListVehicles() ([]db.Vehicle, error) {
	query := `SELECT vehicle_id, model, trim, vin, COALESCE(nickname, '') FROM vehicle ORDER BY vehicle_id ASC`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []db.Vehicle
	for rows.Next() {
		var v db.Vehicle
		if err := rows.Scan(&v.ID, &v.Model, &v.Trim, &v.VIN, &v.Nickname); err != nil {
			return nil, fmt.Errorf("error scanning vehicle row: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating vehicle rows: %w", err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) GetVehicle(id int) (*db.Vehicle, error) {
	var v db.Vehicle
	query := `SELECT vehicle_id, model, trim, vin, COALESCE(nickname, '') FROM vehicle WHERE vehicle_id = $1`
	err := r.DB.QueryRow(query, id).Scan(&v.ID, &v.Model, &v.Trim, &v.VIN, &v.Nickname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("vehicle %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying vehicle: %w", err)
	}
	return &v, nil
}

func (r *VehicleRepository) CreateVehicle(v *db.Vehicle) error {
	query := `
		INSERT INTO vehicle (model, trim, vin, nickname)
		VALUES ($1, $2, $3, $4)
		RETURNING vehicle_id`
	err := r.DB.QueryRow(query, v.Model, v.Trim, v.VIN, v.Nickname).Scan(&v.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("vehicle vin %q: %w", v.VIN, ErrDuplicateVIN)
		}
		return fmt.Errorf("error inserting vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepository) UpdateVehicle(v *db.Vehicle) error {
	query := `
		UPDATE vehicle
		SET model = $1, trim = $2, vin = $3, nickname = $4
		WHERE vehicle_id = $5`
	result, err := r.DB.Exec(query, v.Model, v.Trim, v.VIN, v.Nickname, v.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("vehicle vin %q: %w", v.VIN, ErrDuplicateVIN)
		}
		return fmt.Errorf("error updating vehicle: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("vehicle %d: %w", v.ID, ErrNotFound)
	}
	return nil
}

// DeleteVehicle removes the vehicle and every booking referencing it in one
// transaction.
func (r *VehicleRepository) DeleteVehicle(id int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting delete transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM booking WHERE vehicle_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting vehicle bookings: %w", err)
	}
	result, err := tx.Exec(`DELETE FROM vehicle WHERE vehicle_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting vehicle: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("vehicle %d: %w", id, ErrNotFound)
	}
	return tx.Commit()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
