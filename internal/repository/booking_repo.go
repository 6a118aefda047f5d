package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"fleetbook/internal/availability"
	"fleetbook/internal/db"
)

// ErrNotFound is returned when a row lookup matches nothing.
var ErrNotFound = errors.New("not found")

// BookingStore is the booking half of the store surface consumed by the
// services.
type BookingStore interface {
	ListBookings() ([]db.Booking, error)
	ListBookingsFiltered(date string, vehicleID int) ([]db.Booking, error)
	GetBooking(id int) (*db.Booking, error)
	CreateBooking(b *db.Booking) error
	UpdateBooking(b *db.Booking) error
	DeleteBooking(id int) error
}

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

func (r *BookingRepository) ListBookings() ([]db.Booking, error) {
	query := `
		SELECT booking_id, vehicle_id, name, email, phone,
		       to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD')
		FROM booking
		ORDER BY booking_id`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) ListBookingsFiltered(date string, vehicleID int) ([]db.Booking, error) {
	query := `
		SELECT booking_id, vehicle_id, name, email, phone,
		       to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD')
		FROM booking
		WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if date != "" {
		query += fmt.Sprintf(" AND start_date <= $%d AND end_date >= $%d", idx, idx)
		args = append(args, date)
		idx++
	}
	if vehicleID != 0 {
		query += fmt.Sprintf(" AND vehicle_id = $%d", idx)
		args = append(args, vehicleID)
		idx++
	}
	query += " ORDER BY start_date DESC, booking_id DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying filtered bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) GetBooking(id int) (*db.Booking, error) {
	var b db.Booking
	var start, end string
	query := `
		SELECT booking_id, vehicle_id, name, email, phone,
		       to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD')
		FROM booking WHERE booking_id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&b.ID, &b.VehicleID, &b.Name, &b.Email, &b.Phone, &start, &end,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying booking: %w", err)
	}
	if err := setBookingDates(&b, start, end); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) CreateBooking(b *db.Booking) error {
	query := `
		INSERT INTO booking (vehicle_id, name, email, phone, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING booking_id`
	return r.DB.QueryRow(query,
		b.VehicleID,
		b.Name,
		b.Email,
		b.Phone,
		b.StartDate.String(),
		b.EndDate.String(),
	).Scan(&b.ID)
}

func (r *BookingRepository) UpdateBooking(b *db.Booking) error {
	query := `
		UPDATE booking
		SET name = $1, email = $2, phone = $3, start_date = $4, end_date = $5
		WHERE booking_id = $6`
	result, err := r.DB.Exec(query, b.Name, b.Email, b.Phone, b.StartDate.String(), b.EndDate.String(), b.ID)
	if err != nil {
		return fmt.Errorf("error updating booking: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("booking %d: %w", b.ID, ErrNotFound)
	}
	return nil
}

func (r *BookingRepository) DeleteBooking(id int) error {
	result, err := r.DB.Exec(`DELETE FROM booking WHERE booking_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting booking: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("booking %d: %w", id, ErrNotFound)
	}
	return nil
}

func scanBooking(rows *sql.Rows) (db.Booking, error) {
	var b db.Booking
	var start, end string
	err := rows.Scan(&b.ID, &b.VehicleID, &b.Name, &b.Email, &b.Phone, &start, &end)
	if err != nil {
		return db.Booking{}, fmt.Errorf("error scanning booking row: %w", err)
	}
	if err := setBookingDates(&b, start, end); err != nil {
		return db.Booking{}, err
	}
	return b, nil
}

func setBookingDates(b *db.Booking, start, end string) error {
	startDate, err := availability.ParseDate(start)
	if err != nil {
		return fmt.Errorf("booking %d has malformed start_date: %w", b.ID, err)
	}
	endDate, err := availability.ParseDate(end)
	if err != nil {
		return fmt.Errorf("booking %d has malformed end_date: %w", b.ID, err)
	}
	b.StartDate = startDate
	b.EndDate = endDate
	return nil
}
