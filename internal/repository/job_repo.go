package repository

import (
	"database/sql"
	"fmt"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// DeleteBookingsEndedBefore removes bookings whose end_date is strictly
// before the given ISO date and returns how many rows went away.
func (r *JobRepository) DeleteBookingsEndedBefore(date string) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM booking WHERE end_date < $1`, date)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired bookings: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get rows affected: %w", err)
	}
	return rowsAffected, nil
}
