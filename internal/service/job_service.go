package service

import (
	"fmt"
	"log"
	"time"

	"fleetbook/internal/availability"
	"fleetbook/internal/repository"
)

type JobService struct {
	Repo          *repository.JobRepository
	RetentionDays int
}

func NewJobService(repo *repository.JobRepository, retentionDays int) *JobService {
	return &JobService{Repo: repo, RetentionDays: retentionDays}
}

// PurgeExpiredBookings deletes bookings whose end date fell outside the
// retention window. Scheduled daily from main.
func (s *JobService) PurgeExpiredBookings() error {
	cutoff := availability.DateOf(time.Now().UTC()).AddDays(-s.RetentionDays)
	log.Printf("Cron Job: Purging bookings ended before %s...", cutoff)

	deleted, err := s.Repo.DeleteBookingsEndedBefore(cutoff.String())
	if err != nil {
		return fmt.Errorf("cron job: failed to purge expired bookings: %w", err)
	}

	if deleted == 0 {
		log.Println("Cron Job: No expired bookings to purge.")
		return nil
	}
	log.Printf("Cron Job: Purged %d bookings ended before %s.", deleted, cutoff)
	return nil
}
