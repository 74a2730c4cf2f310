package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pickupReminderJob *PickupReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(nextPickupHandler NextPickupHandler, logger *slog.Logger) *JobManager {
	return &JobManager{
		pickupReminderJob: NewPickupReminderJob(nextPickupHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pickupReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start pickup reminder job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pickupReminderJob.Stop()
}
