package jobs

import (
	"fmt"
	"log/slog"

	"martdelivery/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	martLocationBackfillJob *MartLocationBackfillJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	backfillHandler *commands.BackfillMartLocationsCommandHandler,
	backfillSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		martLocationBackfillJob: NewMartLocationBackfillJob(
			backfillHandler, backfillSchedule, commands.DefaultBackfillBatchSize, logger,
		),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.martLocationBackfillJob.Start(); err != nil {
		return fmt.Errorf("failed to start mart location backfill job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.martLocationBackfillJob.Stop()
}
