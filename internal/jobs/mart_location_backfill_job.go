package jobs

import (
	"context"
	"log/slog"
	"time"

	"martdelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultBackfillSchedule runs the backfill every five minutes (seconds field first).
const DefaultBackfillSchedule = "0 */5 * * * *"

type backfillHandler interface {
	Handle(ctx context.Context, cmd commands.BackfillMartLocationsCommand) (int, error)
}

// MartLocationBackfillJob periodically geocodes marts that were stored without a location.
type MartLocationBackfillJob struct {
	handler   backfillHandler
	schedule  string
	batchSize int
	timeout   time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewMartLocationBackfillJob(
	handler backfillHandler,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *MartLocationBackfillJob {
	if schedule == "" {
		schedule = DefaultBackfillSchedule
	}
	if batchSize <= 0 {
		batchSize = commands.DefaultBackfillBatchSize
	}
	return &MartLocationBackfillJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		timeout:   time.Minute,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "mart_location_backfill_job"),
	}
}

func (j *MartLocationBackfillJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Mart location backfill job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running backfill to finish.
func (j *MartLocationBackfillJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Mart location backfill job stopped")
}

func (j *MartLocationBackfillJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	cmd, err := commands.NewBackfillMartLocationsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Mart location backfill job misconfigured", "error", err)
		return
	}

	resolved, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Mart location backfill job failed", "error", err)
		return
	}
	if resolved > 0 {
		j.logger.InfoContext(ctx, "Mart locations resolved", "count", resolved)
	}
}
