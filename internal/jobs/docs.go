// Package jobs provides scheduled background tasks for the mart delivery service.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field in the schedule.
//
// # Available Jobs
//
// MartLocationBackfillJob geocodes marts whose address could not be resolved when they
// were registered. Until it succeeds such a mart cannot serve as the depot of a
// delivery batch. The default schedule is every five minutes; runs never overlap.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(&backfillHandler, cfg.MartBackfillSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Per-mart failures are logged
// by the command handler and do not stop the batch.
package jobs
