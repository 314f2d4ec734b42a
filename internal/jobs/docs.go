// Package jobs provides scheduled background tasks for the canteen service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order scheduling.
//
// # Available Jobs
//
// 1. WeekendGenerationJob - Seeds the holiday calendar with weekend rows for
// the current year at startup and for the next year every December
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(generateWeekendsHandler, clock, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Generation reruns are idempotent: dates that already have a calendar row
// are skipped, so a job firing twice never duplicates weekend entries.
package jobs
