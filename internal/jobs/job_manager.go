package jobs

import (
	"fmt"
	"log/slog"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	weekendGenerationJob *WeekendGenerationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	generateWeekendsHandler commands.GenerateWeekendsCommandHandler,
	clock kernel.Clock,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		weekendGenerationJob: NewWeekendGenerationJob(generateWeekendsHandler, clock, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.weekendGenerationJob.Start(); err != nil {
		return fmt.Errorf("failed to start weekend generation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.weekendGenerationJob.Stop()
}
