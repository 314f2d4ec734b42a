package jobs

import (
	"context"
	"log/slog"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// WeekendGenerationJob keeps the holiday calendar seeded with weekend rows.
// It runs once at startup for the current year and then every December for
// the year ahead, so scheduling always has a fully populated calendar.
type WeekendGenerationJob struct {
	handler commands.GenerateWeekendsCommandHandler
	clock   kernel.Clock
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewWeekendGenerationJob creates a job that generates weekend calendar rows.
func NewWeekendGenerationJob(
	handler commands.GenerateWeekendsCommandHandler,
	clock kernel.Clock,
	logger *slog.Logger,
) *WeekendGenerationJob {
	return &WeekendGenerationJob{
		handler: handler,
		clock:   clock,
		cron:    cron.New(),
		logger:  logger.With("component", "weekend_generation_job"),
	}
}

// Start seeds the current year immediately and schedules the December run
// that prepares the next year.
func (j *WeekendGenerationJob) Start() error {
	j.generate(j.clock.Now().Year())

	// 02:00 on December 1st.
	_, err := j.cron.AddFunc("0 2 1 12 *", func() {
		j.generate(j.clock.Now().Year() + 1)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Weekend generation job started")
	return nil
}

// Stop stops the weekend generation job.
func (j *WeekendGenerationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Weekend generation job stopped")
}

func (j *WeekendGenerationJob) generate(year int) {
	ctx := context.Background()

	cmd, err := commands.NewGenerateWeekendsCommand(year)
	if err != nil {
		j.logger.ErrorContext(ctx, "Weekend generation job failed", "year", year, "error", err)
		return
	}

	report, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Weekend generation job failed", "year", year, "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Weekend generation completed",
		"year", year,
		"inserted", report.Inserted,
		"skipped", report.Skipped,
	)
}
