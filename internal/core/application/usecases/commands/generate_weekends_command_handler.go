package commands

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/calendar"
	"canteen/internal/core/domain/model/kernel"
)

// WeekendGenerationReport summarizes one generation run. Skipped counts days
// that already had a calendar row, so reruns are harmless.
type WeekendGenerationReport struct {
	Inserted int
	Skipped  int
}

// GenerateWeekendsCommandHandler walks one calendar year and inserts a
// weekend row for every Saturday and Sunday not already present. Declared
// holidays on weekend dates are never touched.
type GenerateWeekendsCommandHandler struct {
	uowFactory HolidayUoWFactory
}

// NewGenerateWeekendsCommandHandler creates a handler for weekend generation.
func NewGenerateWeekendsCommandHandler(uowFactory HolidayUoWFactory) GenerateWeekendsCommandHandler {
	return GenerateWeekendsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the generation command and reports how many rows were
// inserted and how many dates were already covered.
func (h *GenerateWeekendsCommandHandler) Handle(
	ctx context.Context,
	cmd GenerateWeekendsCommand,
) (WeekendGenerationReport, error) {
	if err := cmd.Validate(); err != nil {
		return WeekendGenerationReport{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return WeekendGenerationReport{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	holidayRepo := uow.HolidayRepository()
	report := WeekendGenerationReport{}

	start := kernel.NewDate(cmd.Year(), time.January, 1)
	end := kernel.NewDate(cmd.Year(), time.December, 31)
	for day := start; !day.After(end); day = day.AddDays(1) {
		if day.Weekday() != time.Saturday && day.Weekday() != time.Sunday {
			continue
		}

		weekend, err := calendar.NewWeekendHoliday(day)
		if err != nil {
			return WeekendGenerationReport{}, err
		}

		inserted, err := holidayRepo.AddWeekend(ctx, weekend)
		if err != nil {
			return WeekendGenerationReport{}, err
		}
		if inserted {
			report.Inserted++
		} else {
			report.Skipped++
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return WeekendGenerationReport{}, err
	}

	return report, nil
}
