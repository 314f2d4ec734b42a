package commands

import (
	"context"

	"canteen/internal/core/domain/model/calendar"
)

// AddHolidayCommandHandler handles holiday declarations. Declared holidays
// take effect for future working-day expansion only; orders already
// materialized for the day stay in place.
type AddHolidayCommandHandler struct {
	uowFactory HolidayUoWFactory
}

// NewAddHolidayCommandHandler creates a handler for holiday declaration.
func NewAddHolidayCommandHandler(uowFactory HolidayUoWFactory) AddHolidayCommandHandler {
	return AddHolidayCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the declaration command and returns the new holiday's
// identifier.
func (h *AddHolidayCommandHandler) Handle(ctx context.Context, cmd AddHolidayCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	holiday, err := calendar.NewHoliday(cmd.Date(), cmd.Name(), cmd.Description())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.HolidayRepository().Add(ctx, holiday); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return holiday.ID(), nil
}
