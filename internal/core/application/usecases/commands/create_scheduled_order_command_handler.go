package commands

import (
	"context"
	"errors"
	"fmt"

	"canteen/internal/core/domain/model/calendar"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/services"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

// CreateScheduledOrderCommandHandler plans one order per working day of the
// requested range and persists them atomically. The calendar is read and the
// orders written inside one transaction, so a half-materialized schedule can
// never be observed.
//
// Category lines resolve to the category's daily special for each day's
// weekday. A category with no special on some weekday is silently left off
// that day's order; a day where nothing resolves produces no order at all.
type CreateScheduledOrderCommandHandler struct {
	uowFactory UoWFactory
	catalog    ports.MenuCatalog
	users      ports.UserDirectory
	clock      kernel.Clock
}

// NewCreateScheduledOrderCommandHandler creates a handler for scheduled-order
// planning.
func NewCreateScheduledOrderCommandHandler(
	uowFactory UoWFactory,
	catalog ports.MenuCatalog,
	users ports.UserDirectory,
	clock kernel.Clock,
) CreateScheduledOrderCommandHandler {
	return CreateScheduledOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		users:      users,
		clock:      clock,
	}
}

// Handle processes the planning command and returns the identifiers of the
// created orders in day order. The range must start after today, end within
// the current calendar year and contain at least one working day.
func (h *CreateScheduledOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateScheduledOrderCommand,
) ([]int64, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	today := kernel.DateOf(now)
	if !cmd.Start().After(today) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"startDate", fmt.Errorf("start %s must be after today %s", cmd.Start(), today))
	}
	horizon := kernel.NewDate(today.Year(), 12, 31)
	if cmd.End().After(horizon) {
		return nil, errs.NewValueIsOutOfRangeError("endDate", cmd.End(), cmd.Start(), horizon)
	}

	known, err := h.users.Exists(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, errs.NewObjectNotFoundError("userID", cmd.UserID())
	}

	// Fixed lines resolve once; the same snapshot repeats on every day.
	fixedItems := make([]order.Item, 0, len(cmd.Items()))
	for _, selection := range cmd.Items() {
		menuItem, err := h.catalog.GetSchedulableItem(ctx, selection.MenuItemID())
		if err != nil {
			return nil, err
		}

		item, err := snapshotItem(menuItem, selection)
		if err != nil {
			return nil, err
		}
		fixedItems = append(fixedItems, item)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	days, err := h.expandWorkingDays(ctx, uow, cmd.Start(), cmd.End())
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"dateRange", fmt.Errorf("no working days between %s and %s", cmd.Start(), cmd.End()))
	}

	orders := make([]*order.Order, 0, len(days))
	for _, day := range days {
		items, err := h.resolveDayItems(ctx, fixedItems, cmd.Categories(), day)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			continue
		}

		dayOrder, err := order.NewScheduledOrder(cmd.UserID(), items, cmd.Comment(), day, now)
		if err != nil {
			return nil, err
		}
		orders = append(orders, dayOrder)
	}

	if len(orders) == 0 {
		return []int64{}, nil
	}

	if err = uow.OrderRepository().AddBatch(ctx, orders); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids, nil
}

func (h *CreateScheduledOrderCommandHandler) expandWorkingDays(
	ctx context.Context,
	uow UoW,
	start kernel.Date,
	end kernel.Date,
) ([]kernel.Date, error) {
	years := make([]int, 0, end.Year()-start.Year()+1)
	for y := start.Year(); y <= end.Year(); y++ {
		years = append(years, y)
	}

	holidays, err := uow.HolidayRepository().GetByYears(ctx, years)
	if err != nil {
		return nil, err
	}

	expander, err := services.NewWorkingDayExpander(calendar.NewCalendar(holidays))
	if err != nil {
		return nil, err
	}
	return expander.Expand(start, end)
}

func (h *CreateScheduledOrderCommandHandler) resolveDayItems(
	ctx context.Context,
	fixedItems []order.Item,
	categories []CategorySelection,
	day kernel.Date,
) ([]order.Item, error) {
	items := append([]order.Item(nil), fixedItems...)

	for _, selection := range categories {
		menuItem, err := h.catalog.GetDailySpecial(ctx, selection.CategoryID(), day.Weekday())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return nil, err
		}

		item, err := order.NewItem(
			menuItem.ID, menuItem.Name, menuItem.Price, selection.Quantity(), "")
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
