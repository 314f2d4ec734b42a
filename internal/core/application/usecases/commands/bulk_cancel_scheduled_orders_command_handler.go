package commands

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// BulkCancelFailure reports one order that could not be cancelled.
type BulkCancelFailure struct {
	OrderID int64
	Reason  string
}

// BulkCancelReport summarizes a bulk cancellation: which orders were
// cancelled and why the rest were not.
type BulkCancelReport struct {
	CancelledIDs []int64
	Failed       []BulkCancelFailure
}

// BulkCancelScheduledOrdersCommandHandler cancels a batch of scheduled orders
// with per-order isolation. Each order runs in its own transaction, so one
// ineligible or contested row never undoes the cancellations that succeeded.
type BulkCancelScheduledOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewBulkCancelScheduledOrdersCommandHandler creates a handler for bulk
// scheduled-order cancellation.
func NewBulkCancelScheduledOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
) BulkCancelScheduledOrdersCommandHandler {
	return BulkCancelScheduledOrdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the batch and returns a full per-order report. The command
// itself only fails on validation; individual failures land in the report.
func (h *BulkCancelScheduledOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd BulkCancelScheduledOrdersCommand,
) (BulkCancelReport, error) {
	if err := cmd.Validate(); err != nil {
		return BulkCancelReport{}, err
	}

	report := BulkCancelReport{
		CancelledIDs: make([]int64, 0, len(cmd.OrderIDs())),
	}
	today := kernel.DateOf(h.clock.Now())

	for _, orderID := range cmd.OrderIDs() {
		if err := h.cancelOne(ctx, orderID, cmd.UserID(), today); err != nil {
			report.Failed = append(report.Failed, BulkCancelFailure{
				OrderID: orderID,
				Reason:  err.Error(),
			})
			continue
		}
		report.CancelledIDs = append(report.CancelledIDs, orderID)
	}

	return report, nil
}

func (h *BulkCancelScheduledOrdersCommandHandler) cancelOne(
	ctx context.Context,
	orderID int64,
	userID int64,
	today kernel.Date,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	scheduledOrder, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if scheduledOrder.UserID() != userID {
		return errs.NewObjectNotFoundError("orderID", orderID)
	}

	previous := scheduledOrder.Status()
	if err = scheduledOrder.CancelScheduled(today); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, scheduledOrder, previous); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
