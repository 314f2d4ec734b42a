package commands

import (
	"context"
	"log/slog"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

// CancelOrderCommandHandler handles owner-initiated cancellations. Eligibility
// is decided by the aggregate against the wall clock; the write is conditional
// on the status read within the transaction, so a concurrent lifecycle change
// surfaces as a conflict instead of a lost update.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	publisher  ports.NotificationPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	publisher ports.NotificationPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
// Orders belonging to another user are reported as not found.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	cancelOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if cancelOrder.UserID() != cmd.UserID() {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	previous := cancelOrder.Status()
	if err = cancelOrder.Cancel(h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, cancelOrder, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notification := ports.Notification{
		EventType: ports.NotificationOrderCancelled,
		OrderID:   cancelOrder.ID(),
		UserID:    cancelOrder.UserID(),
		Status:    cancelOrder.Status().String(),
	}
	if err = h.publisher.Publish(ctx, notification); err != nil {
		slog.Warn("failed to publish order notification",
			"event", ports.NotificationOrderCancelled, "orderId", cancelOrder.ID(), "error", err)
	}
	return nil
}
