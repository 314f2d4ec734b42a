package commands

import (
	"context"
	"log/slog"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

// DisputeOrderCommandHandler handles dispute requests. The dispute flag is
// orthogonal to the status state machine; raising it never changes the order's
// status. The write is conditional on the row not yet being disputed, so two
// racing dispute requests resolve to exactly one winner.
type DisputeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	publisher  ports.NotificationPublisher
}

// NewDisputeOrderCommandHandler creates a handler for dispute operations.
func NewDisputeOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	publisher ports.NotificationPublisher,
) DisputeOrderCommandHandler {
	return DisputeOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		publisher:  publisher,
	}
}

// Handle processes the dispute command.
// Orders belonging to another user are reported as not found.
func (h *DisputeOrderCommandHandler) Handle(ctx context.Context, cmd DisputeOrderCommand) error {
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
	disputedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if disputedOrder.UserID() != cmd.UserID() {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	if err = disputedOrder.Dispute(h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.UpdateDisputed(ctx, disputedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notification := ports.Notification{
		EventType: ports.NotificationOrderDisputed,
		OrderID:   disputedOrder.ID(),
		UserID:    disputedOrder.UserID(),
		Status:    disputedOrder.Status().String(),
	}
	if err = h.publisher.Publish(ctx, notification); err != nil {
		slog.Warn("failed to publish order notification",
			"event", ports.NotificationOrderDisputed, "orderId", disputedOrder.ID(), "error", err)
	}
	return nil
}
