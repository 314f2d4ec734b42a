package commands

import (
	"context"
	"log/slog"

	"canteen/internal/core/ports"
)

// AdvanceOrderStatusCommandHandler handles the privileged kitchen workflow of
// moving orders forward. The conditional status write means two operators
// advancing the same order concurrently produce one winner and one conflict.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status advancement.
func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the advancement command.
func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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
	advancedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := advancedOrder.Status()
	if err = advancedOrder.AdvanceTo(cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, advancedOrder, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notification := ports.Notification{
		EventType: ports.NotificationOrderAdvanced,
		OrderID:   advancedOrder.ID(),
		UserID:    advancedOrder.UserID(),
		Status:    advancedOrder.Status().String(),
	}
	if err = h.publisher.Publish(ctx, notification); err != nil {
		slog.Warn("failed to publish order notification",
			"event", ports.NotificationOrderAdvanced, "orderId", advancedOrder.ID(), "error", err)
	}
	return nil
}
