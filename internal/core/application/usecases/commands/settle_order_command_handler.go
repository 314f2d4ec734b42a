package commands

import (
	"context"
	"log/slog"

	"canteen/internal/core/ports"
)

// SettleOrderCommandHandler handles single-order settlement. Settlement only
// applies to delivered orders and is monotonic; a settled order never returns
// to the outstanding balance.
type SettleOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
}

// NewSettleOrderCommandHandler creates a handler for settlement operations.
func NewSettleOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
) SettleOrderCommandHandler {
	return SettleOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the settlement command.
func (h *SettleOrderCommandHandler) Handle(ctx context.Context, cmd SettleOrderCommand) error {
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
	settledOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := settledOrder.Status()
	if err = settledOrder.Settle(); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, settledOrder, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notification := ports.Notification{
		EventType: ports.NotificationOrderSettled,
		OrderID:   settledOrder.ID(),
		UserID:    settledOrder.UserID(),
		Status:    settledOrder.Status().String(),
	}
	if err = h.publisher.Publish(ctx, notification); err != nil {
		slog.Warn("failed to publish order notification",
			"event", ports.NotificationOrderSettled, "orderId", settledOrder.ID(), "error", err)
	}
	return nil
}
