package commands

import (
	"context"
	"log/slog"

	"canteen/internal/core/ports"
)

// SettleAllOrdersCommandHandler settles every delivered order of one user in a
// single transaction. A concurrent lifecycle change on any of those orders
// aborts the whole batch, so the settled count always matches what the
// administrator saw on the bill.
type SettleAllOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
}

// NewSettleAllOrdersCommandHandler creates a handler for bulk settlement.
func NewSettleAllOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
) SettleAllOrdersCommandHandler {
	return SettleAllOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the bulk settlement command and returns how many orders
// were settled. A user with no delivered orders settles zero without error.
func (h *SettleAllOrdersCommandHandler) Handle(ctx context.Context, cmd SettleAllOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	deliveredOrders, err := orderRepo.GetAllDeliveredByUser(ctx, cmd.UserID())
	if err != nil {
		return 0, err
	}

	for _, settledOrder := range deliveredOrders {
		previous := settledOrder.Status()
		if err = settledOrder.Settle(); err != nil {
			return 0, err
		}
		if err = orderRepo.UpdateStatus(ctx, settledOrder, previous); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, settledOrder := range deliveredOrders {
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
	}
	return len(deliveredOrders), nil
}
