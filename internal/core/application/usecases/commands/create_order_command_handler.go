package commands

import (
	"context"
	"log/slog"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for ad-hoc order
// creation. Item names and prices are snapshotted from the catalog at this
// point; later menu edits do not affect the stored order.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.MenuCatalog
	users      ports.UserDirectory
	clock      kernel.Clock
	publisher  ports.NotificationPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.MenuCatalog,
	users ports.UserDirectory,
	clock kernel.Clock,
	publisher ports.NotificationPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		users:      users,
		clock:      clock,
		publisher:  publisher,
	}
}

// Handle processes the order creation command and returns the new order's
// identifier. The order starts in Pending status; a creation notification is
// published after the transaction commits.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	known, err := h.users.Exists(ctx, cmd.UserID())
	if err != nil {
		return 0, err
	}
	if !known {
		return 0, errs.NewObjectNotFoundError("userID", cmd.UserID())
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, selection := range cmd.Items() {
		menuItem, err := h.catalog.GetItem(ctx, selection.MenuItemID())
		if err != nil {
			return 0, err
		}

		item, err := snapshotItem(menuItem, selection)
		if err != nil {
			return 0, err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(
		cmd.UserID(), cmd.CreatedByAdmin(), items, cmd.Comment(), h.clock.Now())
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

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.notify(ctx, newOrder)
	return newOrder.ID(), nil
}

// notify publishes best effort; order creation never fails on a broker error.
func (h *CreateOrderCommandHandler) notify(ctx context.Context, o *order.Order) {
	err := h.publisher.Publish(ctx, ports.Notification{
		EventType: ports.NotificationOrderCreated,
		OrderID:   o.ID(),
		UserID:    o.UserID(),
		Status:    o.Status().String(),
	})
	if err != nil {
		slog.Warn("failed to publish order notification",
			"event", ports.NotificationOrderCreated, "orderId", o.ID(), "error", err)
	}
}
