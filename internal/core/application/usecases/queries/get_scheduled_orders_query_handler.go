package queries

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetScheduledOrdersQueryHandler lists a user's pending scheduled orders from
// today onward, in delivery-day order. Past and already-progressed orders
// belong to the history query instead.
type GetScheduledOrdersQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

// NewGetScheduledOrdersQueryHandler creates a handler for schedule listings.
func NewGetScheduledOrdersQueryHandler(db *gorm.DB, clock kernel.Clock) GetScheduledOrdersQueryHandler {
	return GetScheduledOrdersQueryHandler{db: db, clock: clock}
}

// Handle executes the schedule listing query.
func (h GetScheduledOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetScheduledOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	today := kernel.DateOf(h.clock.Now())
	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			disputed,
			created_by_admin,
			total_price_paise,
			comment,
			scheduled_for_date,
			created_at
		FROM orders
		WHERE user_id = ? AND is_scheduled AND status = ? AND scheduled_for_date >= ?
		ORDER BY scheduled_for_date, id
	`, query.UserID(), order.Pending.String(), today.ToTime()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[int64]int)
	orderIDs := make([]int64, 0)
	for rows.Next() {
		var resp OrderResponse
		var totalPaise int64
		var scheduledFor time.Time

		if err = rows.Scan(
			&resp.ID, &resp.Status, &resp.Disputed, &resp.CreatedByAdmin,
			&totalPaise, &resp.Comment, &scheduledFor, &resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		resp.IsScheduled = true
		resp.TotalPrice = kernel.NewMoneyFromPaise(totalPaise)
		day := kernel.DateOf(scheduledFor.UTC())
		resp.ScheduledFor = &day
		resp.Items = make([]OrderItemResponse, 0)

		index[resp.ID] = len(orders)
		orderIDs = append(orderIDs, resp.ID)
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			name_at_order,
			proportion_name,
			quantity,
			price_at_order_paise
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer items.Close()

	for items.Next() {
		var orderID int64
		var item OrderItemResponse
		var pricePaise int64

		if err = items.Scan(
			&orderID, &item.Name, &item.ProportionName, &item.Quantity, &pricePaise,
		); err != nil {
			return nil, err
		}

		item.Price = kernel.NewMoneyFromPaise(pricePaise)
		i := index[orderID]
		orders[i].Items = append(orders[i].Items, item)
	}
	if err = items.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
