package queries

import (
	"context"
	"database/sql"

	"canteen/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler retrieves a user's full order history with items,
// most recent order first.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the history query.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			disputed,
			created_by_admin,
			total_price_paise,
			comment,
			is_scheduled,
			scheduled_for_date,
			created_at
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[int64]int)
	orderIDs := make([]int64, 0)
	for rows.Next() {
		var resp OrderResponse
		var totalPaise int64
		var scheduledFor sql.NullTime

		if err = rows.Scan(
			&resp.ID, &resp.Status, &resp.Disputed, &resp.CreatedByAdmin,
			&totalPaise, &resp.Comment, &resp.IsScheduled, &scheduledFor, &resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		resp.TotalPrice = kernel.NewMoneyFromPaise(totalPaise)
		if scheduledFor.Valid {
			day := kernel.DateOf(scheduledFor.Time.UTC())
			resp.ScheduledFor = &day
		}
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
