package queries

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// appendCreatedAtRange narrows a billing query to orders created inside the
// period. The end bound is inclusive as a civil date, so the predicate runs to
// the start of the following day.
func appendCreatedAtRange(sql string, args []any, start, end kernel.Date) (string, []any) {
	if !start.IsZero() {
		sql += ` AND created_at >= ?`
		args = append(args, start.ToTime())
	}
	if !end.IsZero() {
		sql += ` AND created_at < ?`
		args = append(args, end.AddDays(1).ToTime())
	}
	return sql, args
}

// GetBillSummaryQueryHandler assembles one user's bill from the database.
// Reads the delivered and settled orders with their lines and folds them with
// BuildBillSummary; pending, confirmed and cancelled orders never bill.
type GetBillSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetBillSummaryQueryHandler creates a handler for bill queries.
// Requires a GORM database connection for query execution.
func NewGetBillSummaryQueryHandler(db *gorm.DB) GetBillSummaryQueryHandler {
	return GetBillSummaryQueryHandler{db: db}
}

// Handle executes the bill query. A user with no billable orders gets an
// empty bill with zero totals rather than an error.
func (h GetBillSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetBillSummaryQuery,
) (GetBillSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBillSummaryQueryResponse{}, err
	}

	sql := `
		SELECT
			id,
			status,
			disputed,
			total_price_paise,
			created_at
		FROM orders
		WHERE user_id = ? AND status IN (?, ?)`
	args := []any{query.UserID(), order.Delivered.String(), order.Settled.String()}
	sql, args = appendCreatedAtRange(sql, args, query.Start(), query.End())
	sql += ` ORDER BY id`

	orderRows := make([]BillOrderRow, 0)
	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return GetBillSummaryQueryResponse{}, err
	}
	defer rows.Close()

	orderIDs := make([]int64, 0)
	for rows.Next() {
		var row BillOrderRow
		var status string
		var createdAt time.Time

		if err = rows.Scan(&row.OrderID, &status, &row.Disputed, &row.TotalPaise, &createdAt); err != nil {
			return GetBillSummaryQueryResponse{}, err
		}
		row.Settled = status == order.Settled.String()
		row.CreatedAt = kernel.DateOf(createdAt)
		orderRows = append(orderRows, row)
		orderIDs = append(orderIDs, row.OrderID)
	}
	if err = rows.Err(); err != nil {
		return GetBillSummaryQueryResponse{}, err
	}

	itemRows := make([]BillItemRow, 0)
	if len(orderIDs) > 0 {
		items, itemsErr := h.db.WithContext(ctx).Raw(`
			SELECT
				order_id,
				name_at_order,
				proportion_name,
				quantity,
				price_at_order_paise * quantity
			FROM order_items
			WHERE order_id IN ?
			ORDER BY order_id, id
		`, orderIDs).Rows()
		if itemsErr != nil {
			return GetBillSummaryQueryResponse{}, itemsErr
		}
		defer items.Close()

		for items.Next() {
			var row BillItemRow
			if err = items.Scan(
				&row.OrderID, &row.Name, &row.ProportionName, &row.Quantity, &row.AmountPaise,
			); err != nil {
				return GetBillSummaryQueryResponse{}, err
			}
			itemRows = append(itemRows, row)
		}
		if err = items.Err(); err != nil {
			return GetBillSummaryQueryResponse{}, err
		}
	}

	return BuildBillSummary(query.UserID(), orderRows, itemRows), nil
}
