package queries

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAllUsersBillsQueryHandler builds the admin billing overview straight
// from SQL aggregation. Users without billable orders are left out.
type GetAllUsersBillsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllUsersBillsQueryHandler creates a handler for the billing overview.
// Requires a GORM database connection for query execution.
func NewGetAllUsersBillsQueryHandler(db *gorm.DB) GetAllUsersBillsQueryHandler {
	return GetAllUsersBillsQueryHandler{db: db}
}

// Handle executes the overview query. Rows come back sorted by outstanding
// balance descending, ties broken by user id.
func (h GetAllUsersBillsQueryHandler) Handle(
	ctx context.Context,
	query GetAllUsersBillsQuery,
) (GetAllUsersBillsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllUsersBillsQueryResponse{}, err
	}

	response := GetAllUsersBillsQueryResponse{Users: make([]UserBillRow, 0)}

	sql := `
		SELECT
			u.id,
			u.full_name,
			u.email,
			COALESCE(SUM(o.total_price_paise) FILTER (WHERE o.status = ?), 0) AS outstanding,
			COALESCE(SUM(o.total_price_paise) FILTER (WHERE o.status = ?), 0) AS settled,
			COUNT(o.id) AS order_count
		FROM users u
		JOIN orders o ON o.user_id = u.id AND o.status IN (?, ?)`
	args := []any{
		order.Delivered.String(), order.Settled.String(),
		order.Delivered.String(), order.Settled.String(),
	}
	if !query.Start().IsZero() {
		sql += ` AND o.created_at >= ?`
		args = append(args, query.Start().ToTime())
	}
	if !query.End().IsZero() {
		sql += ` AND o.created_at < ?`
		args = append(args, query.End().AddDays(1).ToTime())
	}
	if query.UserID() != 0 {
		sql += ` WHERE u.id = ?`
		args = append(args, query.UserID())
	}
	sql += `
		GROUP BY u.id, u.full_name, u.email
		ORDER BY outstanding DESC, u.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return GetAllUsersBillsQueryResponse{}, err
	}
	defer rows.Close()

	var outstandingPaise, settledPaise int64
	for rows.Next() {
		var row UserBillRow
		var outstanding, settled int64

		if err = rows.Scan(
			&row.UserID, &row.FullName, &row.Email, &outstanding, &settled, &row.OrderCount,
		); err != nil {
			return GetAllUsersBillsQueryResponse{}, err
		}

		row.OutstandingTotal = kernel.NewMoneyFromPaise(outstanding)
		row.SettledTotal = kernel.NewMoneyFromPaise(settled)
		response.Users = append(response.Users, row)

		outstandingPaise += outstanding
		settledPaise += settled
		response.GrandTotals.TotalOrders += row.OrderCount
	}
	if err = rows.Err(); err != nil {
		return GetAllUsersBillsQueryResponse{}, err
	}

	response.GrandTotals.TotalUsers = len(response.Users)
	response.GrandTotals.OutstandingTotal = kernel.NewMoneyFromPaise(outstandingPaise)
	response.GrandTotals.SettledTotal = kernel.NewMoneyFromPaise(settledPaise)
	return response, nil
}
