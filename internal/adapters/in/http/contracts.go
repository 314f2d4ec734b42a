package http

import (
	"time"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemSelectionRequest is one catalog line of an order request.
type ItemSelectionRequest struct {
	MenuItemID     int64  `json:"menu_item_id"`
	Quantity       int    `json:"quantity"`
	ProportionName string `json:"proportion_name,omitempty"`
}

// CategorySelectionRequest is one recurring category line of a schedule request.
type CategorySelectionRequest struct {
	CategoryID int64 `json:"category_id"`
	Quantity   int   `json:"quantity"`
}

// CreateOrderRequest places an ad-hoc order for today.
type CreateOrderRequest struct {
	UserID         int64                  `json:"user_id"`
	CreatedByAdmin bool                   `json:"created_by_admin,omitempty"`
	Items          []ItemSelectionRequest `json:"items"`
	Comment        string                 `json:"comment,omitempty"`
}

// CreateScheduledOrderRequest plans orders for every working day in a range.
type CreateScheduledOrderRequest struct {
	UserID     int64                      `json:"user_id"`
	StartDate  string                     `json:"start_date"`
	EndDate    string                     `json:"end_date"`
	Items      []ItemSelectionRequest     `json:"items,omitempty"`
	Categories []CategorySelectionRequest `json:"categories,omitempty"`
	Comment    string                     `json:"comment,omitempty"`
}

// OrderOwnerRequest identifies the acting owner of a per-order operation.
type OrderOwnerRequest struct {
	UserID int64 `json:"user_id"`
}

// AdvanceOrderRequest names the target status of an advance operation.
type AdvanceOrderRequest struct {
	Target string `json:"target"`
}

// BulkCancelRequest withdraws a batch of scheduled orders.
type BulkCancelRequest struct {
	UserID   int64   `json:"user_id"`
	OrderIDs []int64 `json:"order_ids"`
}

// AddHolidayRequest declares one holiday.
type AddHolidayRequest struct {
	Date        string `json:"date"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// GenerateWeekendsRequest populates one year's weekend calendar rows.
type GenerateWeekendsRequest struct {
	Year int `json:"year"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// CreatedBatchResponse returns the identifiers of a created order batch.
type CreatedBatchResponse struct {
	OrderIDs []int64 `json:"order_ids"`
}

// SettleAllResponse reports how many orders a settlement run closed.
type SettleAllResponse struct {
	SettledCount int `json:"settled_count"`
}

// WeekendGenerationResponse reports one weekend generation run.
type WeekendGenerationResponse struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// BulkCancelFailureResponse is one order that could not be cancelled.
type BulkCancelFailureResponse struct {
	OrderID int64  `json:"order_id"`
	Reason  string `json:"reason"`
}

// BulkCancelResponse is the full per-order report of a bulk cancellation.
type BulkCancelResponse struct {
	Cancelled    int                         `json:"cancelled"`
	CancelledIDs []int64                     `json:"cancelled_ids"`
	Failed       []BulkCancelFailureResponse `json:"failed"`
}

// OrderItemResponse is one line of an order in a listing.
type OrderItemResponse struct {
	Name           string       `json:"name"`
	ProportionName string       `json:"proportion_name,omitempty"`
	Quantity       int          `json:"quantity"`
	Price          kernel.Money `json:"price"`
}

// OrderResponse is one order in a history or schedule listing.
type OrderResponse struct {
	ID             int64               `json:"id"`
	Status         string              `json:"status"`
	Disputed       bool                `json:"disputed"`
	CreatedByAdmin bool                `json:"created_by_admin"`
	TotalPrice     kernel.Money        `json:"total_price"`
	Comment        string              `json:"comment,omitempty"`
	IsScheduled    bool                `json:"is_scheduled"`
	ScheduledFor   *kernel.Date        `json:"scheduled_for,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	Items          []OrderItemResponse `json:"items"`
}

// BillItemLineResponse is one aggregated row of a bill's item breakdown.
type BillItemLineResponse struct {
	Name           string       `json:"name"`
	ProportionName string       `json:"proportion_name,omitempty"`
	Quantity       int          `json:"quantity"`
	Amount         kernel.Money `json:"amount"`
}

// BillOrderLineResponse is one billable order listed on a bill.
type BillOrderLineResponse struct {
	ID        int64        `json:"id"`
	Settled   bool         `json:"settled"`
	Disputed  bool         `json:"disputed"`
	Total     kernel.Money `json:"total"`
	CreatedAt kernel.Date  `json:"created_at"`
}

// BillSummaryResponse is one user's settlement bill. The start and end dates
// echo the requested billing period; an open bound is omitted.
type BillSummaryResponse struct {
	UserID            int64                   `json:"user_id"`
	StartDate         *kernel.Date            `json:"start_date,omitempty"`
	EndDate           *kernel.Date            `json:"end_date,omitempty"`
	OutstandingTotal  kernel.Money            `json:"outstanding_total"`
	SettledTotal      kernel.Money            `json:"settled_total"`
	GrandTotal        kernel.Money            `json:"grand_total"`
	OutstandingOrders int                     `json:"outstanding_orders"`
	SettledOrders     int                     `json:"settled_orders"`
	TotalOrders       int                     `json:"total_orders"`
	DisputedOrders    int                     `json:"disputed_orders"`
	ItemsBreakdown    []BillItemLineResponse  `json:"items_breakdown"`
	Orders            []BillOrderLineResponse `json:"orders"`
}

// UserBillRowResponse is one user's line in the billing overview.
type UserBillRowResponse struct {
	UserID           int64        `json:"user_id"`
	FullName         string       `json:"full_name"`
	Email            string       `json:"email"`
	OutstandingTotal kernel.Money `json:"outstanding_total"`
	SettledTotal     kernel.Money `json:"settled_total"`
	OrderCount       int          `json:"order_count"`
}

// BillGrandTotalsResponse summarizes the whole billing overview.
type BillGrandTotalsResponse struct {
	TotalUsers       int          `json:"total_users"`
	TotalOrders      int          `json:"total_orders"`
	OutstandingTotal kernel.Money `json:"outstanding_total"`
	SettledTotal     kernel.Money `json:"settled_total"`
}

// AllUsersBillsResponse lists per-user bills, largest debtor first.
type AllUsersBillsResponse struct {
	Users       []UserBillRowResponse   `json:"users"`
	GrandTotals BillGrandTotalsResponse `json:"grand_totals"`
}

// HolidayResponse is one calendar row.
type HolidayResponse struct {
	ID          int64       `json:"id"`
	Date        kernel.Date `json:"date"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	IsWeekend   bool        `json:"is_weekend"`
}

// SchedulingConstraintsResponse bounds new schedules.
type SchedulingConstraintsResponse struct {
	Today          kernel.Date   `json:"today"`
	EarliestStart  kernel.Date   `json:"earliest_start"`
	LatestEnd      kernel.Date   `json:"latest_end"`
	NonWorkingDays []kernel.Date `json:"non_working_days"`
}

func toItemSelections(requests []ItemSelectionRequest) ([]commands.ItemSelection, error) {
	selections := make([]commands.ItemSelection, 0, len(requests))
	for _, r := range requests {
		selection, err := commands.NewItemSelection(r.MenuItemID, r.Quantity, r.ProportionName)
		if err != nil {
			return nil, err
		}
		selections = append(selections, selection)
	}
	return selections, nil
}

func toCategorySelections(requests []CategorySelectionRequest) ([]commands.CategorySelection, error) {
	selections := make([]commands.CategorySelection, 0, len(requests))
	for _, r := range requests {
		selection, err := commands.NewCategorySelection(r.CategoryID, r.Quantity)
		if err != nil {
			return nil, err
		}
		selections = append(selections, selection)
	}
	return selections, nil
}

func toOrderResponses(orders []queries.OrderResponse) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		items := make([]OrderItemResponse, len(o.Items))
		for j, item := range o.Items {
			items[j] = OrderItemResponse{
				Name:           item.Name,
				ProportionName: item.ProportionName,
				Quantity:       item.Quantity,
				Price:          item.Price,
			}
		}
		response[i] = OrderResponse{
			ID:             o.ID,
			Status:         o.Status,
			Disputed:       o.Disputed,
			CreatedByAdmin: o.CreatedByAdmin,
			TotalPrice:     o.TotalPrice,
			Comment:        o.Comment,
			IsScheduled:    o.IsScheduled,
			ScheduledFor:   o.ScheduledFor,
			CreatedAt:      o.CreatedAt,
			Items:          items,
		}
	}
	return response
}

func toBillSummaryResponse(bill queries.GetBillSummaryQueryResponse, start, end kernel.Date) BillSummaryResponse {
	breakdown := make([]BillItemLineResponse, len(bill.ItemsBreakdown))
	for i, line := range bill.ItemsBreakdown {
		breakdown[i] = BillItemLineResponse{
			Name:           line.Name,
			ProportionName: line.ProportionName,
			Quantity:       line.Quantity,
			Amount:         line.Amount,
		}
	}
	orders := make([]BillOrderLineResponse, len(bill.Orders))
	for i, line := range bill.Orders {
		orders[i] = BillOrderLineResponse{
			ID:        line.OrderID,
			Settled:   line.Settled,
			Disputed:  line.Disputed,
			Total:     line.Total,
			CreatedAt: line.CreatedAt,
		}
	}
	response := BillSummaryResponse{
		UserID:            bill.UserID,
		OutstandingTotal:  bill.OutstandingTotal,
		SettledTotal:      bill.SettledTotal,
		GrandTotal:        bill.GrandTotal,
		OutstandingOrders: bill.OutstandingOrders,
		SettledOrders:     bill.SettledOrders,
		TotalOrders:       bill.OutstandingOrders + bill.SettledOrders,
		DisputedOrders:    bill.DisputedOrders,
		ItemsBreakdown:    breakdown,
		Orders:            orders,
	}
	if !start.IsZero() {
		response.StartDate = &start
	}
	if !end.IsZero() {
		response.EndDate = &end
	}
	return response
}

func toAllUsersBillsResponse(overview queries.GetAllUsersBillsQueryResponse) AllUsersBillsResponse {
	users := make([]UserBillRowResponse, len(overview.Users))
	for i, row := range overview.Users {
		users[i] = UserBillRowResponse{
			UserID:           row.UserID,
			FullName:         row.FullName,
			Email:            row.Email,
			OutstandingTotal: row.OutstandingTotal,
			SettledTotal:     row.SettledTotal,
			OrderCount:       row.OrderCount,
		}
	}
	return AllUsersBillsResponse{
		Users: users,
		GrandTotals: BillGrandTotalsResponse{
			TotalUsers:       overview.GrandTotals.TotalUsers,
			TotalOrders:      overview.GrandTotals.TotalOrders,
			OutstandingTotal: overview.GrandTotals.OutstandingTotal,
			SettledTotal:     overview.GrandTotals.SettledTotal,
		},
	}
}

func toBulkCancelResponse(report commands.BulkCancelReport) BulkCancelResponse {
	failed := make([]BulkCancelFailureResponse, len(report.Failed))
	for i, failure := range report.Failed {
		failed[i] = BulkCancelFailureResponse{
			OrderID: failure.OrderID,
			Reason:  failure.Reason,
		}
	}
	return BulkCancelResponse{
		Cancelled:    len(report.CancelledIDs),
		CancelledIDs: report.CancelledIDs,
		Failed:       failed,
	}
}

func toHolidayResponses(holidays []queries.HolidayResponse) []HolidayResponse {
	response := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		response[i] = HolidayResponse{
			ID:          h.ID,
			Date:        h.Date,
			Name:        h.Name,
			Description: h.Description,
			IsWeekend:   h.IsWeekend,
		}
	}
	return response
}
