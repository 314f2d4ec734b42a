package queries

import (
	"sort"

	"canteen/internal/core/domain/model/kernel"
)

// BillOrderRow is one billable order as read from storage. Only delivered and
// settled orders belong in a bill; callers filter before aggregating.
type BillOrderRow struct {
	OrderID    int64
	Settled    bool
	Disputed   bool
	TotalPaise int64
	CreatedAt  kernel.Date
}

// BillItemRow is one order line as read from storage.
type BillItemRow struct {
	OrderID        int64
	Name           string
	ProportionName string
	Quantity       int
	AmountPaise    int64
}

// BuildBillSummary folds billable orders and their lines into a bill.
// Item lines merge on name and proportion; the breakdown is sorted by amount,
// largest first, with name as the tiebreaker.
func BuildBillSummary(userID int64, orders []BillOrderRow, items []BillItemRow) GetBillSummaryQueryResponse {
	response := GetBillSummaryQueryResponse{UserID: userID}

	billable := make(map[int64]struct{}, len(orders))
	response.Orders = make([]BillOrderLine, 0, len(orders))
	var outstandingPaise, settledPaise int64
	for _, row := range orders {
		billable[row.OrderID] = struct{}{}
		response.Orders = append(response.Orders, BillOrderLine{
			OrderID:   row.OrderID,
			Settled:   row.Settled,
			Disputed:  row.Disputed,
			Total:     kernel.NewMoneyFromPaise(row.TotalPaise),
			CreatedAt: row.CreatedAt,
		})
		if row.Settled {
			settledPaise += row.TotalPaise
			response.SettledOrders++
		} else {
			outstandingPaise += row.TotalPaise
			response.OutstandingOrders++
		}
		if row.Disputed {
			response.DisputedOrders++
		}
	}

	response.OutstandingTotal = kernel.NewMoneyFromPaise(outstandingPaise)
	response.SettledTotal = kernel.NewMoneyFromPaise(settledPaise)
	response.GrandTotal = kernel.NewMoneyFromPaise(outstandingPaise + settledPaise)

	type lineKey struct {
		name       string
		proportion string
	}
	merged := make(map[lineKey]*BillItemLine)
	for _, row := range items {
		if _, ok := billable[row.OrderID]; !ok {
			continue
		}

		key := lineKey{row.Name, row.ProportionName}
		line, ok := merged[key]
		if !ok {
			line = &BillItemLine{Name: row.Name, ProportionName: row.ProportionName}
			merged[key] = line
		}
		line.Quantity += row.Quantity
		line.Amount = line.Amount.Add(kernel.NewMoneyFromPaise(row.AmountPaise))
	}

	response.ItemsBreakdown = make([]BillItemLine, 0, len(merged))
	for _, line := range merged {
		response.ItemsBreakdown = append(response.ItemsBreakdown, *line)
	}
	sort.Slice(response.ItemsBreakdown, func(i, j int) bool {
		a, b := response.ItemsBreakdown[i], response.ItemsBreakdown[j]
		if a.Amount.Paise() != b.Amount.Paise() {
			return a.Amount.Paise() > b.Amount.Paise()
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ProportionName < b.ProportionName
	})

	return response
}
