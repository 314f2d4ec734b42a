// Package queries contains read-only operations for the CQRS read side.
// Query handlers bypass the domain model and read the database directly,
// returning plain response structures shaped for the HTTP layer.
package queries

import (
	"errors"
	"fmt"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrGetBillSummaryQueryIsNotConstructed = errors.New(
	"GetBillSummaryQuery must be created via NewGetBillSummaryQuery constructor",
)

// GetBillSummaryQuery retrieves one user's settlement bill: what has been
// settled, what is still outstanding, and the item breakdown behind both.
// An optional creation-date range narrows the billing period; a zero bound
// leaves that side open.
type GetBillSummaryQuery struct { //nolint:recvcheck //using for validation
	userID int64
	start  kernel.Date
	end    kernel.Date

	guard guard.ConstructorGuard
}

// NewGetBillSummaryQuery creates a query for a user's bill over an optional
// creation-date range. Either bound may be zero for an open-ended period.
func NewGetBillSummaryQuery(userID int64, start, end kernel.Date) (GetBillSummaryQuery, error) {
	query := GetBillSummaryQuery{guard: guard.NewConstructorGuard()}

	if userID <= 0 {
		return GetBillSummaryQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"userID", fmt.Errorf("%d is not a valid user id", userID))
	}
	if err := validateDateRange(start, end); err != nil {
		return GetBillSummaryQuery{}, err
	}

	query.userID = userID
	query.start = start
	query.end = end
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBillSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetBillSummaryQueryIsNotConstructed)
}

// UserID returns the identifier of the billed user.
func (q GetBillSummaryQuery) UserID() int64 {
	return q.userID
}

// Start returns the inclusive start of the billing period, zero when open.
func (q GetBillSummaryQuery) Start() kernel.Date {
	return q.start
}

// End returns the inclusive end of the billing period, zero when open.
func (q GetBillSummaryQuery) End() kernel.Date {
	return q.end
}

func validateDateRange(start, end kernel.Date) error {
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return errs.NewValueIsInvalidErrorWithCause(
			"startDate", fmt.Errorf("start %s is after end %s", start, end))
	}
	return nil
}

// BillItemLine is one aggregated row of the bill's item breakdown. Lines with
// the same name and proportion merge across orders.
type BillItemLine struct {
	Name           string
	ProportionName string
	Quantity       int
	Amount         kernel.Money
}

// BillOrderLine is one billable order listed on the bill.
type BillOrderLine struct {
	OrderID   int64
	Settled   bool
	Disputed  bool
	Total     kernel.Money
	CreatedAt kernel.Date
}

// GetBillSummaryQueryResponse is a user's settlement bill. Outstanding covers
// delivered orders not yet settled; the grand total is outstanding plus
// settled, so it reflects everything the user has actually received.
type GetBillSummaryQueryResponse struct {
	UserID            int64
	OutstandingTotal  kernel.Money
	SettledTotal      kernel.Money
	GrandTotal        kernel.Money
	OutstandingOrders int
	SettledOrders     int
	DisputedOrders    int
	ItemsBreakdown    []BillItemLine
	Orders            []BillOrderLine
}
