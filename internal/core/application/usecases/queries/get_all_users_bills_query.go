package queries

import (
	"errors"
	"fmt"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrGetAllUsersBillsQueryIsNotConstructed = errors.New(
	"GetAllUsersBillsQuery must be created via NewGetAllUsersBillsQuery constructor",
)

// GetAllUsersBillsQuery retrieves the settlement overview across every user
// with billable orders, the admin's collection worklist. An optional
// creation-date range narrows the billing period, and an optional user filter
// restricts the overview to one user.
type GetAllUsersBillsQuery struct { //nolint:recvcheck //using for validation
	start  kernel.Date
	end    kernel.Date
	userID int64

	guard guard.ConstructorGuard
}

// NewGetAllUsersBillsQuery creates a query for the billing overview. Zero
// date bounds leave the period open; userID 0 covers all users.
func NewGetAllUsersBillsQuery(start, end kernel.Date, userID int64) (GetAllUsersBillsQuery, error) {
	query := GetAllUsersBillsQuery{guard: guard.NewConstructorGuard()}

	if userID < 0 {
		return GetAllUsersBillsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"userID", fmt.Errorf("%d is not a valid user id", userID))
	}
	if err := validateDateRange(start, end); err != nil {
		return GetAllUsersBillsQuery{}, err
	}

	query.start = start
	query.end = end
	query.userID = userID
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllUsersBillsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllUsersBillsQueryIsNotConstructed)
}

// Start returns the inclusive start of the billing period, zero when open.
func (q GetAllUsersBillsQuery) Start() kernel.Date {
	return q.start
}

// End returns the inclusive end of the billing period, zero when open.
func (q GetAllUsersBillsQuery) End() kernel.Date {
	return q.end
}

// UserID returns the optional user filter, 0 when the overview covers everyone.
func (q GetAllUsersBillsQuery) UserID() int64 {
	return q.userID
}

// UserBillRow is one user's line in the billing overview.
type UserBillRow struct {
	UserID           int64
	FullName         string
	Email            string
	OutstandingTotal kernel.Money
	SettledTotal     kernel.Money
	OrderCount       int
}

// BillGrandTotals summarizes the whole overview.
type BillGrandTotals struct {
	TotalUsers       int
	TotalOrders      int
	OutstandingTotal kernel.Money
	SettledTotal     kernel.Money
}

// GetAllUsersBillsQueryResponse lists per-user bills sorted by outstanding
// balance, largest debtor first.
type GetAllUsersBillsQueryResponse struct {
	Users       []UserBillRow
	GrandTotals BillGrandTotals
}
