package queries

import (
	"errors"
	"fmt"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery retrieves one user's order history, newest first.
type GetUserOrdersQuery struct { //nolint:recvcheck //using for validation
	userID int64

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for a user's order history.
func NewGetUserOrdersQuery(userID int64) (GetUserOrdersQuery, error) {
	query := GetUserOrdersQuery{guard: guard.NewConstructorGuard()}

	if userID <= 0 {
		return GetUserOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"userID", fmt.Errorf("%d is not a valid user id", userID))
	}
	query.userID = userID
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the order history's owner.
func (q GetUserOrdersQuery) UserID() int64 {
	return q.userID
}

// OrderItemResponse is one order line in a history or schedule listing.
type OrderItemResponse struct {
	Name           string
	ProportionName string
	Quantity       int
	Price          kernel.Money
}

// OrderResponse is one order in a history or schedule listing.
type OrderResponse struct {
	ID             int64
	Status         string
	Disputed       bool
	CreatedByAdmin bool
	TotalPrice     kernel.Money
	Comment        string
	IsScheduled    bool
	ScheduledFor   *kernel.Date
	CreatedAt      time.Time
	Items          []OrderItemResponse
}
