package queries

import (
	"errors"
	"fmt"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrGetScheduledOrdersQueryIsNotConstructed = errors.New(
	"GetScheduledOrdersQuery must be created via NewGetScheduledOrdersQuery constructor",
)

// GetScheduledOrdersQuery retrieves a user's upcoming scheduled orders, the
// ones still pending for today or a later working day.
type GetScheduledOrdersQuery struct { //nolint:recvcheck //using for validation
	userID int64

	guard guard.ConstructorGuard
}

// NewGetScheduledOrdersQuery creates a query for upcoming scheduled orders.
func NewGetScheduledOrdersQuery(userID int64) (GetScheduledOrdersQuery, error) {
	query := GetScheduledOrdersQuery{guard: guard.NewConstructorGuard()}

	if userID <= 0 {
		return GetScheduledOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"userID", fmt.Errorf("%d is not a valid user id", userID))
	}
	query.userID = userID
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetScheduledOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetScheduledOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the schedule's owner.
func (q GetScheduledOrdersQuery) UserID() int64 {
	return q.userID
}
