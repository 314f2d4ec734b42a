package commands

import (
	"errors"
	"fmt"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrBulkCancelScheduledOrdersCommandIsNotConstructed = errors.New(
	"BulkCancelScheduledOrdersCommand must be created via NewBulkCancelScheduledOrdersCommand constructor",
)

// BulkCancelScheduledOrdersCommand represents an owner's request to cancel
// several future scheduled orders at once.
type BulkCancelScheduledOrdersCommand struct { //nolint:recvcheck //using for validation
	userID   int64
	orderIDs []int64

	guard guard.ConstructorGuard
}

// NewBulkCancelScheduledOrdersCommand creates a command to cancel a batch of
// scheduled orders.
func NewBulkCancelScheduledOrdersCommand(userID int64, orderIDs []int64) (BulkCancelScheduledOrdersCommand, error) {
	bulkCommand := BulkCancelScheduledOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bulkCommand.setUserID(userID),
		bulkCommand.setOrderIDs(orderIDs),
	); err != nil {
		return BulkCancelScheduledOrdersCommand{}, err
	}

	return bulkCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkCancelScheduledOrdersCommand) Validate() error {
	return c.guard.Validate(ErrBulkCancelScheduledOrdersCommandIsNotConstructed)
}

// UserID returns the identifier of the requesting owner.
func (c BulkCancelScheduledOrdersCommand) UserID() int64 {
	return c.userID
}

// OrderIDs returns the identifiers of the orders to cancel.
func (c BulkCancelScheduledOrdersCommand) OrderIDs() []int64 {
	return c.orderIDs
}

func (c *BulkCancelScheduledOrdersCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"userID", fmt.Errorf("%d is not a valid user id", userID))
	}
	c.userID = userID
	return nil
}

func (c *BulkCancelScheduledOrdersCommand) setOrderIDs(orderIDs []int64) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("orderIds")
	}
	for _, id := range orderIDs {
		if id <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"orderIds", fmt.Errorf("%d is not a valid order id", id))
		}
	}
	c.orderIDs = append([]int64(nil), orderIDs...)
	return nil
}
