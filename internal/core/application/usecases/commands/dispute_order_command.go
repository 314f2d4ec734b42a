package commands

import (
	"errors"
	"fmt"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrDisputeOrderCommandIsNotConstructed = errors.New(
	"DisputeOrderCommand must be created via NewDisputeOrderCommand constructor",
)

// DisputeOrderCommand represents an owner's request to flag an order for
// administrative review.
type DisputeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	userID  int64

	guard guard.ConstructorGuard
}

// NewDisputeOrderCommand creates a command to raise a dispute on an order.
func NewDisputeOrderCommand(orderID int64, userID int64) (DisputeOrderCommand, error) {
	disputeCommand := DisputeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		disputeCommand.setOrderID(orderID),
		disputeCommand.setUserID(userID),
	); err != nil {
		return DisputeOrderCommand{}, err
	}

	return disputeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DisputeOrderCommand) Validate() error {
	return c.guard.Validate(ErrDisputeOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to dispute.
func (c DisputeOrderCommand) OrderID() int64 {
	return c.orderID
}

// UserID returns the identifier of the requesting owner.
func (c DisputeOrderCommand) UserID() int64 {
	return c.userID
}

func (c *DisputeOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderID", fmt.Errorf("%d is not a valid order id", orderID))
	}
	c.orderID = orderID
	return nil
}

func (c *DisputeOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"userID", fmt.Errorf("%d is not a valid user id", userID))
	}
	c.userID = userID
	return nil
}
