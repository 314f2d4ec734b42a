package commands

import (
	"errors"
	"fmt"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrSettleOrderCommandIsNotConstructed = errors.New(
	"SettleOrderCommand must be created via NewSettleOrderCommand constructor",
)

// SettleOrderCommand represents an administrator's request to mark one
// delivered order as financially reconciled.
type SettleOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewSettleOrderCommand creates a command to settle a single order.
func NewSettleOrderCommand(orderID int64) (SettleOrderCommand, error) {
	settleCommand := SettleOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := settleCommand.setOrderID(orderID); err != nil {
		return SettleOrderCommand{}, err
	}

	return settleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleOrderCommand) Validate() error {
	return c.guard.Validate(ErrSettleOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to settle.
func (c SettleOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *SettleOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderID", fmt.Errorf("%d is not a valid order id", orderID))
	}
	c.orderID = orderID
	return nil
}
