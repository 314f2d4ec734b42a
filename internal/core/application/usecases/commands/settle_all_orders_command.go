package commands

import (
	"errors"
	"fmt"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrSettleAllOrdersCommandIsNotConstructed = errors.New(
	"SettleAllOrdersCommand must be created via NewSettleAllOrdersCommand constructor",
)

// SettleAllOrdersCommand represents an administrator's request to settle every
// delivered order of one user in a single stroke, typically after collecting
// payment for the user's whole outstanding balance.
type SettleAllOrdersCommand struct { //nolint:recvcheck //using for validation
	userID int64

	guard guard.ConstructorGuard
}

// NewSettleAllOrdersCommand creates a command to settle all of a user's
// delivered orders.
func NewSettleAllOrdersCommand(userID int64) (SettleAllOrdersCommand, error) {
	settleCommand := SettleAllOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := settleCommand.setUserID(userID); err != nil {
		return SettleAllOrdersCommand{}, err
	}

	return settleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleAllOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSettleAllOrdersCommandIsNotConstructed)
}

// UserID returns the identifier of the user whose orders are settled.
func (c SettleAllOrdersCommand) UserID() int64 {
	return c.userID
}

func (c *SettleAllOrdersCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"userID", fmt.Errorf("%d is not a valid user id", userID))
	}
	c.userID = userID
	return nil
}
