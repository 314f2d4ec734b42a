package commands

import (
	"errors"
	"fmt"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place an ad-hoc order for today.
// createdByAdmin marks an order placed by an administrator on the user's
// behalf, which changes the owner's cancellation and dispute windows.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID         int64
	createdByAdmin bool
	items          []ItemSelection
	comment        string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the user id is positive and at least one item is selected.
func NewCreateOrderCommand(
	userID int64,
	createdByAdmin bool,
	items []ItemSelection,
	comment string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		createdByAdmin: createdByAdmin,
		comment:        comment,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setUserID(userID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the identifier of the order's owner.
func (c CreateOrderCommand) UserID() int64 {
	return c.userID
}

// CreatedByAdmin reports whether an administrator places this order by proxy.
func (c CreateOrderCommand) CreatedByAdmin() bool {
	return c.createdByAdmin
}

// Items returns the selected catalog lines.
func (c CreateOrderCommand) Items() []ItemSelection {
	return c.items
}

// Comment returns the free-text comment for the kitchen.
func (c CreateOrderCommand) Comment() string {
	return c.comment
}

func (c *CreateOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"userID", fmt.Errorf("%d is not a valid user id", userID))
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemSelection) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = append([]ItemSelection(nil), items...)
	return nil
}
