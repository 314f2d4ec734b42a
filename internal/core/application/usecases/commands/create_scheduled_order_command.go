package commands

import (
	"errors"
	"fmt"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var (
	ErrCreateScheduledOrderCommandIsNotConstructed = errors.New(
		"CreateScheduledOrderCommand must be created via NewCreateScheduledOrderCommand constructor",
	)
	ErrCategorySelectionIsNotConstructed = errors.New(
		"CategorySelection must be created via NewCategorySelection constructor",
	)
)

// CategorySelection is a recurring line that resolves to a different catalog
// item each day: whatever daily special the category serves on that weekday.
type CategorySelection struct { //nolint:recvcheck //using for validation
	categoryID int64
	quantity   int

	guard guard.ConstructorGuard
}

// NewCategorySelection creates a validated category line selection.
func NewCategorySelection(categoryID int64, quantity int) (CategorySelection, error) {
	selection := CategorySelection{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		selection.setCategoryID(categoryID),
		selection.setQuantity(quantity),
	); err != nil {
		return CategorySelection{}, err
	}

	return selection, nil
}

// Validate ensures the selection was created through the constructor.
func (s CategorySelection) Validate() error {
	return s.guard.Validate(ErrCategorySelectionIsNotConstructed)
}

// CategoryID returns the selected category identifier.
func (s CategorySelection) CategoryID() int64 {
	return s.categoryID
}

// Quantity returns the daily quantity.
func (s CategorySelection) Quantity() int {
	return s.quantity
}

func (s *CategorySelection) setCategoryID(categoryID int64) error {
	if categoryID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"categoryID", fmt.Errorf("%d is not a valid category id", categoryID))
	}
	s.categoryID = categoryID
	return nil
}

func (s *CategorySelection) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	s.quantity = quantity
	return nil
}

// CreateScheduledOrderCommand represents a request to materialize orders for
// every working day in an inclusive date range. Lines can be fixed catalog
// items, category lines resolved per weekday, or a mix of both.
type CreateScheduledOrderCommand struct { //nolint:recvcheck //using for validation
	userID     int64
	start      kernel.Date
	end        kernel.Date
	items      []ItemSelection
	categories []CategorySelection
	comment    string

	guard guard.ConstructorGuard
}

// NewCreateScheduledOrderCommand creates a command to plan scheduled orders.
// At least one fixed item or category line is required; the range bounds must
// be set and ordered. Range position relative to today is checked at handling
// time against the injected clock.
func NewCreateScheduledOrderCommand(
	userID int64,
	start kernel.Date,
	end kernel.Date,
	items []ItemSelection,
	categories []CategorySelection,
	comment string,
) (CreateScheduledOrderCommand, error) {
	scheduledCommand := CreateScheduledOrderCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		scheduledCommand.setUserID(userID),
		scheduledCommand.setRange(start, end),
		scheduledCommand.setSelections(items, categories),
	); err != nil {
		return CreateScheduledOrderCommand{}, err
	}

	return scheduledCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateScheduledOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateScheduledOrderCommandIsNotConstructed)
}

// UserID returns the identifier of the schedule's owner.
func (c CreateScheduledOrderCommand) UserID() int64 {
	return c.userID
}

// Start returns the inclusive start of the planned range.
func (c CreateScheduledOrderCommand) Start() kernel.Date {
	return c.start
}

// End returns the inclusive end of the planned range.
func (c CreateScheduledOrderCommand) End() kernel.Date {
	return c.end
}

// Items returns the fixed catalog lines repeated on every working day.
func (c CreateScheduledOrderCommand) Items() []ItemSelection {
	return c.items
}

// Categories returns the category lines resolved per weekday.
func (c CreateScheduledOrderCommand) Categories() []CategorySelection {
	return c.categories
}

// Comment returns the free-text comment copied onto every planned order.
func (c CreateScheduledOrderCommand) Comment() string {
	return c.comment
}

func (c *CreateScheduledOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"userID", fmt.Errorf("%d is not a valid user id", userID))
	}
	c.userID = userID
	return nil
}

func (c *CreateScheduledOrderCommand) setRange(start, end kernel.Date) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("startDate")
	}
	if end.IsZero() {
		return errs.NewValueIsRequiredError("endDate")
	}
	if start.After(end) {
		return errs.NewValueIsInvalidErrorWithCause(
			"startDate", fmt.Errorf("start %s is after end %s", start, end))
	}

	c.start = start
	c.end = end
	return nil
}

func (c *CreateScheduledOrderCommand) setSelections(items []ItemSelection, categories []CategorySelection) error {
	if len(items) == 0 && len(categories) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	for _, category := range categories {
		if err := category.Validate(); err != nil {
			return err
		}
	}

	c.items = append([]ItemSelection(nil), items...)
	c.categories = append([]CategorySelection(nil), categories...)
	return nil
}
