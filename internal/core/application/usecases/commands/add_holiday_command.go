package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrAddHolidayCommandIsNotConstructed = errors.New(
	"AddHolidayCommand must be created via NewAddHolidayCommand constructor",
)

// AddHolidayCommand represents an administrator's request to declare a
// non-working day.
type AddHolidayCommand struct { //nolint:recvcheck //using for validation
	date        kernel.Date
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewAddHolidayCommand creates a command to declare a holiday.
func NewAddHolidayCommand(date kernel.Date, name string, description string) (AddHolidayCommand, error) {
	holidayCommand := AddHolidayCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		holidayCommand.setDate(date),
		holidayCommand.setName(name),
	); err != nil {
		return AddHolidayCommand{}, err
	}

	return holidayCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddHolidayCommand) Validate() error {
	return c.guard.Validate(ErrAddHolidayCommandIsNotConstructed)
}

// Date returns the day being declared a holiday.
func (c AddHolidayCommand) Date() kernel.Date {
	return c.date
}

// Name returns the holiday's display name.
func (c AddHolidayCommand) Name() string {
	return c.name
}

// Description returns the optional free-text description.
func (c AddHolidayCommand) Description() string {
	return c.description
}

func (c *AddHolidayCommand) setDate(date kernel.Date) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	c.date = date
	return nil
}

func (c *AddHolidayCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
