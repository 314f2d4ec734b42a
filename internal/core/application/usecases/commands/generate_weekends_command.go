package commands

import (
	"errors"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrGenerateWeekendsCommandIsNotConstructed = errors.New(
	"GenerateWeekendsCommand must be created via NewGenerateWeekendsCommand constructor",
)

const (
	minWeekendYear = 2000
	maxWeekendYear = 2100
)

// GenerateWeekendsCommand represents a request to populate the holiday
// calendar with every Saturday and Sunday of one year.
type GenerateWeekendsCommand struct { //nolint:recvcheck //using for validation
	year int

	guard guard.ConstructorGuard
}

// NewGenerateWeekendsCommand creates a command to generate weekend rows for a
// year.
func NewGenerateWeekendsCommand(year int) (GenerateWeekendsCommand, error) {
	weekendsCommand := GenerateWeekendsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := weekendsCommand.setYear(year); err != nil {
		return GenerateWeekendsCommand{}, err
	}

	return weekendsCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateWeekendsCommand) Validate() error {
	return c.guard.Validate(ErrGenerateWeekendsCommandIsNotConstructed)
}

// Year returns the year whose weekends are generated.
func (c GenerateWeekendsCommand) Year() int {
	return c.year
}

func (c *GenerateWeekendsCommand) setYear(year int) error {
	if year < minWeekendYear || year > maxWeekendYear {
		return errs.NewValueIsOutOfRangeError("year", year, minWeekendYear, maxWeekendYear)
	}
	c.year = year
	return nil
}
