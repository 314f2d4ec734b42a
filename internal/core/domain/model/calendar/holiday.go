package calendar

import (
	"errors"
	"fmt"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// ErrHolidayIsNotConstructed is returned when a Holiday instance was not
// created through the NewHoliday/RestoreHoliday factory methods.
var ErrHolidayIsNotConstructed = errors.New("Holiday must be created via NewHoliday constructor")

// Holiday is a single non-working calendar day. Generated weekend rows carry
// isWeekend so they can be regenerated in bulk without touching the
// administrator-declared holidays for the same year.
type Holiday struct {
	id          int64
	date        kernel.Date
	name        string
	description string
	isWeekend   bool

	isConstructed bool
}

// NewHoliday creates an administrator-declared holiday.
func NewHoliday(date kernel.Date, name string, description string) (*Holiday, error) {
	h := &Holiday{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		h.setDate(date),
		h.setName(name),
	); err != nil {
		return nil, err
	}

	return h, nil
}

// NewWeekendHoliday creates a generated weekend row named after its weekday.
func NewWeekendHoliday(date kernel.Date) (*Holiday, error) {
	h, err := NewHoliday(date, date.Weekday().String(), "Weekend")
	if err != nil {
		return nil, err
	}

	h.isWeekend = true
	return h, nil
}

// RestoreHoliday rebuilds a holiday from persisted state.
func RestoreHoliday(id int64, date kernel.Date, name string, description string, isWeekend bool) (*Holiday, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%d is not a valid holiday id", id))
	}

	h := &Holiday{
		id:            id,
		description:   description,
		isWeekend:     isWeekend,
		isConstructed: true,
	}

	if err := errors.Join(
		h.setDate(date),
		h.setName(name),
	); err != nil {
		return nil, err
	}

	return h, nil
}

// Validate ensures the Holiday instance was properly constructed through a
// factory method.
func (h *Holiday) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHolidayIsNotConstructed
	}
	return nil
}

// AssignID records the identifier generated by the persistence store.
func (h *Holiday) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%d is not a valid holiday id", id))
	}
	h.id = id
	return nil
}

// ID returns the persistent identifier, or 0 for an unsaved holiday.
func (h *Holiday) ID() int64 { return h.id }

// Date returns the calendar day this holiday falls on.
func (h *Holiday) Date() kernel.Date { return h.date }

// Name returns the holiday's display name.
func (h *Holiday) Name() string { return h.name }

// Description returns the optional free-text description.
func (h *Holiday) Description() string { return h.description }

// IsWeekend reports whether this row was produced by weekend generation
// rather than declared by an administrator.
func (h *Holiday) IsWeekend() bool { return h.isWeekend }

func (h *Holiday) setDate(date kernel.Date) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	h.date = date
	return nil
}

func (h *Holiday) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	h.name = name
	return nil
}
