package services

import (
	"fmt"
	"time"

	"canteen/internal/core/domain/model/calendar"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// WorkingDayExpander turns an inclusive date range into the ordered list of
// working days it contains, using a calendar snapshot for the relevant years.
// Saturdays and Sundays are never working days, with or without generated
// weekend rows in the calendar; the snapshot adds the declared holidays.
type WorkingDayExpander interface {
	IsWorkingDay(date kernel.Date) bool
	Expand(start kernel.Date, end kernel.Date) ([]kernel.Date, error)
}

var _ WorkingDayExpander = &workingDayExpander{}

type workingDayExpander struct {
	calendar *calendar.Calendar
}

// NewWorkingDayExpander creates an expander over the given calendar snapshot.
// The snapshot must cover every year the queried ranges touch.
func NewWorkingDayExpander(cal *calendar.Calendar) (WorkingDayExpander, error) {
	if cal == nil {
		return nil, errs.NewValueIsRequiredError("cal")
	}
	return &workingDayExpander{calendar: cal}, nil
}

func (e *workingDayExpander) IsWorkingDay(date kernel.Date) bool {
	if weekday := date.Weekday(); weekday == time.Saturday || weekday == time.Sunday {
		return false
	}
	return !e.calendar.IsHoliday(date)
}

// Expand returns the working days between start and end, inclusive on both
// ends, in ascending order. A range consisting solely of non-working days
// yields an empty slice.
func (e *workingDayExpander) Expand(start kernel.Date, end kernel.Date) ([]kernel.Date, error) {
	if start.IsZero() {
		return nil, errs.NewValueIsRequiredError("start")
	}
	if end.IsZero() {
		return nil, errs.NewValueIsRequiredError("end")
	}
	if start.After(end) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"start", fmt.Errorf("start %s is after end %s", start, end))
	}

	var days []kernel.Date
	for d := start; !d.After(end); d = d.AddDays(1) {
		if e.IsWorkingDay(d) {
			days = append(days, d)
		}
	}
	return days, nil
}
