package calendar

import (
	"canteen/internal/core/domain/model/kernel"
)

// Calendar is an in-memory snapshot of the non-working days loaded for one or
// more years. It answers membership queries in constant time and is the input
// to working-day expansion; it holds no distinction between declared holidays
// and generated weekends.
type Calendar struct {
	days map[kernel.Date]struct{}
}

// NewCalendar builds a snapshot from the given holiday rows. Duplicate dates
// collapse into a single entry.
func NewCalendar(holidays []*Holiday) *Calendar {
	days := make(map[kernel.Date]struct{}, len(holidays))
	for _, h := range holidays {
		days[h.Date()] = struct{}{}
	}
	return &Calendar{days: days}
}

// IsHoliday reports whether the given day is a non-working day.
func (c *Calendar) IsHoliday(date kernel.Date) bool {
	_, ok := c.days[date]
	return ok
}

// Len returns the number of distinct non-working days in the snapshot.
func (c *Calendar) Len() int {
	return len(c.days)
}
