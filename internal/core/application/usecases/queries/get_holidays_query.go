package queries

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrGetHolidaysQueryIsNotConstructed = errors.New(
	"GetHolidaysQuery must be created via NewGetHolidaysQuery constructor",
)

// GetHolidaysQuery retrieves the holiday calendar of one year, declared
// holidays and generated weekend rows alike.
type GetHolidaysQuery struct { //nolint:recvcheck //using for validation
	year int

	guard guard.ConstructorGuard
}

// NewGetHolidaysQuery creates a query for one year's calendar.
func NewGetHolidaysQuery(year int) (GetHolidaysQuery, error) {
	query := GetHolidaysQuery{guard: guard.NewConstructorGuard()}

	if year < 2000 || year > 2100 {
		return GetHolidaysQuery{}, errs.NewValueIsOutOfRangeError("year", year, 2000, 2100)
	}
	query.year = year
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetHolidaysQuery) Validate() error {
	return q.guard.Validate(ErrGetHolidaysQueryIsNotConstructed)
}

// Year returns the queried year.
func (q GetHolidaysQuery) Year() int {
	return q.year
}

// HolidayResponse is one calendar row in the listing.
type HolidayResponse struct {
	ID          int64
	Date        kernel.Date
	Name        string
	Description string
	IsWeekend   bool
}
