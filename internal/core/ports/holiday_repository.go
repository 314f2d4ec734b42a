package ports

import (
	"context"

	"canteen/internal/core/domain/model/calendar"
)

// HolidayRepository defines the persistence contract for the holiday calendar,
// covering administrator-declared holidays and generated weekend rows alike.
type HolidayRepository interface {
	// Add persists a declared holiday and assigns its generated identifier.
	Add(ctx context.Context, holiday *calendar.Holiday) error

	// AddWeekend persists a generated weekend row. A row already present for
	// the same date is left untouched; the returned flag reports whether a
	// new row was inserted.
	AddWeekend(ctx context.Context, holiday *calendar.Holiday) (bool, error)

	// GetByYears retrieves every holiday falling in any of the given years.
	GetByYears(ctx context.Context, years []int) ([]*calendar.Holiday, error)

	// DeleteWeekendsByYear removes the generated weekend rows of one year,
	// leaving declared holidays in place.
	DeleteWeekendsByYear(ctx context.Context, year int) error
}
