package queries

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetHolidaysQueryHandler lists one year's calendar rows in date order.
type GetHolidaysQueryHandler struct {
	db *gorm.DB
}

// NewGetHolidaysQueryHandler creates a handler for calendar listings.
// Requires a GORM database connection for query execution.
func NewGetHolidaysQueryHandler(db *gorm.DB) GetHolidaysQueryHandler {
	return GetHolidaysQueryHandler{db: db}
}

// Handle executes the calendar listing query.
func (h GetHolidaysQueryHandler) Handle(
	ctx context.Context,
	query GetHolidaysQuery,
) ([]HolidayResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	start := kernel.NewDate(query.Year(), time.January, 1)
	end := kernel.NewDate(query.Year(), time.December, 31)
	holidays := make([]HolidayResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			date,
			name,
			description,
			is_weekend
		FROM holidays
		WHERE date BETWEEN ? AND ?
		ORDER BY date, id
	`, start.ToTime(), end.ToTime()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp HolidayResponse
		var day time.Time

		if err = rows.Scan(
			&resp.ID, &day, &resp.Name, &resp.Description, &resp.IsWeekend,
		); err != nil {
			return nil, err
		}

		resp.Date = kernel.DateOf(day.UTC())
		holidays = append(holidays, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}
