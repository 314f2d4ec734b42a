package queries

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetSchedulingConstraintsQueryHandler reports the window available to new
// schedules and the non-working days inside it.
type GetSchedulingConstraintsQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

// NewGetSchedulingConstraintsQueryHandler creates a handler for constraint
// queries.
func NewGetSchedulingConstraintsQueryHandler(
	db *gorm.DB,
	clock kernel.Clock,
) GetSchedulingConstraintsQueryHandler {
	return GetSchedulingConstraintsQueryHandler{db: db, clock: clock}
}

// Handle executes the constraints query.
func (h GetSchedulingConstraintsQueryHandler) Handle(
	ctx context.Context,
	query GetSchedulingConstraintsQuery,
) (GetSchedulingConstraintsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSchedulingConstraintsQueryResponse{}, err
	}

	today := kernel.DateOf(h.clock.Now())
	earliestStart, latestEnd := SchedulingBounds(today)

	response := GetSchedulingConstraintsQueryResponse{
		Today:          today,
		EarliestStart:  earliestStart,
		LatestEnd:      latestEnd,
		NonWorkingDays: make([]kernel.Date, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT date
		FROM holidays
		WHERE date BETWEEN ? AND ?
		ORDER BY date
	`, earliestStart.ToTime(), latestEnd.ToTime()).Rows()
	if err != nil {
		return GetSchedulingConstraintsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var day time.Time
		if err = rows.Scan(&day); err != nil {
			return GetSchedulingConstraintsQueryResponse{}, err
		}
		response.NonWorkingDays = append(response.NonWorkingDays, kernel.DateOf(day.UTC()))
	}
	if err = rows.Err(); err != nil {
		return GetSchedulingConstraintsQueryResponse{}, err
	}

	return response, nil
}
