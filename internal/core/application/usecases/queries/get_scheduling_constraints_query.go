package queries

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrGetSchedulingConstraintsQueryIsNotConstructed = errors.New(
	"GetSchedulingConstraintsQuery must be created via NewGetSchedulingConstraintsQuery constructor",
)

// GetSchedulingConstraintsQuery retrieves the date bounds a new schedule must
// fit in, plus the non-working days inside those bounds so the client can
// preview which days an order range will actually produce.
type GetSchedulingConstraintsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSchedulingConstraintsQuery creates a constraints query.
// This is a parameterless query.
func NewGetSchedulingConstraintsQuery() GetSchedulingConstraintsQuery {
	return GetSchedulingConstraintsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSchedulingConstraintsQuery) Validate() error {
	return q.guard.Validate(ErrGetSchedulingConstraintsQueryIsNotConstructed)
}

// GetSchedulingConstraintsQueryResponse bounds new schedules: ranges start no
// earlier than EarliestStart and end no later than LatestEnd.
type GetSchedulingConstraintsQueryResponse struct {
	Today          kernel.Date
	EarliestStart  kernel.Date
	LatestEnd      kernel.Date
	NonWorkingDays []kernel.Date
}

// SchedulingBounds computes the constraint window for a given day: schedules
// start tomorrow at the earliest and end within the current calendar year.
func SchedulingBounds(today kernel.Date) (earliestStart, latestEnd kernel.Date) {
	return today.AddDays(1), kernel.NewDate(today.Year(), 12, 31)
}
