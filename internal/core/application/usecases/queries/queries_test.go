package queries_test

import (
	"testing"
	"time"

	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryConstructors(t *testing.T) {
	t.Run("user orders query", func(t *testing.T) {
		query, err := queries.NewGetUserOrdersQuery(7)
		require.NoError(t, err)
		require.NoError(t, query.Validate())

		_, err = queries.NewGetUserOrdersQuery(-1)
		require.Error(t, err)
	})

	t.Run("scheduled orders query", func(t *testing.T) {
		query, err := queries.NewGetScheduledOrdersQuery(7)
		require.NoError(t, err)
		require.NoError(t, query.Validate())

		var zero queries.GetScheduledOrdersQuery
		require.ErrorIs(t, zero.Validate(), queries.ErrGetScheduledOrdersQueryIsNotConstructed)
	})

	t.Run("holidays query", func(t *testing.T) {
		query, err := queries.NewGetHolidaysQuery(2024)
		require.NoError(t, err)
		assert.Equal(t, 2024, query.Year())

		_, err = queries.NewGetHolidaysQuery(1999)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("all users bills query", func(t *testing.T) {
		query, err := queries.NewGetAllUsersBillsQuery(kernel.Date{}, kernel.Date{}, 0)
		require.NoError(t, err)
		require.NoError(t, query.Validate())

		_, err = queries.NewGetAllUsersBillsQuery(
			kernel.NewDate(2024, time.June, 30), kernel.NewDate(2024, time.January, 1), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = queries.NewGetAllUsersBillsQuery(kernel.Date{}, kernel.Date{}, -1)
		require.Error(t, err)
	})

	t.Run("scheduling constraints query", func(t *testing.T) {
		require.NoError(t, queries.NewGetSchedulingConstraintsQuery().Validate())
	})
}

func TestSchedulingBounds(t *testing.T) {
	t.Run("midyear day", func(t *testing.T) {
		earliest, latest := queries.SchedulingBounds(kernel.NewDate(2024, time.June, 3))
		assert.Equal(t, kernel.NewDate(2024, time.June, 4), earliest)
		assert.Equal(t, kernel.NewDate(2024, time.December, 31), latest)
	})

	t.Run("last day of year leaves an empty window", func(t *testing.T) {
		earliest, latest := queries.SchedulingBounds(kernel.NewDate(2024, time.December, 31))
		assert.Equal(t, kernel.NewDate(2025, time.January, 1), earliest)
		assert.True(t, earliest.After(latest))
	})
}
