package services_test

import (
	"testing"
	"time"

	"canteen/internal/core/domain/model/calendar"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/services"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calendarOf(t *testing.T, dates ...kernel.Date) *calendar.Calendar {
	t.Helper()
	holidays := make([]*calendar.Holiday, 0, len(dates))
	for _, d := range dates {
		h, err := calendar.NewHoliday(d, "Closure", "")
		require.NoError(t, err)
		holidays = append(holidays, h)
	}
	return calendar.NewCalendar(holidays)
}

func TestNewWorkingDayExpander(t *testing.T) {
	_, err := services.NewWorkingDayExpander(nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestWorkingDayExpander_IsWorkingDay(t *testing.T) {
	cal := calendarOf(t, kernel.NewDate(2024, time.January, 26))
	expander, err := services.NewWorkingDayExpander(cal)
	require.NoError(t, err)

	assert.False(t, expander.IsWorkingDay(kernel.NewDate(2024, time.January, 26)))
	assert.True(t, expander.IsWorkingDay(kernel.NewDate(2024, time.January, 25)))

	// Jan 27-28 2024 is a weekend; no generated rows are in the calendar.
	assert.False(t, expander.IsWorkingDay(kernel.NewDate(2024, time.January, 27)))
	assert.False(t, expander.IsWorkingDay(kernel.NewDate(2024, time.January, 28)))
}

func TestWorkingDayExpander_Expand(t *testing.T) {
	t.Run("skips weekend rows and declared holidays", func(t *testing.T) {
		// Jan 26 2024 is a Friday holiday, Jan 27-28 the generated weekend.
		cal := calendarOf(t,
			kernel.NewDate(2024, time.January, 26),
			kernel.NewDate(2024, time.January, 27),
			kernel.NewDate(2024, time.January, 28),
		)
		expander, err := services.NewWorkingDayExpander(cal)
		require.NoError(t, err)

		days, err := expander.Expand(
			kernel.NewDate(2024, time.January, 25),
			kernel.NewDate(2024, time.January, 29),
		)
		require.NoError(t, err)
		assert.Equal(t, []kernel.Date{
			kernel.NewDate(2024, time.January, 25),
			kernel.NewDate(2024, time.January, 29),
		}, days)
	})

	t.Run("excludes weekends without generated rows", func(t *testing.T) {
		cal := calendarOf(t, kernel.NewDate(2024, time.January, 26))
		expander, err := services.NewWorkingDayExpander(cal)
		require.NoError(t, err)

		days, err := expander.Expand(
			kernel.NewDate(2024, time.January, 25),
			kernel.NewDate(2024, time.January, 29),
		)
		require.NoError(t, err)
		assert.Equal(t, []kernel.Date{
			kernel.NewDate(2024, time.January, 25),
			kernel.NewDate(2024, time.January, 29),
		}, days)
	})

	t.Run("single working day range", func(t *testing.T) {
		expander, err := services.NewWorkingDayExpander(calendarOf(t))
		require.NoError(t, err)

		day := kernel.NewDate(2024, time.March, 5)
		days, err := expander.Expand(day, day)
		require.NoError(t, err)
		assert.Equal(t, []kernel.Date{day}, days)
	})

	t.Run("range of only non-working days is empty", func(t *testing.T) {
		sat := kernel.NewDate(2024, time.January, 27)
		sun := kernel.NewDate(2024, time.January, 28)
		expander, err := services.NewWorkingDayExpander(calendarOf(t, sat, sun))
		require.NoError(t, err)

		days, err := expander.Expand(sat, sun)
		require.NoError(t, err)
		assert.Empty(t, days)
	})

	t.Run("crosses a year boundary", func(t *testing.T) {
		newYear := kernel.NewDate(2025, time.January, 1)
		expander, err := services.NewWorkingDayExpander(calendarOf(t, newYear))
		require.NoError(t, err)

		days, err := expander.Expand(
			kernel.NewDate(2024, time.December, 31),
			kernel.NewDate(2025, time.January, 2),
		)
		require.NoError(t, err)
		assert.Equal(t, []kernel.Date{
			kernel.NewDate(2024, time.December, 31),
			kernel.NewDate(2025, time.January, 2),
		}, days)
	})

	t.Run("start after end is invalid", func(t *testing.T) {
		expander, err := services.NewWorkingDayExpander(calendarOf(t))
		require.NoError(t, err)

		_, err = expander.Expand(
			kernel.NewDate(2024, time.February, 2),
			kernel.NewDate(2024, time.February, 1),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero bounds are required", func(t *testing.T) {
		expander, err := services.NewWorkingDayExpander(calendarOf(t))
		require.NoError(t, err)

		_, err = expander.Expand(kernel.Date{}, kernel.NewDate(2024, time.February, 1))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
