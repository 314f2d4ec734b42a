package kernel

import (
	"fmt"
	"strings"
	"time"

	"canteen/internal/pkg/errs"
)

// DateLayout is the wire format for civil dates across the whole application.
const DateLayout = "2006-01-02"

// Date is a civil calendar date without a time component or a time zone.
// It is a value object: comparable, usable as a map key, and safe to copy.
//
// The zero value is "no date" (IsZero reports true); persistence adapters use
// it for nullable date columns such as scheduled_for_date.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate creates a Date from year, month and day. The components are
// normalized the same way time.Date normalizes them, so NewDate(2024, 1, 32)
// yields February 1st.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

// DateOf truncates a point in time to the civil date in the time's location.
func DateOf(t time.Time) Date {
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

// ParseDate parses a date in the YYYY-MM-DD wire format.
// Returns a ValueIsInvalidError for any other input.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return DateOf(t), nil
}

// IsZero reports whether d is the zero "no date" value.
func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// Year returns the calendar year of the date.
func (d Date) Year() int {
	return d.year
}

// Month returns the month of the date.
func (d Date) Month() time.Month {
	return d.month
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.day
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.toTime().Weekday()
}

// AddDays returns the date n days after d (or before, for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.toTime().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Equal reports whether two dates denote the same calendar day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// String returns the date in YYYY-MM-DD format, implementing fmt.Stringer.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// MarshalJSON emits the date as a JSON string in the YYYY-MM-DD wire format.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a JSON string in the YYYY-MM-DD wire format.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ToTime returns the date as midnight UTC, for persistence in date columns.
func (d Date) ToTime() time.Time {
	return d.toTime()
}

func (d Date) toTime() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}
