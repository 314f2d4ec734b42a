// Package holidayrepo provides persistence for the holiday calendar, covering
// administrator-declared holidays and generated weekend rows.
package holidayrepo

import (
	"time"

	"canteen/internal/core/domain/model/calendar"
	"canteen/internal/core/domain/model/kernel"
)

// HolidayDTO represents one calendar row. The date carries a unique index so
// weekend generation can rerun without duplicating days.
type HolidayDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Date        time.Time `gorm:"type:date;uniqueIndex"`
	Name        string
	Description string
	IsWeekend   bool `gorm:"index"`
}

// TableName specifies the database table name for calendar rows.
func (HolidayDTO) TableName() string {
	return "holidays"
}

func fromDomain(holiday *calendar.Holiday) HolidayDTO {
	return HolidayDTO{
		ID:          holiday.ID(),
		Date:        holiday.Date().ToTime(),
		Name:        holiday.Name(),
		Description: holiday.Description(),
		IsWeekend:   holiday.IsWeekend(),
	}
}

func toDomain(dto HolidayDTO) (*calendar.Holiday, error) {
	return calendar.RestoreHoliday(
		dto.ID,
		kernel.DateOf(dto.Date.UTC()),
		dto.Name,
		dto.Description,
		dto.IsWeekend,
	)
}
