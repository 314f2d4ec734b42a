package holidayrepo

import (
	"context"
	"errors"

	"canteen/internal/core/domain/model/calendar"
	"canteen/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormHolidayRepository implements HolidayRepository using GORM.
type GormHolidayRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormHolidayRepository creates a new GORM holiday repository.
func NewGormHolidayRepository(db *gorm.DB, tracker aggregateTracker) *GormHolidayRepository {
	return &GormHolidayRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a declared holiday and assigns the generated identifier back to
// the entity. A second declaration for the same date hits the unique index
// and surfaces as a conflict.
func (r *GormHolidayRepository) Add(ctx context.Context, holiday *calendar.Holiday) error {
	if err := holiday.Validate(); err != nil {
		return err
	}

	dto := fromDomain(holiday)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("holidayDate", holiday.Date().String(), err)
		}
		return err
	}

	if err := holiday.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(holiday.ID(), holiday)
	return nil
}

// AddWeekend inserts a generated weekend row unless the date already has one.
// The ON CONFLICT DO NOTHING clause makes regeneration idempotent; the return
// value reports whether this call inserted a new row.
func (r *GormHolidayRepository) AddWeekend(ctx context.Context, holiday *calendar.Holiday) (bool, error) {
	if err := holiday.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(holiday)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoNothing: true,
		}).
		Create(&dto)
	if result.Error != nil {
		return false, result.Error
	}

	inserted := result.RowsAffected > 0
	if inserted {
		if err := holiday.AssignID(dto.ID); err != nil {
			return false, err
		}
		r.tracker.TrackAggregate(holiday.ID(), holiday)
	}
	return inserted, nil
}

// GetByYears retrieves every calendar row falling in any of the given years.
func (r *GormHolidayRepository) GetByYears(ctx context.Context, years []int) ([]*calendar.Holiday, error) {
	if len(years) == 0 {
		return []*calendar.Holiday{}, nil
	}

	var dtos []HolidayDTO
	err := r.db.WithContext(ctx).
		Where("EXTRACT(YEAR FROM date) IN ?", years).
		Order("date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	holidays := make([]*calendar.Holiday, 0, len(dtos))
	for _, dto := range dtos {
		holiday, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, holiday)
	}

	return holidays, nil
}

// DeleteWeekendsByYear removes one year's generated weekend rows, leaving
// declared holidays untouched.
func (r *GormHolidayRepository) DeleteWeekendsByYear(ctx context.Context, year int) error {
	return r.db.WithContext(ctx).
		Where("is_weekend AND EXTRACT(YEAR FROM date) = ?", year).
		Delete(&HolidayDTO{}).Error
}
