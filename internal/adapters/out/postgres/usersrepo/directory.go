// Package usersrepo provides the read-side adapter over the user table for
// settlement reporting. User management itself lives outside this service.
package usersrepo

import (
	"context"
	"errors"

	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"

	"gorm.io/gorm"
)

// UserDTO represents one user row.
type UserDTO struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	FullName string
	Email    string `gorm:"uniqueIndex"`
	IsAdmin  bool
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// GormUserDirectory implements the UserDirectory port using GORM.
type GormUserDirectory struct {
	db *gorm.DB
}

// NewGormUserDirectory creates a new GORM user directory adapter.
func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

// GetUser retrieves a user by identifier.
func (d *GormUserDirectory) GetUser(ctx context.Context, id int64) (*ports.BillableUser, error) {
	var dto UserDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id)
		}
		return nil, err
	}

	return &ports.BillableUser{
		ID:       dto.ID,
		FullName: dto.FullName,
		Email:    dto.Email,
	}, nil
}

// Exists reports whether a user with the given identifier is known.
func (d *GormUserDirectory) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
