package menurepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuCatalog implements the MenuCatalog port using GORM.
type GormMenuCatalog struct {
	db *gorm.DB
}

// NewGormMenuCatalog creates a new GORM menu catalog adapter.
func NewGormMenuCatalog(db *gorm.DB) *GormMenuCatalog {
	return &GormMenuCatalog{db: db}
}

// GetItem retrieves an available catalog item with its proportions.
func (c *GormMenuCatalog) GetItem(ctx context.Context, id int64) (*ports.MenuItem, error) {
	var dto MenuItemDTO
	err := c.db.WithContext(ctx).
		Preload("Proportions").
		First(&dto, "id = ? AND available", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuItem", id)
		}
		return nil, err
	}

	return toPortItem(dto), nil
}

// GetSchedulableItem retrieves an available catalog item that is eligible for
// scheduled orders.
func (c *GormMenuCatalog) GetSchedulableItem(ctx context.Context, id int64) (*ports.MenuItem, error) {
	var dto MenuItemDTO
	err := c.db.WithContext(ctx).
		Preload("Proportions").
		First(&dto, "id = ? AND available AND schedulable", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuItem", id)
		}
		return nil, err
	}

	return toPortItem(dto), nil
}

// GetDailySpecial resolves the item a category serves on the given weekday.
// The returned name combines the category and weekday, which is how the item
// appears on bills; the price comes from the underlying catalog item.
func (c *GormMenuCatalog) GetDailySpecial(
	ctx context.Context,
	categoryID int64,
	weekday time.Weekday,
) (*ports.MenuItem, error) {
	row := struct {
		MenuItemID   int64
		CategoryName string
		PricePaise   int64
	}{}

	err := c.db.WithContext(ctx).Raw(`
		SELECT
			m.id AS menu_item_id,
			c.name AS category_name,
			m.price_paise
		FROM daily_specials ds
		JOIN categories c ON c.id = ds.category_id
		JOIN menu_items m ON m.id = ds.menu_item_id AND m.available
		WHERE ds.category_id = ? AND ds.weekday = ?
	`, categoryID, int(weekday)).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.MenuItemID == 0 {
		return nil, errs.NewObjectNotFoundError("dailySpecial", categoryID)
	}

	return &ports.MenuItem{
		ID:    row.MenuItemID,
		Name:  fmt.Sprintf("%s (%s)", row.CategoryName, weekday),
		Price: kernel.NewMoneyFromPaise(row.PricePaise),
	}, nil
}

func toPortItem(dto MenuItemDTO) *ports.MenuItem {
	proportions := make([]ports.MenuProportion, 0, len(dto.Proportions))
	for _, p := range dto.Proportions {
		proportions = append(proportions, ports.MenuProportion{
			Name:  p.Name,
			Price: kernel.NewMoneyFromPaise(p.PricePaise),
		})
	}

	return &ports.MenuItem{
		ID:          dto.ID,
		Name:        dto.Name,
		Price:       kernel.NewMoneyFromPaise(dto.PricePaise),
		Proportions: proportions,
		Schedulable: dto.Schedulable,
	}
}
