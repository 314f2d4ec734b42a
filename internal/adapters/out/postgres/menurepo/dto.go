// Package menurepo provides the read-side adapter over the food catalog.
// Order creation only needs name and price snapshots, so the adapter exposes
// the MenuCatalog port rather than a full repository.
package menurepo

// MenuItemDTO represents one catalog item row.
type MenuItemDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	Name        string
	PricePaise  int64
	Available   bool `gorm:"index"`
	Schedulable bool

	Proportions []ProportionDTO `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for catalog items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// ProportionDTO represents a priced serving size of a catalog item.
type ProportionDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	MenuItemID int64 `gorm:"index"`
	Name       string
	PricePaise int64
}

// TableName specifies the database table name for proportions.
func (ProportionDTO) TableName() string {
	return "proportions"
}

// CategoryDTO represents a rotating menu category such as a thali line.
type CategoryDTO struct {
	ID   int64 `gorm:"primaryKey;autoIncrement"`
	Name string
}

// TableName specifies the database table name for categories.
func (CategoryDTO) TableName() string {
	return "categories"
}

// DailySpecialDTO binds a category to the item it serves on one weekday.
// Weekday follows time.Weekday numbering, Sunday = 0.
type DailySpecialDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	CategoryID int64 `gorm:"index:idx_daily_specials_category_weekday,unique"`
	Weekday    int   `gorm:"index:idx_daily_specials_category_weekday,unique"`
	MenuItemID int64
}

// TableName specifies the database table name for daily specials.
func (DailySpecialDTO) TableName() string {
	return "daily_specials"
}
