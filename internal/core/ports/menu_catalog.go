package ports

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/kernel"
)

// MenuProportion is a priced serving size of a catalog item.
type MenuProportion struct {
	Name  string
	Price kernel.Money
}

// MenuItem is a read-model row of the food catalog as seen by order creation.
// Price is the base price; Proportions, when present, carry their own prices.
type MenuItem struct {
	ID          int64
	Name        string
	Price       kernel.Money
	Proportions []MenuProportion
	Schedulable bool
}

// MenuCatalog is the read-side contract against the food catalog. Order
// creation snapshots names and prices through it; the catalog itself is
// maintained elsewhere.
type MenuCatalog interface {
	// GetItem retrieves a catalog item by identifier.
	GetItem(ctx context.Context, id int64) (*MenuItem, error)

	// GetSchedulableItem retrieves a catalog item eligible for scheduled
	// orders. Items not flagged schedulable return a not-found error.
	GetSchedulableItem(ctx context.Context, id int64) (*MenuItem, error)

	// GetDailySpecial resolves the item a category serves on the given
	// weekday. Categories with no special for that weekday return a
	// not-found error.
	GetDailySpecial(ctx context.Context, categoryID int64, weekday time.Weekday) (*MenuItem, error)
}
