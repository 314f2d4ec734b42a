package ports

import (
	"context"

	"canteen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Status and dispute updates are conditional on the state the caller read,
// which is how concurrent lifecycle operations are serialized without locks.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its generated identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// AddBatch persists several new orders in one go. Within a unit of work
	// either all rows are written or none.
	AddBatch(ctx context.Context, aggregates []*order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllDeliveredByUser retrieves a user's orders awaiting settlement.
	GetAllDeliveredByUser(ctx context.Context, userID int64) ([]*order.Order, error)

	// UpdateStatus persists the aggregate's status only if the stored row
	// still carries expected. A stale expectation returns a conflict error
	// and leaves the row untouched.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// UpdateDisputed raises the dispute flag only if the stored row is not
	// yet disputed and still carries the aggregate's status. A lost race,
	// against another dispute or a status change, returns a conflict error.
	UpdateDisputed(ctx context.Context, aggregate *order.Order) error
}
