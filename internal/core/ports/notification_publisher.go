package ports

import (
	"context"
)

// Notification event types published on order lifecycle changes.
const (
	NotificationOrderCreated   = "order.created"
	NotificationOrderCancelled = "order.cancelled"
	NotificationOrderAdvanced  = "order.advanced"
	NotificationOrderDisputed  = "order.disputed"
	NotificationOrderSettled   = "order.settled"
)

// Notification is a lifecycle event emitted after a state change has been
// committed. Consumers use it for user-facing messaging.
type Notification struct {
	EventType string `json:"event_type"`
	OrderID   int64  `json:"order_id"`
	UserID    int64  `json:"user_id"`
	Status    string `json:"status,omitempty"`
}

// NotificationPublisher delivers lifecycle notifications to interested
// consumers. Publishing is best effort; a failed publish never rolls back the
// state change it reports.
type NotificationPublisher interface {
	Publish(ctx context.Context, notification Notification) error
}
