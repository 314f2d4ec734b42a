// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its string name so the rows stay readable and the
// conditional lifecycle updates can compare against it directly.
type OrderDTO struct {
	ID               int64 `gorm:"primaryKey;autoIncrement"`
	UserID           int64 `gorm:"index"`
	CreatedByAdmin   bool
	CreatedAt        time.Time
	Status           string `gorm:"type:varchar(16);index"`
	Disputed         bool
	TotalPricePaise  int64
	Comment          string
	IsScheduled      bool       `gorm:"index"`
	ScheduledForDate *time.Time `gorm:"type:date;index"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one snapshotted order line. Name and price are the
// values captured at order time, not references into the live catalog.
type OrderItemDTO struct {
	ID                int64 `gorm:"primaryKey;autoIncrement"`
	OrderID           int64 `gorm:"index"`
	MenuItemID        int64
	NameAtOrder       string
	PriceAtOrderPaise int64
	Quantity          int
	ProportionName    string
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// A zero aggregate ID maps to a zero DTO ID so the store generates one on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	var scheduledFor *time.Time
	if aggregate.IsScheduled() {
		day := aggregate.ScheduledFor().ToTime()
		scheduledFor = &day
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:           aggregate.ID(),
			MenuItemID:        item.MenuItemID(),
			NameAtOrder:       item.NameAtOrder(),
			PriceAtOrderPaise: item.PriceAtOrder().Paise(),
			Quantity:          item.Quantity(),
			ProportionName:    item.ProportionName(),
		})
	}

	return OrderDTO{
		ID:               aggregate.ID(),
		UserID:           aggregate.UserID(),
		CreatedByAdmin:   aggregate.CreatedByAdmin(),
		CreatedAt:        aggregate.CreatedAt(),
		Status:           aggregate.Status().String(),
		Disputed:         aggregate.Disputed(),
		TotalPricePaise:  aggregate.TotalPrice().Paise(),
		Comment:          aggregate.Comment(),
		IsScheduled:      aggregate.IsScheduled(),
		ScheduledForDate: scheduledFor,
		Items:            items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the item snapshot using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var scheduledFor kernel.Date
	if dto.ScheduledForDate != nil {
		scheduledFor = kernel.DateOf(dto.ScheduledForDate.UTC())
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(
			itemDTO.MenuItemID,
			itemDTO.NameAtOrder,
			kernel.NewMoneyFromPaise(itemDTO.PriceAtOrderPaise),
			itemDTO.Quantity,
			itemDTO.ProportionName,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.UserID,
		dto.CreatedByAdmin,
		dto.CreatedAt,
		status,
		dto.Disputed,
		kernel.NewMoneyFromPaise(dto.TotalPricePaise),
		dto.Comment,
		dto.IsScheduled,
		scheduledFor,
		items,
	)
}
