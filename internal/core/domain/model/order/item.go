package order

import (
	"errors"
	"fmt"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an immutable snapshot of a catalog entry at the moment of order
// creation. Name and price are captured once and never recomputed from live
// catalog data, so later menu edits cannot change what a customer owes.
type Item struct {
	menuItemID     int64
	nameAtOrder    string
	priceAtOrder   kernel.Money
	quantity       int
	proportionName string

	isConstructed bool
}

// NewItem creates an order item snapshot with validation.
// proportionName may be empty when the default proportion was ordered.
func NewItem(
	menuItemID int64,
	nameAtOrder string,
	priceAtOrder kernel.Money,
	quantity int,
	proportionName string,
) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setNameAtOrder(nameAtOrder),
		item.setPriceAtOrder(priceAtOrder),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.proportionName = proportionName
	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// MenuItemID returns the catalog identifier of the snapshotted item.
func (i Item) MenuItemID() int64 {
	return i.menuItemID
}

// NameAtOrder returns the display name captured at order creation.
func (i Item) NameAtOrder() string {
	return i.nameAtOrder
}

// PriceAtOrder returns the unit price captured at order creation.
func (i Item) PriceAtOrder() kernel.Money {
	return i.priceAtOrder
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// ProportionName returns the chosen proportion, or an empty string for the
// default proportion.
func (i Item) ProportionName() string {
	return i.proportionName
}

// Total returns priceAtOrder multiplied by quantity.
func (i Item) Total() kernel.Money {
	return i.priceAtOrder.MulQuantity(i.quantity)
}

func (i *Item) setMenuItemID(menuItemID int64) error {
	if menuItemID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"menuItemID", fmt.Errorf("%d is not a valid menu item id", menuItemID))
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setNameAtOrder(nameAtOrder string) error {
	if nameAtOrder == "" {
		return errs.NewValueIsRequiredError("nameAtOrder")
	}
	i.nameAtOrder = nameAtOrder
	return nil
}

func (i *Item) setPriceAtOrder(priceAtOrder kernel.Money) error {
	if priceAtOrder.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"priceAtOrder", fmt.Errorf("%s is negative", priceAtOrder))
	}
	i.priceAtOrder = priceAtOrder
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
