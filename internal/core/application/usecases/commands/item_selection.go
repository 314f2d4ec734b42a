package commands

import (
	"errors"
	"fmt"

	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"

	"canteen/internal/core/domain/model/order"
)

// ErrItemSelectionIsNotConstructed is returned when an ItemSelection was not
// created via NewItemSelection.
var ErrItemSelectionIsNotConstructed = errors.New(
	"ItemSelection must be created via NewItemSelection constructor",
)

// ItemSelection is one catalog line of an order request: which item, how many,
// and optionally which proportion. Prices are never part of a selection; they
// are snapshotted from the catalog at handling time.
type ItemSelection struct { //nolint:recvcheck //using for validation
	menuItemID     int64
	quantity       int
	proportionName string

	guard guard.ConstructorGuard
}

// NewItemSelection creates a validated catalog line selection.
// proportionName may be empty to order the default proportion.
func NewItemSelection(menuItemID int64, quantity int, proportionName string) (ItemSelection, error) {
	selection := ItemSelection{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		selection.setMenuItemID(menuItemID),
		selection.setQuantity(quantity),
	); err != nil {
		return ItemSelection{}, err
	}

	selection.proportionName = proportionName
	return selection, nil
}

// Validate ensures the selection was created through the constructor.
func (s ItemSelection) Validate() error {
	return s.guard.Validate(ErrItemSelectionIsNotConstructed)
}

// MenuItemID returns the selected catalog item identifier.
func (s ItemSelection) MenuItemID() int64 {
	return s.menuItemID
}

// Quantity returns the ordered quantity.
func (s ItemSelection) Quantity() int {
	return s.quantity
}

// ProportionName returns the selected proportion, or an empty string for the
// default proportion.
func (s ItemSelection) ProportionName() string {
	return s.proportionName
}

func (s *ItemSelection) setMenuItemID(menuItemID int64) error {
	if menuItemID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"menuItemID", fmt.Errorf("%d is not a valid menu item id", menuItemID))
	}
	s.menuItemID = menuItemID
	return nil
}

func (s *ItemSelection) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	s.quantity = quantity
	return nil
}

// snapshotItem turns a catalog item plus a selection into an immutable order
// line, resolving the proportion price when one was named.
func snapshotItem(menuItem *ports.MenuItem, selection ItemSelection) (order.Item, error) {
	price := menuItem.Price
	if selection.ProportionName() != "" {
		found := false
		for _, p := range menuItem.Proportions {
			if p.Name == selection.ProportionName() {
				price = p.Price
				found = true
				break
			}
		}
		if !found {
			return order.Item{}, errs.NewValueIsInvalidErrorWithCause(
				"proportionName",
				fmt.Errorf("item %d has no proportion %q", menuItem.ID, selection.ProportionName()))
		}
	}

	return order.NewItem(
		menuItem.ID,
		menuItem.Name,
		price,
		selection.Quantity(),
		selection.ProportionName(),
	)
}
