package order

import (
	"errors"
	"fmt"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// Time windows for owner-initiated lifecycle operations. Both are measured
// from the order's creation time against the wall clock at the moment of the
// request.
const (
	// SelfServiceCancelWindow is the grace period in which a customer can
	// withdraw an order they placed themselves.
	SelfServiceCancelWindow = 60 * time.Second

	// AdminProxyContestWindow is the period in which an order placed by an
	// administrator on a customer's behalf can still be cancelled or disputed
	// by its owner.
	AdminProxyContestWindow = 24 * time.Hour
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder/NewScheduledOrder/RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries a persistent identifier.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Order is the aggregate root of the ordering domain. It owns the status
// state machine, the dispute overlay, and the immutable item snapshot taken
// at creation.
//
// Order maintains these invariants:
//   - status only moves along the transitions defined by Status
//   - totalPrice equals the sum of item totals captured at creation and is
//     never recomputed afterwards
//   - disputed can become true at most once, and only while the order is not
//     in a terminal state
//   - a scheduled order always carries its target working day
//
// All mutation goes through validated methods; persistence adapters must use
// RestoreOrder to rebuild aggregates rather than instantiating the struct.
type Order struct {
	id             int64
	userID         int64
	createdByAdmin bool
	createdAt      time.Time
	status         Status
	disputed       bool
	totalPrice     kernel.Money
	comment        string
	isScheduled    bool
	scheduledFor   kernel.Date
	items          []Item

	isConstructed bool
}

// NewOrder creates a checkout order in Pending status. The item snapshot and
// the total price are fixed here and never change for the life of the order.
//
// createdByAdmin marks an admin-proxy order, which swaps the owner's 60-second
// cancellation grace for the 24-hour contest window.
func NewOrder(
	userID int64,
	createdByAdmin bool,
	items []Item,
	comment string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdByAdmin: createdByAdmin,
		comment:        comment,
		status:         Pending,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setCreatedAt(createdAt),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// NewScheduledOrder creates one materialized order of a recurring schedule,
// targeted at a specific future working day. Scheduled orders are always
// self-placed and start Pending like any other order.
func NewScheduledOrder(
	userID int64,
	items []Item,
	comment string,
	scheduledFor kernel.Date,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(userID, false, items, comment, createdAt)
	if err != nil {
		return nil, err
	}

	if scheduledFor.IsZero() {
		return nil, errs.NewValueIsRequiredError("scheduledFor")
	}

	o.isScheduled = true
	o.scheduledFor = scheduledFor
	return o, nil
}

// RestoreOrder rebuilds an aggregate from persisted state. Unlike the
// creation constructors it accepts any valid status and an already-assigned
// identifier; the stored total is trusted as the creation-time snapshot.
func RestoreOrder(
	id int64,
	userID int64,
	createdByAdmin bool,
	createdAt time.Time,
	status Status,
	disputed bool,
	totalPrice kernel.Money,
	comment string,
	isScheduled bool,
	scheduledFor kernel.Date,
	items []Item,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%d is not a valid order id", id))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if isScheduled && scheduledFor.IsZero() {
		return nil, errs.NewValueIsRequiredError("scheduledFor")
	}

	o := &Order{
		id:             id,
		createdByAdmin: createdByAdmin,
		status:         status,
		disputed:       disputed,
		totalPrice:     totalPrice,
		comment:        comment,
		isScheduled:    isScheduled,
		scheduledFor:   scheduledFor,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	o.items = append([]Item(nil), items...)
	// Restored totals are the persisted creation-time snapshot; they are not
	// recomputed from items here.
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Persistence adapters call this when reconstructing orders.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID records the identifier generated by the persistence store.
// It can be called exactly once, on an aggregate that has never been persisted.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%d is not a valid order id", id))
	}
	o.id = id
	return nil
}

// ID returns the persistent identifier, or 0 for an unsaved order.
func (o *Order) ID() int64 { return o.id }

// UserID returns the identifier of the order's owner.
func (o *Order) UserID() int64 { return o.userID }

// CreatedByAdmin reports whether an administrator placed this order on the
// owner's behalf.
func (o *Order) CreatedByAdmin() bool { return o.createdByAdmin }

// CreatedAt returns the creation timestamp the time windows are measured from.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Disputed reports whether the owner has raised a dispute on this order.
func (o *Order) Disputed() bool { return o.disputed }

// TotalPrice returns the creation-time total.
func (o *Order) TotalPrice() kernel.Money { return o.totalPrice }

// Comment returns the free-text comment supplied at creation.
func (o *Order) Comment() string { return o.comment }

// IsScheduled reports whether this order was materialized by the
// scheduled-order planner.
func (o *Order) IsScheduled() bool { return o.isScheduled }

// ScheduledFor returns the target working day of a scheduled order, or the
// zero Date for ad-hoc orders.
func (o *Order) ScheduledFor() kernel.Date { return o.scheduledFor }

// Items returns a copy of the item snapshot.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Cancel withdraws the order if its cancellation window is still open.
//
// A self-placed order can be cancelled within SelfServiceCancelWindow of
// creation, an admin-placed order within AdminProxyContestWindow. In both
// cases the order must still be Pending or Confirmed.
//
// now must be the wall-clock time of the current request; eligibility is
// re-evaluated on every attempt.
func (o *Order) Cancel(now time.Time) error {
	if !o.status.CanCancel() {
		return errs.NewIneligibleForCancellationError(
			fmt.Sprintf("status %s does not allow cancellation", o.status))
	}

	window := SelfServiceCancelWindow
	if o.createdByAdmin {
		window = AdminProxyContestWindow
	}
	if now.Sub(o.createdAt) >= window {
		return errs.NewIneligibleForCancellationError("cancellation window has elapsed")
	}

	o.status = Cancelled
	return nil
}

// CancelScheduled withdraws one materialized scheduled order ahead of its
// delivery day. Eligible orders are scheduled, still Pending, and targeted at
// a day strictly after today.
func (o *Order) CancelScheduled(today kernel.Date) error {
	if !o.isScheduled {
		return errs.NewIneligibleForCancellationError("order is not a scheduled order")
	}
	if o.status != Pending {
		return errs.NewIneligibleForCancellationError(
			fmt.Sprintf("status %s does not allow cancellation", o.status))
	}
	if !o.scheduledFor.After(today) {
		return errs.NewIneligibleForCancellationError("scheduled day is not in the future")
	}

	o.status = Cancelled
	return nil
}

// Dispute raises the owner's review flag on the order. The flag is one-way:
// it can be set once, only while the order is not terminal, and for
// admin-placed orders only within the contest window. The order status itself
// is unchanged; dispute resolution is an external admin workflow.
func (o *Order) Dispute(now time.Time) error {
	if o.disputed {
		return errs.NewAlreadyDisputedError(o.id)
	}
	if !o.status.CanDispute() {
		return errs.NewIneligibleForDisputeError(
			fmt.Sprintf("status %s does not allow disputes", o.status))
	}
	if o.createdByAdmin && now.Sub(o.createdAt) >= AdminProxyContestWindow {
		return errs.NewIneligibleForDisputeError("contest window has elapsed")
	}

	o.disputed = true
	return nil
}

// AdvanceTo moves the order forward along the delivery path
// (Pending -> Confirmed -> Delivered). This is the privileged admin path;
// it can never reach Settled or Cancelled and never moves backward.
func (o *Order) AdvanceTo(target Status) error {
	newStatus, err := o.status.Advance(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Settle marks a delivered order as financially reconciled.
// Settlement is monotonic: once Settled, an order never leaves that state.
func (o *Order) Settle() error {
	newStatus, err := o.status.Settle()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"userID", fmt.Errorf("%d is not a valid user id", userID))
	}
	o.userID = userID
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := kernel.Money{}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total = total.Add(item.Total())
	}

	o.items = append([]Item(nil), items...)
	o.totalPrice = total
	return nil
}
