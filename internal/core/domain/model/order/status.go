package order

import (
	"fmt"

	"canteen/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so that every caller
// routes through the same transition rules instead of re-deriving eligibility
// checks at each call site.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Delivered ──> Settled
//	   │            │
//	   └────────────┴──> Cancelled
//
// Settled and Cancelled are terminal. The admin advance path may jump forward
// more than one step (Pending -> Delivered) but never backward and never into
// a terminal state; settlement and cancellation have dedicated operations.
//
// The disputed flag on an order is a separate boolean overlay and is not part
// of this enumeration.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every order, self-placed or admin-placed.
	Pending

	// Confirmed indicates the kitchen has accepted the order.
	Confirmed

	// Delivered indicates the order has been handed to the customer and is
	// awaiting financial settlement.
	Delivered

	// Settled indicates the delivered order has been financially reconciled.
	// This is a terminal state.
	Settled

	// Cancelled indicates the order was withdrawn inside its cancellation
	// window. This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Delivered: "Delivered",
		Settled:   "Settled",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Delivered: "Delivered",
		Settled:   "Settled",
		Cancelled: "Cancelled",
	}
}

// StatusFromString converts a persisted or wire-format status name back into
// a Status value. The match is exact; anything unrecognized is a
// ValueIsInvalidError.
func StatusFromString(value string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", value))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Delivered, Settled, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Settled || s == Cancelled
}

// advanceRank gives the position of a status on the forward delivery path.
// Statuses off that path (terminal states, Unknown) have no rank.
func (s Status) advanceRank() (int, bool) {
	switch s {
	case Pending:
		return 1, true
	case Confirmed:
		return 2, true
	case Delivered:
		return 3, true
	default:
		return 0, false
	}
}

// Advance transitions the status forward along Pending -> Confirmed ->
// Delivered. Multi-step jumps are allowed; backward movement is not, and
// neither Settled nor Cancelled is reachable through this path.
//
// Returns:
//   - (target, nil) on a valid forward transition
//   - (0, InvalidStateError) otherwise
func (s Status) Advance(target Status) (Status, error) {
	from, ok := s.advanceRank()
	if !ok {
		return 0, errs.NewInvalidStateError(fmt.Sprintf("advance to %s", target), s.String())
	}

	to, ok := target.advanceRank()
	if !ok || to <= from {
		return 0, errs.NewInvalidStateError(fmt.Sprintf("advance to %s", target), s.String())
	}

	return target, nil
}

// CanCancel reports whether the status allows cancellation.
// Only Pending and Confirmed orders can still be withdrawn; time-window
// eligibility is checked by the Order aggregate on top of this.
func (s Status) CanCancel() bool {
	return s == Pending || s == Confirmed
}

// CanDispute reports whether the status allows raising a dispute.
// Terminal orders cannot be disputed.
func (s Status) CanDispute() bool {
	return s == Pending || s == Confirmed || s == Delivered
}

// Settle transitions the status to Settled.
//
// Valid transitions:
//   - Delivered -> Settled
//
// Everything else fails with InvalidStateError: settlement is monotonic and
// only delivered orders can be reconciled.
func (s Status) Settle() (Status, error) {
	if s != Delivered {
		return 0, errs.NewInvalidStateError("settle", s.String())
	}
	return Settled, nil
}
