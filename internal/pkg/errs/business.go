package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for order-lifecycle business rules. These follow the same
// unwrapping convention as the validation errors in errs.go.
var (
	ErrConflict                  = errors.New("concurrent modification conflict")
	ErrIneligibleForCancellation = errors.New("order is not eligible for cancellation")
	ErrIneligibleForDispute      = errors.New("order is not eligible for dispute")
	ErrAlreadyDisputed           = errors.New("order is already disputed")
	ErrInvalidState              = errors.New("invalid state for operation")
)

// ConflictError signals an optimistic-concurrency mismatch: the stored row no
// longer matched the state read before the operation. Callers must refetch and
// retry; a conflict is never treated as success.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a ConflictError without an underlying cause.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

// NewConflictErrorWithCause creates a ConflictError wrapping a lower-level error.
func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrConflict, e.ParamName, e.ID, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %v", ErrConflict, e.ID)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// IneligibleForCancellationError explains why an order could not be cancelled
// (wrong status, or the cancellation window has elapsed).
type IneligibleForCancellationError struct {
	Reason string
}

// NewIneligibleForCancellationError creates an IneligibleForCancellationError with a reason.
func NewIneligibleForCancellationError(reason string) *IneligibleForCancellationError {
	return &IneligibleForCancellationError{Reason: reason}
}

func (e *IneligibleForCancellationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrIneligibleForCancellation, e.Reason)
}

func (e *IneligibleForCancellationError) Unwrap() error {
	return ErrIneligibleForCancellation
}

// IneligibleForDisputeError explains why a dispute could not be raised.
type IneligibleForDisputeError struct {
	Reason string
}

// NewIneligibleForDisputeError creates an IneligibleForDisputeError with a reason.
func NewIneligibleForDisputeError(reason string) *IneligibleForDisputeError {
	return &IneligibleForDisputeError{Reason: reason}
}

func (e *IneligibleForDisputeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrIneligibleForDispute, e.Reason)
}

func (e *IneligibleForDisputeError) Unwrap() error {
	return ErrIneligibleForDispute
}

// AlreadyDisputedError signals a second dispute attempt on the same order.
// The disputed flag is one-way: once raised it stays raised.
type AlreadyDisputedError struct {
	ID any
}

// NewAlreadyDisputedError creates an AlreadyDisputedError for the given order id.
func NewAlreadyDisputedError(id any) *AlreadyDisputedError {
	return &AlreadyDisputedError{ID: id}
}

func (e *AlreadyDisputedError) Error() string {
	return fmt.Sprintf("%s: %v", ErrAlreadyDisputed, e.ID)
}

func (e *AlreadyDisputedError) Unwrap() error {
	return ErrAlreadyDisputed
}

// InvalidStateError signals a status transition that the order state machine
// does not permit. Status carries the current status name, Operation the
// attempted transition.
type InvalidStateError struct {
	Operation string
	Status    string
}

// NewInvalidStateError creates an InvalidStateError for the given operation and status.
func NewInvalidStateError(operation, status string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Status: status}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s is not a valid status to %s", ErrInvalidState, e.Status, e.Operation)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
