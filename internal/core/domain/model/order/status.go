package order

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a requested status change is not in
// the allowed transition set. Wrapped errors carry the offending pair.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Shipped and Delivered cannot be cancelled; Delivered and Cancelled are
// terminal.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status assigned at order placement.
	StatusPending

	// StatusProcessing means fulfillment has picked the order up.
	StatusProcessing

	// StatusShipped means the order has left the warehouse.
	StatusShipped

	// StatusDelivered is the terminal happy-path status.
	StatusDelivered

	// StatusCancelled is the terminal status of the cancellation branch.
	StatusCancelled
)

// getStatusStrings returns the wire/display name of every status, including
// the invalid zero value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusProcessing: "processing",
		StatusShipped:    "shipped",
		StatusDelivered:  "delivered",
		StatusCancelled:  "cancelled",
	}
}

// getValidStatusStrings returns only the statuses an order may actually hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "pending",
		StatusProcessing: "processing",
		StatusShipped:    "shipped",
		StatusDelivered:  "delivered",
		StatusCancelled:  "cancelled",
	}
}

// allowedTransitions is the exhaustive transition set. Absence means the
// transition is forbidden.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:    {StatusProcessing, StatusCancelled},
		StatusProcessing: {StatusShipped, StatusCancelled},
		StatusShipped:    {StatusDelivered},
	}
}

// ParseStatus converts a wire name such as "pending" into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the valid lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any value; invalid statuses
// render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether the transition to target is in the allowed set.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range allowedTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status if the transition is allowed,
// otherwise ErrInvalidTransition. The receiver is never modified.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}
	return target, nil
}

// CanCancel reports whether cancellation is still possible from this status.
func (s Status) CanCancel() bool {
	return s == StatusPending || s == StatusProcessing
}

// Cancel transitions to Cancelled if the current status permits it.
func (s Status) Cancel() (Status, error) {
	if !s.CanCancel() {
		return StatusUnknown, fmt.Errorf(
			"%w: only pending or processing orders can be cancelled, order is %s",
			ErrInvalidTransition, s)
	}
	return StatusCancelled, nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return len(allowedTransitions()[s]) == 0 && s.Validate() == nil
}
