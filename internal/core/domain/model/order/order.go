package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for one purchase transaction. It owns its line
// items exclusively and maintains these invariants:
//
//   - at least one line item, each referencing this order
//   - total always equals the reconciled sum over the items
//   - status changes only through the allowed transition set
//   - owner and shipping address are immutable after creation
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	shippingAddress string
	items           []Item
	totalAmount     kernel.Money
	status          Status
	version         int
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewOrder creates an order in pending status from already-built line items.
// The total is computed here from the items; callers cannot supply it.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	shippingAddress string,
	items []Item,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        StatusPending,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setShippingAddress(shippingAddress),
		o.setItems(id, items),
	); err != nil {
		return nil, err
	}

	o.reconcileTotal()
	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The stored total is
// checked against the reconciled sum so a drifted row cannot re-enter the
// domain unnoticed.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	shippingAddress string,
	items []Item,
	status Status,
	totalAmount kernel.Money,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setShippingAddress(shippingAddress),
		o.setItems(id, items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("order",
			fmt.Errorf("%d is not a valid version", version))
	}

	o.reconcileTotal()
	if err := totalAmount.Validate(); err != nil {
		return nil, err
	}
	if !o.totalAmount.IsEqual(totalAmount) {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("stored total %s does not match reconciled total %s",
				totalAmount, o.totalAmount))
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the principal that placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ShippingAddress returns the delivery address captured at placement time.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the derived order total at the currency scale.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the optimistic concurrency version. It starts at 1 and the
// repository increments it on every successful update.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last accepted mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// TransitionTo moves the order to a new status if the transition is in the
// allowed set, refreshing updatedAt. No other field changes. On failure the
// order is left untouched.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel moves the order to cancelled. Only pending or processing orders can
// be cancelled; anything else fails with ErrInvalidTransition.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// reconcileTotal recomputes the stored total as the sum of quantity ×
// price-at-time over all current items: full-precision sum, rounded once.
// Every path that sets the item set must end here, so any future item
// mutation inherits the invariant. An empty item set reconciles to zero.
func (o *Order) reconcileTotal() {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.totalAmount = total.Rounded()
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setShippingAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setItems(orderID kernel.UUID, items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if !item.OrderID().IsEqual(orderID) {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("item %s belongs to order %s", item.ID(), item.OrderID()))
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
