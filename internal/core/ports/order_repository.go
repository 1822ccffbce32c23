// Package ports defines persistence contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its line items are written as one unit: Add either persists
// the complete aggregate or nothing.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its line items.
	// The write is atomic: a failure leaves no order row and no item rows.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order's row (status, total,
	// updated-at) under an optimistic version check. A stale version fails
	// with a version error and changes nothing.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items regardless of owner.
	// Reserved for fulfillment/admin paths.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForCustomer retrieves an order with its line items only if it is
	// owned by the given customer. Orders of other principals surface as
	// not found.
	GetForCustomer(ctx context.Context, id, customerID kernel.UUID) (*order.Order, error)

	// GetAllForCustomer retrieves all orders owned by the given customer,
	// newest first, each with its line items.
	GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetFirstPending retrieves the oldest order still in pending status.
	// Used by the fulfillment workflow to pick up placed orders.
	GetFirstPending(ctx context.Context) (*order.Order, error)
}
