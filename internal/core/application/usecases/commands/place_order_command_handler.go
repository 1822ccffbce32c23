package commands

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Builds the order aggregate from the cart snapshot (the aggregate computes
// the total), verifies the referenced products exist, and persists the order
// with all of its line items in one transaction. The caller observes either
// the complete order or nothing.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("order %s placed, total %s", placed.ID(), placed.TotalAmount())
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory because placement reads the catalog and writes orders
// in the same transaction.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command. On success it returns the
// order re-read after commit, so the caller sees persisted identifiers and
// timestamps rather than an echo of its input.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orderID := kernel.NewUUID()
	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		item, err := order.NewItem(
			kernel.NewUUID(),
			orderID,
			line.ProductID(),
			line.ProductName(),
			line.Quantity(),
			line.UnitPrice(),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(orderID, cmd.CustomerID(), cmd.ShippingAddress(), items)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	for _, line := range cmd.Lines() {
		if _, err = productRepo.Get(ctx, line.ProductID()); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, errs.NewValueIsInvalidErrorWithCause("cartLines",
					fmt.Errorf("product %s does not exist", line.ProductID()))
			}
			return nil, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Re-read outside the finished transaction.
	return uow.OrderRepository().GetForCustomer(ctx, orderID, cmd.CustomerID())
}
