package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// ErrNoPendingOrders is returned when there is no pending order to pick up.
// Callers running on a schedule treat it as an idle tick, not a failure.
var ErrNoPendingOrders = errors.New("no pending orders found")

// ProcessPendingOrderCommandHandler advances the oldest pending order to
// processing. It is driven by the fulfillment schedule, outside any customer
// request.
//
// Example:
//
//	handler := NewProcessPendingOrderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, NewProcessPendingOrderCommand())
//	if errors.Is(err, ErrNoPendingOrders) {
//	    // nothing to do this tick
//	}
type ProcessPendingOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewProcessPendingOrderCommandHandler creates a handler for fulfillment pickup.
func NewProcessPendingOrderCommandHandler(uowFactory OrderUoWFactory) ProcessPendingOrderCommandHandler {
	return ProcessPendingOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle picks the oldest pending order and moves it to processing within one
// transaction. The optimistic version check in the repository means a
// concurrent cancellation wins cleanly: this update then fails and nothing is
// half-applied.
func (h ProcessPendingOrderCommandHandler) Handle(ctx context.Context, cmd ProcessPendingOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetFirstPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrders
	}
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(order.StatusProcessing); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
