package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrProcessPendingOrderCommandIsNotConstructed = errors.New(
	"ProcessPendingOrderCommand must be created via NewProcessPendingOrderCommand constructor",
)

// ProcessPendingOrderCommand asks fulfillment to pick up the oldest pending
// order and move it to processing. It carries no parameters; the handler
// selects the order.
type ProcessPendingOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessPendingOrderCommand creates a command to advance one pending order.
func NewProcessPendingOrderCommand() ProcessPendingOrderCommand {
	return ProcessPendingOrderCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ProcessPendingOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessPendingOrderCommandIsNotConstructed)
}
