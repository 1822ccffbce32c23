package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetCustomerOrderQueryIsNotConstructed = errors.New(
	"GetCustomerOrderQuery must be created via NewGetCustomerOrderQuery constructor",
)

// GetCustomerOrderQuery retrieves one order, scoped to the requesting
// customer. An order owned by someone else comes back as not found.
type GetCustomerOrderQuery struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrderQuery creates a query for one of the customer's orders.
func NewGetCustomerOrderQuery(orderID, customerID kernel.UUID) (GetCustomerOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetCustomerOrderQuery{}, err
	}
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrderQuery{},
			errs.NewUnauthorizedErrorWithCause("order lookup requires an authenticated customer", err)
	}

	return GetCustomerOrderQuery{
		orderID:    orderID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetCustomerOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CustomerID returns the identifier of the requesting principal.
func (q GetCustomerOrderQuery) CustomerID() kernel.UUID {
	return q.customerID
}
