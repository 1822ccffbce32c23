package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCartLineIsNotConstructed = errors.New(
		"CartLine must be created via NewCartLine constructor",
	)
)

// CartLine is one entry of the cart snapshot submitted at checkout: a product
// reference, a quantity, and the unit price the cart captured from the
// catalog. The captured price, not a fresh catalog lookup, becomes the
// line item's price-at-time.
type CartLine struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   kernel.Money

	guard guard.ConstructorGuard
}

// NewCartLine creates a cart snapshot line with validation: valid product
// reference, non-empty name, positive quantity, non-negative price.
func NewCartLine(productID kernel.UUID, productName string, quantity int, unitPrice kernel.Money) (CartLine, error) {
	line := CartLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setProductName(productName),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return CartLine{}, err
	}

	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l CartLine) Validate() error {
	return l.guard.Validate(ErrCartLineIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (l CartLine) ProductID() kernel.UUID {
	return l.productID
}

// ProductName returns the product name as displayed in the cart.
func (l CartLine) ProductName() string {
	return l.productName
}

// Quantity returns the requested quantity.
func (l CartLine) Quantity() int {
	return l.quantity
}

// UnitPrice returns the unit price captured by the cart.
func (l CartLine) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l *CartLine) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *CartLine) setProductName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	l.productName = name
	return nil
}

func (l *CartLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, int(^uint(0)>>1))
	}
	l.quantity = quantity
	return nil
}

func (l *CartLine) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	l.unitPrice = price
	return nil
}

// PlaceOrderCommand represents a request to place an order from a cart
// snapshot on behalf of an authenticated customer.
//
// Example:
//
//	line, _ := NewCartLine(productID, "Wireless Headphones", 2, price)
//	cmd, err := NewPlaceOrderCommand(customerID, "123 Main St", []CartLine{line})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	shippingAddress string
	lines           []CartLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order. Validates that
// the customer is identified, the shipping address is not empty, and the cart
// snapshot holds at least one constructed line.
func NewPlaceOrderCommand(customerID kernel.UUID, shippingAddress string, lines []CartLine) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setShippingAddress(shippingAddress),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the ordering principal.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ShippingAddress returns the delivery address.
func (c PlaceOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// Lines returns the cart snapshot lines.
func (c PlaceOrderCommand) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		// A missing customer identity is an authentication failure, not bad input.
		return errs.NewUnauthorizedErrorWithCause("order placement requires an authenticated customer", err)
	}
	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setShippingAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}
	c.shippingAddress = address
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []CartLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("cartLines")
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = make([]CartLine, len(lines))
	copy(c.lines, lines)
	return nil
}
