package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is one product-and-quantity entry within an order. The unit price is
// the price at placement time and is never recomputed from the catalog.
type Item struct {
	id          kernel.UUID
	orderID     kernel.UUID
	productID   kernel.UUID
	productName string
	quantity    int
	priceAtTime kernel.Money

	isConstructed bool
}

// NewItem creates a line item with validation. The price must already be the
// caller's captured unit price, not a catalog lookup.
func NewItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	priceAtTime kernel.Money,
) (Item, error) {
	item := Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setProductID(productID),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setPriceAtTime(priceAtTime),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// RestoreItem reconstructs a line item from persistence. The same validation
// applies, so corrupted rows surface as errors instead of invalid entities.
func RestoreItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	priceAtTime kernel.Money,
) (Item, error) {
	return NewItem(id, orderID, productID, productName, quantity, priceAtTime)
}

// Validate ensures the Item was created via a factory function.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the owning order's identifier.
func (i Item) OrderID() kernel.UUID {
	return i.orderID
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name captured at placement time.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// PriceAtTime returns the unit price frozen at placement time.
func (i Item) PriceAtTime() kernel.Money {
	return i.priceAtTime
}

// Subtotal returns quantity × price-at-time at full precision. Rounding is the
// aggregate's job, once, after summing.
func (i Item) Subtotal() kernel.Money {
	return i.priceAtTime.Mul(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setProductName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPriceAtTime(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.priceAtTime = price
	return nil
}
