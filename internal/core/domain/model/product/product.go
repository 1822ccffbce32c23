// Package product contains the catalog reference entity. Products are
// read-only from the order core's point of view: they provide identity, name,
// and category, and their current price is never consulted when an order is
// placed (the cart supplies the captured unit price).
package product

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory functions.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is a catalog entry.
type Product struct {
	id          kernel.UUID
	name        string
	category    string
	description string
	price       kernel.Money

	isConstructed bool
}

// NewProduct creates a catalog entry with validation.
func NewProduct(id kernel.UUID, name, category, description string, price kernel.Money) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCategory(category),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	p.description = description
	return p, nil
}

// RestoreProduct reconstructs a catalog entry from persistence.
func RestoreProduct(id kernel.UUID, name, category, description string, price kernel.Money) (*Product, error) {
	return NewProduct(id, name, category, description, price)
}

// Validate ensures the Product was created via a factory function.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Category returns the catalog category.
func (p *Product) Category() string {
	return p.category
}

// Description returns the optional long description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current catalog price. This is reference data only; order
// placement uses the cart's captured unit price instead.
func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
