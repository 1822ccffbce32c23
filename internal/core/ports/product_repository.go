package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductRepository defines the read-only persistence contract for the
// product catalog. The order core never writes products and never reads
// their price during order placement.
type ProductRepository interface {
	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves the full catalog, sorted by name.
	GetAll(ctx context.Context) ([]*product.Product, error)
}
