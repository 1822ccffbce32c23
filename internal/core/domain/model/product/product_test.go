package product_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	price, err := kernel.MoneyFromString("89.99")
	require.NoError(t, err)

	t.Run("creates valid product", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.NewProduct(id, "Wireless Headphones", "electronics", "Over-ear, 30h battery", price)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Wireless Headphones", p.Name())
		assert.Equal(t, "electronics", p.Category())
		assert.Equal(t, "Over-ear, 30h battery", p.Description())
		assert.Equal(t, "89.99", p.Price().String())
	})

	t.Run("description is optional", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Socks", "apparel", "", price)

		require.NoError(t, err)
		assert.Empty(t, p.Description())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", "apparel", "", price)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty category", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Socks", "", "", price)

		require.Error(t, err)
	})

	t.Run("rejects invalid identifier", func(t *testing.T) {
		var badID kernel.UUID

		_, err := product.NewProduct(badID, "Socks", "apparel", "", price)

		require.Error(t, err)
	})

	t.Run("rejects unconstructed price", func(t *testing.T) {
		var badPrice kernel.Money

		_, err := product.NewProduct(kernel.NewUUID(), "Socks", "apparel", "", badPrice)

		require.Error(t, err)
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("nil product is invalid", func(t *testing.T) {
		var p *product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}
