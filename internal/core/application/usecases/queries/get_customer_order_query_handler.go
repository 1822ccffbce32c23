package queries

import (
	"context"
	"time"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCustomerOrderQueryHandler retrieves a single order with its line items,
// owner-scoped at the SQL level.
type GetCustomerOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrderQueryHandler creates a handler for single-order queries.
func NewGetCustomerOrderQueryHandler(db *gorm.DB) GetCustomerOrderQueryHandler {
	return GetCustomerOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError both when the
// order does not exist and when it belongs to another customer.
func (h GetCustomerOrderQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.shipping_address,
			o.status,
			o.total_amount,
			o.created_at,
			o.updated_at,
			i.product_id,
			i.product_name,
			i.quantity,
			i.price_at_time
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE o.id = ? AND o.customer_id = ?
		ORDER BY i.id
	`, query.OrderID().Bytes(), query.CustomerID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	var (
		resp  OrderResponse
		found bool
	)

	for rows.Next() {
		var (
			id              uuid.UUID
			shippingAddress string
			status          int
			totalAmount     decimal.Decimal
			createdAt       time.Time
			updatedAt       time.Time
			productID       uuid.UUID
			productName     string
			quantity        int
			priceAtTime     decimal.Decimal
		)

		err = rows.Scan(
			&id,
			&shippingAddress,
			&status,
			&totalAmount,
			&createdAt,
			&updatedAt,
			&productID,
			&productName,
			&quantity,
			&priceAtTime,
		)
		if err != nil {
			return OrderResponse{}, err
		}

		if !found {
			resp, err = buildOrderResponse(id, shippingAddress, status, totalAmount, createdAt, updatedAt)
			if err != nil {
				return OrderResponse{}, err
			}
			found = true
		}

		item, itemErr := buildItemResponse(productID, productName, quantity, priceAtTime)
		if itemErr != nil {
			return OrderResponse{}, itemErr
		}
		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return OrderResponse{}, err
	}

	if !found {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return resp, nil
}
