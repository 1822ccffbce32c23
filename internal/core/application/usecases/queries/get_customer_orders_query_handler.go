package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves a customer's order history from the
// database. Reads rows directly instead of hydrating aggregates, which keeps
// the history endpoint cheap for customers with many orders.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for order history queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back newest first, each with all of
// its line items.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
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
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC, o.id, i.id
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	index := make(map[uuid.UUID]int)

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
			return nil, err
		}

		pos, seen := index[id]
		if !seen {
			resp, respErr := buildOrderResponse(id, shippingAddress, status, totalAmount, createdAt, updatedAt)
			if respErr != nil {
				return nil, respErr
			}
			orders = append(orders, resp)
			pos = len(orders) - 1
			index[id] = pos
		}

		item, itemErr := buildItemResponse(productID, productName, quantity, priceAtTime)
		if itemErr != nil {
			return nil, itemErr
		}
		orders[pos].Items = append(orders[pos].Items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func buildOrderResponse(
	id uuid.UUID,
	shippingAddress string,
	status int,
	totalAmount decimal.Decimal,
	createdAt time.Time,
	updatedAt time.Time,
) (OrderResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	total, err := kernel.NewMoney(totalAmount)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:              orderID,
		Status:          order.Status(status).String(),
		ShippingAddress: shippingAddress,
		TotalAmount:     total,
		CreatedAt:       createdAt.UTC(),
		UpdatedAt:       updatedAt.UTC(),
		Items:           make([]OrderItemResponse, 0),
	}, nil
}

func buildItemResponse(
	productID uuid.UUID,
	productName string,
	quantity int,
	priceAtTime decimal.Decimal,
) (OrderItemResponse, error) {
	id, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return OrderItemResponse{}, err
	}

	price, err := kernel.NewMoney(priceAtTime)
	if err != nil {
		return OrderItemResponse{}, err
	}

	return OrderItemResponse{
		ProductID:   id,
		ProductName: productName,
		Quantity:    quantity,
		PriceAtTime: price,
		Subtotal:    price.Mul(quantity).Rounded(),
	}, nil
}
