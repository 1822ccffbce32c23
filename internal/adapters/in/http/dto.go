package http

import (
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"
)

// ErrorResponse is the JSON body of every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the checkout payload. Each item carries the unit
// price the cart captured; that price is frozen into the order.
type PlaceOrderRequest struct {
	ShippingAddress string                  `json:"shipping_address"`
	Items           []PlaceOrderItemRequest `json:"items"`
}

// PlaceOrderItemRequest is one cart line. Prices travel as decimal strings
// so client float formatting can never distort an amount.
type PlaceOrderItemRequest struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

// ChangeOrderStatusRequest is the fulfillment-side transition payload.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the JSON shape of one order.
type OrderResponse struct {
	ID              string              `json:"id"`
	Status          string              `json:"status"`
	ShippingAddress string              `json:"shipping_address"`
	TotalAmount     string              `json:"total_amount"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Items           []OrderItemResponse `json:"items"`
}

// OrderItemResponse is the JSON shape of one line item.
type OrderItemResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	PriceAtTime string `json:"price_at_time"`
	Subtotal    string `json:"subtotal"`
}

// ProductResponse is the JSON shape of one catalog product.
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
}

func orderFromAggregate(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			PriceAtTime: item.PriceAtTime().String(),
			Subtotal:    item.Subtotal().Rounded().String(),
		})
	}

	return OrderResponse{
		ID:              aggregate.ID().String(),
		Status:          aggregate.Status().String(),
		ShippingAddress: aggregate.ShippingAddress(),
		TotalAmount:     aggregate.TotalAmount().String(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		Items:           items,
	}
}

func orderFromReadModel(resp queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			PriceAtTime: item.PriceAtTime.String(),
			Subtotal:    item.Subtotal.String(),
		})
	}

	return OrderResponse{
		ID:              resp.ID.String(),
		Status:          resp.Status,
		ShippingAddress: resp.ShippingAddress,
		TotalAmount:     resp.TotalAmount.String(),
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
		Items:           items,
	}
}

func productFromReadModel(resp queries.GetProductsQueryResponse) ProductResponse {
	return ProductResponse{
		ID:          resp.ID.String(),
		Name:        resp.Name,
		Category:    resp.Category,
		Description: resp.Description,
		Price:       resp.Price.String(),
	}
}
