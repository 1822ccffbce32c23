// Package http implements the inbound HTTP API on top of echo. Handlers
// translate JSON payloads into commands and queries; decisions about order
// state live in the domain, not here.
package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler        commands.PlaceOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getCustomerOrderHandler  queries.GetCustomerOrderQueryHandler
	getProductsHandler       queries.GetProductsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getCustomerOrderHandler queries.GetCustomerOrderQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		getCustomerOrderHandler:  getCustomerOrderHandler,
		getProductsHandler:       getProductsHandler,
	}
}

// RegisterRoutes wires the API routes onto the echo instance. Everything
// under /api/v1 requires an authenticated principal.
func (s *Server) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	api := e.Group("/api/v1", authMiddleware)

	api.GET("/products", s.GetProducts)
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	principal, ok := PrincipalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	lines := make([]commands.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return badRequest(c, "invalid product_id: "+item.ProductID)
		}

		unitPrice, err := kernel.MoneyFromString(item.UnitPrice)
		if err != nil {
			return badRequest(c, "invalid unit_price: "+item.UnitPrice)
		}

		line, err := commands.NewCartLine(productID, item.ProductName, item.Quantity, unitPrice)
		if err != nil {
			return errorJSON(c, err)
		}
		lines = append(lines, line)
	}

	cmd, err := commands.NewPlaceOrderCommand(principal.ID, req.ShippingAddress, lines)
	if err != nil {
		return errorJSON(c, err)
	}

	placed, err := s.placeOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, orderFromAggregate(placed))
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(c echo.Context) error {
	principal, ok := PrincipalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	query, err := queries.NewGetCustomerOrdersQuery(principal.ID)
	if err != nil {
		return errorJSON(c, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return errorJSON(c, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromReadModel(o))
	}

	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	principal, ok := PrincipalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order ID")
	}

	query, err := queries.NewGetCustomerOrderQuery(orderID, principal.ID)
	if err != nil {
		return errorJSON(c, err)
	}

	result, err := s.getCustomerOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, orderFromReadModel(result))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	principal, ok := PrincipalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order ID")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, principal.ID)
	if err != nil {
		return errorJSON(c, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, orderFromAggregate(cancelled))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status. Reserved for
// fulfillment staff; customers cancel through CancelOrder instead.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	principal, ok := PrincipalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	if !principal.IsAdmin() {
		return c.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "status transitions require the admin permission",
		})
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order ID")
	}

	var req ChangeOrderStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	newStatus, err := order.ParseStatus(req.Status)
	if err != nil {
		return badRequest(c, "unknown status: "+req.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, newStatus)
	if err != nil {
		return errorJSON(c, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, orderFromAggregate(updated))
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(c echo.Context) error {
	query := queries.NewGetProductsQuery()

	products, err := s.getProductsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return errorJSON(c, err)
	}

	response := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, productFromReadModel(p))
	}

	return c.JSON(http.StatusOK, response)
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "authentication required",
	})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorJSON maps application and domain errors onto HTTP status codes.
func errorJSON(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return c.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
