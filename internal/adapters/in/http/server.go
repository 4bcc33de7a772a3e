// Package http exposes the order intake and lifecycle API over REST.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"secureorder/internal/core/application/usecases/commands"
	"secureorder/internal/core/application/usecases/queries"
	"secureorder/internal/core/domain/model/kernel"
	"secureorder/internal/core/domain/model/order"
	"secureorder/internal/pkg/errs"
)

// Server handles HTTP requests for the order API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	// Query handlers
	getOrderByIDHandler        queries.GetOrderByIDQueryHandler
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		getOrderByIDHandler:        getOrderByIDHandler,
		getOrdersByCustomerHandler: getOrdersByCustomerHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/secure-orders", s.CreateOrder)
	e.GET("/secure-orders", s.GetOrdersByCustomer)
	e.GET("/secure-orders/:id", s.GetOrderByID)
	e.PATCH("/secure-orders/:id/cancel", s.CancelOrder)
}

// CreateOrder handles POST /secure-orders - receives a new purchase order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var input createOrderRequest
	if err := ctx.Bind(&input); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		input.CustomerID,
		input.ProductID,
		input.Category,
		input.SalesChannel,
		input.PaymentMethod,
		input.TotalMonthlyPremiumAmount,
		input.InsuredAmount,
		input.Coverages,
		input.Assistances,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	aggregate, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(aggregate))
}

// GetOrderByID handles GET /secure-orders/:id - retrieves one order.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	view, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, orderResponseFromView(view))
}

// GetOrdersByCustomer handles GET /secure-orders?customerId=... - lists a
// customer's orders, newest first.
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByCustomerQuery(ctx.QueryParam("customerId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "customerId query parameter is required",
		})
	}

	views, err := s.getOrdersByCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]orderResponse, len(views))
	for i, view := range views {
		response[i] = orderResponseFromView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles PATCH /secure-orders/:id/cancel - cancels an order.
// Approved and already-settled orders cannot be cancelled and answer 409.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to cancel order")
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve cancelled order")
	}

	view, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve cancelled order")
	}

	return ctx.JSON(http.StatusOK, orderResponseFromView(view))
}

// writeError maps domain errors onto HTTP status codes.
func (s *Server) writeError(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, errs.ErrIllegalTransition):
		return ctx.JSON(http.StatusConflict, errorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}

// createOrderRequest is the intake payload of POST /secure-orders.
type createOrderRequest struct {
	CustomerID                string                     `json:"customer_id"`
	ProductID                 string                     `json:"product_id"`
	Category                  string                     `json:"category"`
	SalesChannel              string                     `json:"sales_channel"`
	PaymentMethod             string                     `json:"payment_method"`
	TotalMonthlyPremiumAmount decimal.Decimal            `json:"total_monthly_premium_amount"`
	InsuredAmount             *decimal.Decimal           `json:"insured_amount"`
	Coverages                 map[string]decimal.Decimal `json:"coverages"`
	Assistances               []string                   `json:"assistances"`
}

type statusChangeResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type orderResponse struct {
	ID                        string                     `json:"id"`
	CustomerID                string                     `json:"customer_id"`
	ProductID                 string                     `json:"product_id"`
	Category                  string                     `json:"category"`
	SalesChannel              string                     `json:"sales_channel"`
	PaymentMethod             string                     `json:"payment_method"`
	Status                    string                     `json:"status"`
	CreatedAt                 string                     `json:"created_at"`
	FinishedAt                *string                    `json:"finished_at"`
	TotalMonthlyPremiumAmount decimal.Decimal            `json:"total_monthly_premium_amount"`
	InsuredAmount             *decimal.Decimal           `json:"insured_amount"`
	Coverages                 map[string]decimal.Decimal `json:"coverages"`
	Assistances               []string                   `json:"assistances"`
	History                   []statusChangeResponse     `json:"history"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func orderResponseFromAggregate(aggregate *order.Order) orderResponse {
	history := make([]statusChangeResponse, 0, len(aggregate.History()))
	for _, entry := range aggregate.History() {
		history = append(history, statusChangeResponse{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp.Format(time.RFC3339Nano),
		})
	}

	var finishedAt *string
	if aggregate.FinishedAt() != nil {
		formatted := aggregate.FinishedAt().Format(time.RFC3339Nano)
		finishedAt = &formatted
	}

	return orderResponse{
		ID:                        aggregate.ID().String(),
		CustomerID:                aggregate.CustomerID(),
		ProductID:                 aggregate.ProductID(),
		Category:                  aggregate.Category(),
		SalesChannel:              aggregate.SalesChannel(),
		PaymentMethod:             aggregate.PaymentMethod(),
		Status:                    aggregate.Status().String(),
		CreatedAt:                 aggregate.CreatedAt().Format(time.RFC3339Nano),
		FinishedAt:                finishedAt,
		TotalMonthlyPremiumAmount: aggregate.TotalMonthlyPremiumAmount(),
		InsuredAmount:             aggregate.InsuredAmount(),
		Coverages:                 aggregate.Coverages(),
		Assistances:               aggregate.Assistances(),
		History:                   history,
	}
}

func orderResponseFromView(view queries.OrderView) orderResponse {
	history := make([]statusChangeResponse, 0, len(view.History))
	for _, entry := range view.History {
		history = append(history, statusChangeResponse{
			Status:    entry.Status,
			Timestamp: entry.Timestamp.Format(time.RFC3339Nano),
		})
	}

	var finishedAt *string
	if view.FinishedAt != nil {
		formatted := view.FinishedAt.Format(time.RFC3339Nano)
		finishedAt = &formatted
	}

	return orderResponse{
		ID:                        view.ID.String(),
		CustomerID:                view.CustomerID,
		ProductID:                 view.ProductID,
		Category:                  view.Category,
		SalesChannel:              view.SalesChannel,
		PaymentMethod:             view.PaymentMethod,
		Status:                    view.Status,
		CreatedAt:                 view.CreatedAt.Format(time.RFC3339Nano),
		FinishedAt:                finishedAt,
		TotalMonthlyPremiumAmount: view.TotalMonthlyPremiumAmount,
		InsuredAmount:             view.InsuredAmount,
		Coverages:                 view.Coverages,
		Assistances:               view.Assistances,
		History:                   history,
	}
}

