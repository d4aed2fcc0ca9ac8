// Package http exposes the application use cases over the REST API described by the
// generated servers.ServerInterface.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"martdelivery/internal/core/application/usecases/commands"
	"martdelivery/internal/core/application/usecases/queries"
	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/mart"
	"martdelivery/internal/core/domain/model/order"
	"martdelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (order.Status, error)
	}
	UpdateOrderLocationHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderLocationCommand) (*order.Order, error)
	}
	CreateMartHandler interface {
		Handle(ctx context.Context, cmd commands.CreateMartCommand) (*mart.Mart, error)
	}
	GetOptimizedBatchHandler interface {
		Handle(ctx context.Context, query queries.GetOptimizedBatchQuery) (queries.GetOptimizedBatchQueryResponse, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
	}
	GetMartHandler interface {
		Handle(ctx context.Context, query queries.GetMartQuery) (queries.MartView, error)
	}
	GetMartsByOwnerHandler interface {
		Handle(ctx context.Context, query queries.GetMartsByOwnerQuery) ([]queries.MartView, error)
	}
)

// Handlers groups the use cases served by the API.
type Handlers struct {
	CreateOrder         CreateOrderHandler
	ChangeOrderStatus   ChangeOrderStatusHandler
	UpdateOrderLocation UpdateOrderLocationHandler
	CreateMart          CreateMartHandler
	GetOptimizedBatch   GetOptimizedBatchHandler
	GetOrder            GetOrderHandler
	GetMart             GetMartHandler
	GetMartsByOwner     GetMartsByOwnerHandler
}

// Server implements servers.ServerInterface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "HTTPServer"),
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]order.Item, 0, len(body.Items))
	for _, item := range body.Items {
		domainItem, err := order.NewItem(kernelID(item.ProductId), item.Quantity, item.Price)
		if err != nil {
			return s.fail(ctx, err)
		}
		items = append(items, domainItem)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernelID(body.MartId), items, body.CustomerAddressText, body.Phone,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse(created))
}

// ChangeOrderStatus handles PUT /api/v1/orders/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	var body servers.ChangeOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(
		kernelID(body.OrderId), string(body.Status), optionalKernelID(body.DeliveryPersonId),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderStatusResponse{Status: servers.OrderStatus(status.String())})
}

// UpdateOrderLocation handles PUT /api/v1/orders/location.
func (s *Server) UpdateOrderLocation(ctx echo.Context) error {
	var body struct {
		OrderID openapi_types.UUID `json:"orderId"`
		Lng     *float64           `json:"lng"`
		Lat     *float64           `json:"lat"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "lng and lat must be numbers")
	}

	cmd, err := commands.NewUpdateOrderLocationCommand(kernelID(body.OrderID), body.Lng, body.Lat)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.UpdateOrderLocation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(updated))
}

// GetOptimizedBatch handles GET /api/v1/orders/batch/{martId}.
func (s *Server) GetOptimizedBatch(ctx echo.Context, martID openapi_types.UUID) error {
	query, err := queries.NewGetOptimizedBatchQuery(kernelID(martID))
	if err != nil {
		return s.fail(ctx, err)
	}

	batch, err := s.handlers.GetOptimizedBatch.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, batchResponse(batch))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	query, err := queries.NewGetOrderQuery(kernelID(orderID))
	if err != nil {
		return s.fail(ctx, err)
	}

	found, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(found))
}

// CreateMart handles POST /api/v1/marts.
func (s *Server) CreateMart(ctx echo.Context) error {
	var body servers.CreateMartJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateMartCommand(kernel.NewUUID(), kernelID(body.Owner), body.Name, body.Address)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.CreateMart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, martResponseFromDomain(created))
}

// GetMart handles GET /api/v1/marts/{martId}.
func (s *Server) GetMart(ctx echo.Context, martID openapi_types.UUID) error {
	query, err := queries.NewGetMartQuery(kernelID(martID))
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetMart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, martResponse(view))
}

// GetMartsByOwner handles GET /api/v1/marts/owner/{ownerId}.
func (s *Server) GetMartsByOwner(ctx echo.Context, ownerID openapi_types.UUID) error {
	query, err := queries.NewGetMartsByOwnerQuery(kernelID(ownerID))
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.handlers.GetMartsByOwner.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Mart, len(views))
	for i, view := range views {
		response[i] = martResponse(view)
	}
	return ctx.JSON(http.StatusOK, response)
}
