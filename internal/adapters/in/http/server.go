package http

import (
	"context"
	"log/slog"
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

type (
	RegisterUserHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterUserCommand) error
	}
	ApproveUserHandler interface {
		Handle(ctx context.Context, cmd commands.ApproveUserCommand) error
	}
	AddStockItemHandler interface {
		Handle(ctx context.Context, cmd commands.AddStockItemCommand) error
	}
	ApproveStockItemHandler interface {
		Handle(ctx context.Context, cmd commands.ApproveStockItemCommand) error
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	RequestTransitionHandler interface {
		Handle(ctx context.Context, cmd commands.RequestTransitionCommand) error
	}
	GetDashboardHandler interface {
		Handle(ctx context.Context, query queries.GetDashboardQuery) (queries.GetDashboardQueryResponse, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	GetEligibleDriversHandler interface {
		Handle(ctx context.Context, query queries.GetEligibleDriversQuery) ([]queries.UserView, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	RegisterUser      RegisterUserHandler
	ApproveUser       ApproveUserHandler
	AddStockItem      AddStockItemHandler
	ApproveStockItem  ApproveStockItemHandler
	CreateOrder       CreateOrderHandler
	DeleteOrder       DeleteOrderHandler
	RequestTransition RequestTransitionHandler

	// Query handlers
	GetDashboard       GetDashboardHandler
	GetOrder           GetOrderHandler
	GetEligibleDrivers GetEligibleDriversHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
	newID    func() kernel.UUID
}

// NewServer creates the echo adapter; Server.RegisterRoutes mounts it.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
		newID:    kernel.NewUUID,
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// RegisterUser handles POST /api/v1/users - registers an unapproved user.
//
//	@Summary	Register a user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		user	body		NewUser	true	"User"
//	@Success	201		{object}	Created
//	@Failure	400		{object}	Error
//	@Failure	409		{object}	Error
//	@Router		/users [post]
func (s *Server) RegisterUser(ctx echo.Context) error {
	var body NewUser
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	role, err := user.ParseRole(body.Role)
	if err != nil {
		return badRequest(ctx, "Invalid user data", err)
	}

	id := s.newID()
	cmd, err := commands.NewRegisterUserCommand(id, body.Name, role)
	if err != nil {
		return badRequest(ctx, "Invalid user data", err)
	}

	if err = s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: id.Bytes()})
}

// ApproveUser handles POST /api/v1/users/{id}/approve.
//
//	@Summary	Approve a user
//	@Tags		users
//	@Param		X-Actor-ID	header	string	true	"Acting admin"
//	@Param		id			path	string	true	"User ID"
//	@Success	204
//	@Failure	403	{object}	Error
//	@Failure	404	{object}	Error
//	@Router		/users/{id}/approve [post]
func (s *Server) ApproveUser(ctx echo.Context) error {
	userID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid format for parameter id", err)
	}

	cmd, err := commands.NewApproveUserCommand(actorFrom(ctx), userID)
	if err != nil {
		return badRequest(ctx, "Invalid request", err)
	}

	if err = s.handlers.ApproveUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetEligibleDrivers handles GET /api/v1/drivers/eligible.
//
//	@Summary	List drivers an order may be assigned to
//	@Tags		users
//	@Produce	json
//	@Param		X-Actor-ID	header		string	true	"Acting admin"
//	@Success	200			{array}		User
//	@Failure	403			{object}	Error
//	@Router		/drivers/eligible [get]
func (s *Server) GetEligibleDrivers(ctx echo.Context) error {
	query, err := queries.NewGetEligibleDriversQuery(actorFrom(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid request", err)
	}

	drivers, err := s.handlers.GetEligibleDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]User, len(drivers))
	for i, d := range drivers {
		response[i] = toUser(d)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddStockItem handles POST /api/v1/stock - adds an unapproved stock line.
//
//	@Summary	Add a stock item
//	@Tags		stock
//	@Accept		json
//	@Produce	json
//	@Param		X-Actor-ID	header		string			true	"Acting seller"
//	@Param		item		body		NewStockItem	true	"Stock item"
//	@Success	201			{object}	Created
//	@Failure	403			{object}	Error
//	@Failure	409			{object}	Error
//	@Router		/stock [post]
func (s *Server) AddStockItem(ctx echo.Context) error {
	var body NewStockItem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	id := s.newID()
	cmd, err := commands.NewAddStockItemCommand(id, actorFrom(ctx), body.Name, body.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid stock item data", err)
	}

	if err = s.handlers.AddStockItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: id.Bytes()})
}

// ApproveStockItem handles POST /api/v1/stock/{id}/approve.
//
//	@Summary	Approve a stock item
//	@Tags		stock
//	@Param		X-Actor-ID	header	string	true	"Acting admin"
//	@Param		id			path	string	true	"Stock item ID"
//	@Success	204
//	@Failure	403	{object}	Error
//	@Failure	404	{object}	Error
//	@Router		/stock/{id}/approve [post]
func (s *Server) ApproveStockItem(ctx echo.Context) error {
	itemID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid format for parameter id", err)
	}

	cmd, err := commands.NewApproveStockItemCommand(actorFrom(ctx), itemID)
	if err != nil {
		return badRequest(ctx, "Invalid request", err)
	}

	if err = s.handlers.ApproveStockItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders - creates a pending order.
//
//	@Summary	Create an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		X-Actor-ID	header		string		true	"Acting seller or admin"
//	@Param		order		body		NewOrder	true	"Order"
//	@Success	201			{object}	Created
//	@Failure	403			{object}	Error
//	@Failure	422			{object}	Error
//	@Router		/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	actorID := actorFrom(ctx)
	sellerID := actorID
	if body.SellerId != nil {
		var err error
		if sellerID, err = kernel.UUIDFromBytes(body.SellerId[:]); err != nil {
			return badRequest(ctx, "Invalid order data", err)
		}
	}

	id := s.newID()
	cmd, err := commands.NewCreateOrderCommand(id, actorID, sellerID, body.details())
	if err != nil {
		return badRequest(ctx, "Invalid order data", err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: id.Bytes()})
}

// GetDashboard handles GET /api/v1/orders - the actor's orders and status counts.
//
//	@Summary	Dashboard
//	@Tags		orders
//	@Produce	json
//	@Param		X-Actor-ID	header		string	true	"Acting user"
//	@Param		status		query		string	false	"Quick filter"
//	@Success	200			{object}	Dashboard
//	@Failure	403			{object}	Error
//	@Router		/orders [get]
func (s *Server) GetDashboard(ctx echo.Context) error {
	var status *string
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &status); err != nil {
		return badRequest(ctx, "Invalid format for parameter status", err)
	}

	query, err := queries.NewGetDashboardQuery(actorFrom(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid request", err)
	}
	if status != nil {
		filter, parseErr := order.ParseStatus(*status)
		if parseErr != nil {
			return badRequest(ctx, "Invalid format for parameter status", parseErr)
		}
		query = query.WithStatus(filter)
	}

	dashboard, err := s.handlers.GetDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDashboard(dashboard))
}

// GetOrder handles GET /api/v1/orders/{id} - an order and the statuses the
// actor may move it to.
//
//	@Summary	Get an order
//	@Tags		orders
//	@Produce	json
//	@Param		X-Actor-ID	header		string	true	"Acting user"
//	@Param		id			path		string	true	"Order ID"
//	@Success	200			{object}	OrderWithTransitions
//	@Failure	403			{object}	Error
//	@Failure	404			{object}	Error
//	@Router		/orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid format for parameter id", err)
	}

	query, err := queries.NewGetOrderQuery(actorFrom(ctx), orderID)
	if err != nil {
		return badRequest(ctx, "Invalid request", err)
	}

	result, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderWithTransitions{
		Order:              toOrder(result.Order),
		AllowedTransitions: statusNames(result.Allowed),
	})
}

// DeleteOrder handles DELETE /api/v1/orders/{id} - removes a pending order.
//
//	@Summary	Delete a pending order
//	@Tags		orders
//	@Param		X-Actor-ID	header	string	true	"Acting seller or admin"
//	@Param		id			path	string	true	"Order ID"
//	@Success	204
//	@Failure	403	{object}	Error
//	@Failure	404	{object}	Error
//	@Failure	409	{object}	Error
//	@Router		/orders/{id} [delete]
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid format for parameter id", err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, actorFrom(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid request", err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestTransition handles POST /api/v1/orders/{id}/transitions. Assignment
// is a transition to "assigned" carrying driver_id.
//
//	@Summary	Move an order to another status
//	@Tags		orders
//	@Accept		json
//	@Param		X-Actor-ID	header	string				true	"Acting user"
//	@Param		id			path	string				true	"Order ID"
//	@Param		transition	body	TransitionRequest	true	"Transition"
//	@Success	204
//	@Failure	403	{object}	Error
//	@Failure	404	{object}	Error
//	@Failure	409	{object}	Error
//	@Failure	422	{object}	Error
//	@Router		/orders/{id}/transitions [post]
func (s *Server) RequestTransition(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid format for parameter id", err)
	}

	var body TransitionRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	to, err := order.ParseStatus(body.To)
	if err != nil {
		return badRequest(ctx, "Invalid transition", err)
	}

	cmd, err := commands.NewRequestTransitionCommand(orderID, actorFrom(ctx), to)
	if err != nil {
		return badRequest(ctx, "Invalid transition", err)
	}

	if body.DriverId != nil {
		driverID, idErr := kernel.UUIDFromBytes(body.DriverId[:])
		if idErr != nil {
			return badRequest(ctx, "Invalid transition", idErr)
		}
		cmd = cmd.WithDriver(driverID)
	}

	if body.ExpectedStatus != nil {
		expected, parseErr := order.ParseStatus(*body.ExpectedStatus)
		if parseErr != nil {
			return badRequest(ctx, "Invalid transition", parseErr)
		}
		cmd = cmd.WithExpectedStatus(expected)
	}

	if err = s.handlers.RequestTransition.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
