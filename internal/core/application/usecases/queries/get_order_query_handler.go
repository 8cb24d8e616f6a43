package queries

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
)

// GetOrderQueryHandler serves the order detail page and its action buttons.
//
// Example:
//
//	query, _ := NewGetOrderQuery(actorID, orderID)
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, services.ErrUnauthorized) {
//	    // the order exists but belongs to someone else
//	}
//	for _, next := range resp.Allowed {
//	    fmt.Println(next)
//	}
type GetOrderQueryHandler struct {
	users  ports.UserRepository
	orders ports.OrderRepository
	engine services.LifecycleEngine
}

// NewGetOrderQueryHandler creates a handler that asks engine for the allowed
// next statuses.
func NewGetOrderQueryHandler(
	users ports.UserRepository,
	orders ports.OrderRepository,
	engine services.LifecycleEngine,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{users: users, orders: orders, engine: engine}
}

// Handle returns services.ErrUnauthorized for orders outside the actor's scope.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	actor, err := loadActor(ctx, h.users, query.ActorID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if !canSee(actor, o) {
		return GetOrderQueryResponse{}, fmt.Errorf("%w: order %s is outside the actor's scope", services.ErrUnauthorized, o.ID())
	}

	return GetOrderQueryResponse{
		Order:   newOrderView(o),
		Allowed: h.engine.AllowedTransitions(actor, o),
	}, nil
}
