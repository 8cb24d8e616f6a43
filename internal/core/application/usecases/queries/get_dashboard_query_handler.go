package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
)

// GetDashboardQueryHandler builds the dashboard from a single listing: the
// counts and the filtered list are derived from the same orders, so badges
// never disagree with what the list shows.
type GetDashboardQueryHandler struct {
	users  ports.UserRepository
	orders ports.OrderRepository
}

// NewGetDashboardQueryHandler creates a handler reading users and orders
// outside any transaction.
func NewGetDashboardQueryHandler(users ports.UserRepository, orders ports.OrderRepository) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{users: users, orders: orders}
}

// Handle scopes the listing to the actor: all orders for admins, owned ones
// for sellers and bound ones for drivers. An unknown actor yields
// services.ErrUnauthorized.
func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	actor, err := loadActor(ctx, h.users, query.ActorID())
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	scoped, err := h.orders.List(ctx, scopeFor(actor))
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	views := make([]OrderView, 0, len(scoped))
	for _, o := range scoped {
		if matches(o, query.Status()) {
			views = append(views, newOrderView(o))
		}
	}

	return GetDashboardQueryResponse{
		Orders: views,
		Counts: services.CountByStatus(scoped),
	}, nil
}

func matches(o *order.Order, status *order.Status) bool {
	return status == nil || o.Status() == *status
}
