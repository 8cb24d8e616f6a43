package queries

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/guard"
)

// ErrGetStatusCountsQueryIsNotConstructed is returned by Validate on a zero value.
var ErrGetStatusCountsQueryIsNotConstructed = errors.New(
	"GetStatusCountsQuery must be created via NewGetStatusCountsQuery constructor",
)

// GetStatusCountsQuery counts every order in the system per status. It is
// meant for operators and background jobs, not for dashboard actors.
type GetStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatusCountsQuery creates the query. It takes no input.
func NewGetStatusCountsQuery() GetStatusCountsQuery {
	return GetStatusCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusCountsQueryIsNotConstructed)
}

// GetStatusCountsQueryHandler feeds the status stats job.
//
// Example:
//
//	handler := NewGetStatusCountsQueryHandler(orderRepository)
//	counts, err := handler.Handle(ctx, NewGetStatusCountsQuery())
//	if err != nil {
//	    return err
//	}
//	log.Printf("%d orders, %d pending", counts.Total(), counts[order.Pending])
type GetStatusCountsQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetStatusCountsQueryHandler creates a handler reading from orders.
func NewGetStatusCountsQueryHandler(orders ports.OrderRepository) GetStatusCountsQueryHandler {
	return GetStatusCountsQueryHandler{orders: orders}
}

// Handle lists every order without an actor scope and aggregates the
// statuses. Every status is present, empty ones with 0.
func (h GetStatusCountsQueryHandler) Handle(ctx context.Context, query GetStatusCountsQuery) (services.StatusCounts, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.orders.List(ctx, ports.OrderFilter{})
	if err != nil {
		return nil, err
	}

	return services.CountByStatus(all), nil
}
