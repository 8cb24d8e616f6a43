package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrGetDashboardQueryIsNotConstructed is returned by Validate on a zero value.
var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery lists the orders visible to an actor together with the
// per-status badge counts.
//
// Example:
//
//	query, _ := NewGetDashboardQuery(actorID)
//	query = query.WithStatus(order.InTransit)
//	dashboard, err := handler.Handle(ctx, query)
//	fmt.Println(dashboard.Counts[order.Pending], len(dashboard.Orders))
type GetDashboardQuery struct {
	actorID kernel.UUID
	status  *order.Status

	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates an unfiltered dashboard query for actorID.
func NewGetDashboardQuery(actorID kernel.UUID) (GetDashboardQuery, error) {
	if err := actorID.Validate(); err != nil {
		return GetDashboardQuery{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	return GetDashboardQuery{actorID: actorID, guard: guard.NewConstructorGuard()}, nil
}

// WithStatus returns a copy of q whose order list only holds orders in
// status. Counts are not affected by the filter.
func (q GetDashboardQuery) WithStatus(status order.Status) GetDashboardQuery {
	q.status = &status
	return q
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// ActorID returns the user whose dashboard is built.
func (q GetDashboardQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Status returns the quick filter, or nil.
func (q GetDashboardQuery) Status() *order.Status {
	return q.status
}

// GetDashboardQueryResponse holds the (optionally filtered) orders and the
// counts over the unfiltered scope, keyed by every status.
type GetDashboardQueryResponse struct {
	Orders []OrderView
	Counts services.StatusCounts
}
