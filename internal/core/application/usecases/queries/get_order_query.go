package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrGetOrderQueryIsNotConstructed is returned by Validate on a zero value.
var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order and the statuses the actor may move it to.
type GetOrderQuery struct {
	actorID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery requires both the actor and the order.
func NewGetOrderQuery(actorID kernel.UUID, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(
		requiredID("actor", actorID),
		requiredID("order", orderID),
	); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{actorID: actorID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// ActorID returns the user viewing the order.
func (q GetOrderQuery) ActorID() kernel.UUID {
	return q.actorID
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the order detail view.
type GetOrderQueryResponse struct {
	Order OrderView
	// Allowed lists the next statuses in transition table order.
	Allowed []order.Status
}

func requiredID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
