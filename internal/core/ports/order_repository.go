// Package ports defines the persistence contracts the application layer
// depends on. Adapters in internal/adapters/out implement them.
package ports

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// ErrStaleOrder is returned by OrderRepository.Update when the stored status
// no longer matches the status the caller decided on. The caller should
// refetch the order and re-decide.
var ErrStaleOrder = errors.New("order was changed concurrently")

// OrderFilter narrows List. Nil fields do not filter.
type OrderFilter struct {
	Seller *kernel.UUID
	Driver *kernel.UUID
	Status *order.Status
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change of an existing order. The write only
	// happens if the stored status still equals expected (compare-and-swap);
	// otherwise ErrStaleOrder is returned and nothing is written.
	Update(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order by id or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order that is still pending. A stored order that has
	// already left pending yields ErrStaleOrder.
	Delete(ctx context.Context, id kernel.UUID) error

	// List returns orders matching filter, newest first.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)
}
