package services

import (
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"
)

// TransitionOptions carries the extra input some transitions need. Only the
// assignment transition uses it today.
type TransitionOptions struct {
	// DriverID is required when the target is order.Assigned.
	DriverID *kernel.UUID
	// Drivers resolves DriverID; see LookupFrom.
	Drivers DriverLookup
}

// LifecycleEngine is the single entry point for changing an order's status.
// It composes the transition table, the AuthorizationPolicy and the
// DriverAssigner. The engine holds no mutable state and is safe for
// concurrent use; concurrent changes to the same order are resolved by the
// repository's compare-and-swap update.
type LifecycleEngine struct {
	policy   AuthorizationPolicy
	assigner DriverAssigner
	clock    kernel.Clock
}

// NewLifecycleEngine builds the engine with its policy and assigner sharing clock.
func NewLifecycleEngine(clock kernel.Clock) LifecycleEngine {
	return LifecycleEngine{
		policy:   NewAuthorizationPolicy(),
		assigner: NewDriverAssigner(clock),
		clock:    clock,
	}
}

// RequestTransition applies to to o on behalf of actor. Checks run in a fixed
// order and stop at the first failure:
//
//  1. to == Assigned: DriverID is required (ErrDriverIsRequired), then the
//     DriverAssigner decides
//  2. the edge must be in the table (order.ErrIllegalTransition)
//  3. the actor must be allowed to request it (ErrUnauthorized)
//  4. status and updated at change
//
// On failure o is unchanged.
func (e LifecycleEngine) RequestTransition(
	o *order.Order,
	to order.Status,
	actor *user.User,
	opts TransitionOptions,
) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if to == order.Assigned {
		if opts.DriverID == nil {
			return nil, ErrDriverIsRequired
		}
		return e.assigner.Assign(o, *opts.DriverID, opts.Drivers, actor)
	}

	if err := order.ValidateTransition(o.Status(), to); err != nil {
		return nil, err
	}

	if !e.policy.CanRequest(actor, o, to) {
		return nil, ErrUnauthorized
	}

	if err := o.MoveTo(to, e.clock.Now()); err != nil {
		return nil, err
	}

	return o, nil
}

// Assign is RequestTransition(o, order.Assigned, ...) with the driver given explicitly.
func (e LifecycleEngine) Assign(
	o *order.Order,
	driverID kernel.UUID,
	drivers DriverLookup,
	actor *user.User,
) (*order.Order, error) {
	return e.RequestTransition(o, order.Assigned, actor, TransitionOptions{DriverID: &driverID, Drivers: drivers})
}

// IsLegalTransition exposes the transition table.
func (e LifecycleEngine) IsLegalTransition(from, to order.Status) bool {
	return order.IsLegalTransition(from, to)
}

// CanRequest exposes the authorization policy.
func (e LifecycleEngine) CanRequest(actor *user.User, o *order.Order, to order.Status) bool {
	return e.policy.CanRequest(actor, o, to)
}

// AllowedTransitions lists, in table order, the statuses actor may currently
// move o to. Dashboards render their action buttons from this list.
func (e LifecycleEngine) AllowedTransitions(actor *user.User, o *order.Order) []order.Status {
	if o.Validate() != nil {
		return nil
	}

	allowed := make([]order.Status, 0)
	for _, next := range order.NextStatuses(o.Status()) {
		if e.policy.CanRequest(actor, o, next) {
			allowed = append(allowed, next)
		}
	}
	return allowed
}

// CountByStatus aggregates orders per status.
func (e LifecycleEngine) CountByStatus(orders []*order.Order) StatusCounts {
	return CountByStatus(orders)
}
