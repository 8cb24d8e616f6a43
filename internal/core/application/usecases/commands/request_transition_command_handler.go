package commands

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// RequestTransitionCommandHandler loads the order, the actor and, for an
// assignment, the driver; lets the lifecycle engine decide; and persists the
// result with a compare-and-swap on the status it decided from.
//
// Example:
//
//	handler := NewRequestTransitionCommandHandler(uowFactory, engine)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrIllegalTransition):
//	case errors.Is(err, services.ErrUnauthorized):
//	case errors.Is(err, ports.ErrStaleOrder):
//	    // refetch and let the user decide again
//	}
type RequestTransitionCommandHandler struct {
	uowFactory UoWFactory
	engine     services.LifecycleEngine
}

// NewRequestTransitionCommandHandler creates a handler deciding through engine.
func NewRequestTransitionCommandHandler(
	uowFactory UoWFactory,
	engine services.LifecycleEngine,
) RequestTransitionCommandHandler {
	return RequestTransitionCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

// Handle runs the whole transition in one unit of work. Engine errors are
// returned unchanged; a lost race on the status yields ports.ErrStaleOrder.
func (h RequestTransitionCommandHandler) Handle(ctx context.Context, cmd RequestTransitionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	orders := uow.OrderRepository()

	actor, err := loadActor(ctx, users, cmd.ActorID())
	if err != nil {
		return err
	}

	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	decidedFrom := o.Status()
	if expected := cmd.ExpectedStatus(); expected != nil && *expected != decidedFrom {
		return fmt.Errorf("%w: expected %s, found %s", ports.ErrStaleOrder, *expected, decidedFrom)
	}

	opts := services.TransitionOptions{DriverID: cmd.DriverID()}
	if cmd.To() == order.Assigned && cmd.DriverID() != nil {
		opts.Drivers, err = h.lookupDriver(ctx, users, *cmd.DriverID())
		if err != nil {
			return err
		}
	}

	if _, err = h.engine.RequestTransition(o, cmd.To(), actor, opts); err != nil {
		return err
	}

	if err = orders.Update(ctx, o, decidedFrom); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// lookupDriver fetches the selected driver. A missing user yields an empty
// lookup so the assigner reports services.ErrDriverNotFound itself.
func (h RequestTransitionCommandHandler) lookupDriver(
	ctx context.Context,
	users ports.UserRepository,
	driverID kernel.UUID,
) (services.DriverLookup, error) {
	driver, err := users.Get(ctx, driverID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return services.LookupFrom(), nil
	}
	if err != nil {
		return nil, err
	}
	return services.LookupFrom(driver), nil
}
