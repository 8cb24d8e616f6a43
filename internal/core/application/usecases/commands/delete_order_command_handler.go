package commands

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/domain/services"
)

// DeleteOrderCommandHandler removes pending orders. The repository deletes
// only while the stored status is still pending, so a concurrent assignment
// surfaces as ports.ErrStaleOrder.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteOrderCommandHandler creates a handler writing through uowFactory.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the order when the actor is its approved seller or an
// approved admin and the order is still pending. A non-pending order yields
// order.ErrNotPending.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	actor, err := loadActor(ctx, uow.UserRepository(), cmd.ActorID())
	if err != nil {
		return err
	}
	if err = requireApproved(actor, user.Seller, user.Admin); err != nil {
		return err
	}

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if actor.Is(user.Seller) && !o.IsOwnedBy(actor.ID()) {
		return fmt.Errorf("%w: order belongs to another seller", services.ErrUnauthorized)
	}

	if err = o.ValidateDelete(); err != nil {
		return err
	}

	if err = orders.Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
