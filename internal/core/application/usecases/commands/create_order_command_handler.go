package commands

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/stock"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// CreateOrderCommandHandler registers pending orders after the stock guard
// accepted the requested quantity. Stock is not decremented.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, kernel.SystemClock())
//	err := handler.Handle(ctx, cmd)
//	var oos *services.OutOfStockError
//	switch {
//	case errors.As(err, &oos):
//	    log.Printf("only %d left", oos.Available)
//	case errors.Is(err, services.ErrItemNotApproved):
//	    // ask an admin to approve the stock line
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	stockGuard services.StockGuard
	clock      kernel.Clock
}

// NewCreateOrderCommandHandler creates a handler stamping created at from clock.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, clock kernel.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		stockGuard: services.NewStockGuard(),
		clock:      clock,
	}
}

// Handle checks, in order: the actor may create for the seller, the seller
// is an approved seller, the stock guard passes. Only then is the order added.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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
	actor, err := loadActor(ctx, users, cmd.ActorID())
	if err != nil {
		return err
	}

	seller, err := h.resolveSeller(ctx, users, actor, cmd.SellerID())
	if err != nil {
		return err
	}

	itemName := stock.NormalizeName(cmd.Details().Item)
	item, err := uow.StockRepository().FindBySellerAndName(ctx, seller.ID(), itemName)
	if err != nil {
		return err
	}

	if err = h.stockGuard.Check(item, seller.ID(), itemName, cmd.Details().Quantity); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), seller.ID(), cmd.Details(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CreateOrderCommandHandler) resolveSeller(
	ctx context.Context,
	users ports.UserRepository,
	actor *user.User,
	sellerID kernel.UUID,
) (*user.User, error) {
	if err := requireApproved(actor, user.Seller, user.Admin); err != nil {
		return nil, err
	}

	if actor.Is(user.Seller) {
		if !actor.ID().IsEqual(sellerID) {
			return nil, fmt.Errorf("%w: sellers create orders only for themselves", services.ErrUnauthorized)
		}
		return actor, nil
	}

	seller, err := users.Get(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if !seller.Is(user.Seller) || !seller.IsApproved() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"seller",
			fmt.Errorf("%s is not an approved seller", seller.Name()),
		)
	}
	return seller, nil
}
