package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/stock"
	"orderdesk/internal/core/domain/model/user"
)

// AddStockItemCommandHandler registers stock lines for approved sellers.
//
// Example:
//
//	cmd, err := NewAddStockItemCommand(kernel.NewUUID(), sellerID, "Widget", 40)
//	if err != nil {
//	    return err
//	}
//	err = NewAddStockItemCommandHandler(stockUoWFactory).Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // the seller already lists an item with this name
//	}
type AddStockItemCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewAddStockItemCommandHandler creates a handler writing through uowFactory.
func NewAddStockItemCommandHandler(uowFactory StockUoWFactory) AddStockItemCommandHandler {
	return AddStockItemCommandHandler{uowFactory: uowFactory}
}

// Handle stores an unapproved stock line owned by the acting seller. A line
// with the same name for the same seller is reported by the repository as
// errs.ObjectAlreadyExistsError.
func (h AddStockItemCommandHandler) Handle(ctx context.Context, cmd AddStockItemCommand) error {
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
	if err = requireApproved(actor, user.Seller); err != nil {
		return err
	}

	item, err := stock.NewItem(cmd.ItemID(), actor.ID(), cmd.Name(), cmd.Quantity())
	if err != nil {
		return err
	}

	if err = uow.StockRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
