package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/user"
)

// ApproveStockItemCommandHandler releases stock lines for order creation.
//
// Example:
//
//	cmd, _ := NewApproveStockItemCommand(adminID, itemID)
//	err := NewApproveStockItemCommandHandler(stockUoWFactory).Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrUnauthorized):
//	    // only approved admins approve stock
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such item
//	}
type ApproveStockItemCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewApproveStockItemCommandHandler creates a handler writing through uowFactory.
func NewApproveStockItemCommandHandler(uowFactory StockUoWFactory) ApproveStockItemCommandHandler {
	return ApproveStockItemCommandHandler{uowFactory: uowFactory}
}

// Handle approves the item on behalf of an approved admin. Approving an
// approved item succeeds without writing anything.
func (h ApproveStockItemCommandHandler) Handle(ctx context.Context, cmd ApproveStockItemCommand) error {
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
	if err = requireApproved(actor, user.Admin); err != nil {
		return err
	}

	items := uow.StockRepository()
	item, err := items.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}
	if item.IsApproved() {
		return nil
	}

	item.Approve()
	if err = items.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
