package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrApproveStockItemCommandIsNotConstructed is returned by Validate on a zero value.
var ErrApproveStockItemCommandIsNotConstructed = errors.New(
	"ApproveStockItemCommand must be created via NewApproveStockItemCommand constructor",
)

// ApproveStockItemCommand asks an admin to release a stock line for orders.
type ApproveStockItemCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveStockItemCommand requires both the acting admin and the item.
func NewApproveStockItemCommand(actorID kernel.UUID, itemID kernel.UUID) (ApproveStockItemCommand, error) {
	cmd := ApproveStockItemCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setItemID(itemID),
	); err != nil {
		return ApproveStockItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveStockItemCommand) Validate() error {
	return c.guard.Validate(ErrApproveStockItemCommandIsNotConstructed)
}

// ActorID returns the admin approving the item.
func (c ApproveStockItemCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ItemID returns the stock line to approve.
func (c ApproveStockItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *ApproveStockItemCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	c.actorID = id
	return nil
}

func (c *ApproveStockItemCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("stock item", err)
	}
	c.itemID = id
	return nil
}
