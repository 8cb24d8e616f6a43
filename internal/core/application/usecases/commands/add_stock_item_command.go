package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/stock"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrAddStockItemCommandIsNotConstructed is returned by Validate on a zero value.
var ErrAddStockItemCommandIsNotConstructed = errors.New(
	"AddStockItemCommand must be created via NewAddStockItemCommand constructor",
)

// AddStockItemCommand asks to register a stock line for the acting seller.
// The line stays unusable for orders until an admin approves it.
type AddStockItemCommand struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	actorID  kernel.UUID
	name     string
	quantity int

	guard guard.ConstructorGuard
}

// NewAddStockItemCommand validates the ids, normalizes the item name and
// rejects a negative quantity. A zero quantity is allowed: the seller may
// list an item before it is restocked.
func NewAddStockItemCommand(
	itemID kernel.UUID,
	actorID kernel.UUID,
	name string,
	quantity int,
) (AddStockItemCommand, error) {
	cmd := AddStockItemCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setActorID(actorID),
		cmd.setName(name),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddStockItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddStockItemCommand) Validate() error {
	return c.guard.Validate(ErrAddStockItemCommandIsNotConstructed)
}

// ItemID returns the id the new stock line will be stored under.
func (c AddStockItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ActorID returns the seller adding the line.
func (c AddStockItemCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Name returns the normalized item name.
func (c AddStockItemCommand) Name() string {
	return c.name
}

// Quantity returns the units on hand.
func (c AddStockItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddStockItemCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.itemID = id
	return nil
}

func (c *AddStockItemCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	c.actorID = id
	return nil
}

func (c *AddStockItemCommand) setName(name string) error {
	name = stock.NormalizeName(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	c.name = name
	return nil
}

func (c *AddStockItemCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	c.quantity = quantity
	return nil
}
