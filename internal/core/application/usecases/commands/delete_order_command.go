package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrDeleteOrderCommandIsNotConstructed is returned by Validate on a zero value.
var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand asks to remove a pending order. Its seller or an admin
// may do so; once the order left pending it can only be canceled.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand requires the order and the acting user.
func NewDeleteOrderCommand(orderID kernel.UUID, actorID kernel.UUID) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return DeleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the order to remove.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the user asking for the removal.
func (c DeleteOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *DeleteOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	c.orderID = id
	return nil
}

func (c *DeleteOrderCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	c.actorID = id
	return nil
}
