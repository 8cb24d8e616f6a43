package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrRequestTransitionCommandIsNotConstructed is returned by Validate on a zero value.
var ErrRequestTransitionCommandIsNotConstructed = errors.New(
	"RequestTransitionCommand must be created via NewRequestTransitionCommand constructor",
)

// RequestTransitionCommand asks to move an order to another status on
// behalf of an actor. Moving to order.Assigned requires a driver; use
// WithDriver. WithExpectedStatus makes the request fail with
// ports.ErrStaleOrder when the order is no longer in the status the caller saw.
//
// Example:
//
//	cmd, err := NewRequestTransitionCommand(orderID, adminID, order.Assigned)
//	cmd = cmd.WithDriver(driverID).WithExpectedStatus(order.Pending)
type RequestTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	actorID  kernel.UUID
	to       order.Status
	driverID *kernel.UUID
	expected *order.Status

	guard guard.ConstructorGuard
}

// NewRequestTransitionCommand validates identifiers and the target status.
// Whether the transition is legal is decided by the lifecycle engine.
func NewRequestTransitionCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	to order.Status,
) (RequestTransitionCommand, error) {
	cmd := RequestTransitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setTo(to),
	); err != nil {
		return RequestTransitionCommand{}, err
	}

	return cmd, nil
}

// WithDriver returns a copy of c carrying the driver to assign.
func (c RequestTransitionCommand) WithDriver(driverID kernel.UUID) RequestTransitionCommand {
	c.driverID = &driverID
	return c
}

// WithExpectedStatus returns a copy of c that only applies while the order
// is still in status.
func (c RequestTransitionCommand) WithExpectedStatus(status order.Status) RequestTransitionCommand {
	c.expected = &status
	return c
}

// Validate ensures the command was created through the constructor.
func (c RequestTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestTransitionCommandIsNotConstructed)
}

// OrderID returns the order to move.
func (c RequestTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the user requesting the change.
func (c RequestTransitionCommand) ActorID() kernel.UUID {
	return c.actorID
}

// To returns the requested target status.
func (c RequestTransitionCommand) To() order.Status {
	return c.to
}

// DriverID returns the driver to assign, or nil.
func (c RequestTransitionCommand) DriverID() *kernel.UUID {
	return c.driverID
}

// ExpectedStatus returns the status the caller observed, or nil.
func (c RequestTransitionCommand) ExpectedStatus() *order.Status {
	return c.expected
}

func (c *RequestTransitionCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	c.orderID = id
	return nil
}

func (c *RequestTransitionCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	c.actorID = id
	return nil
}

func (c *RequestTransitionCommand) setTo(to order.Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	c.to = to
	return nil
}
