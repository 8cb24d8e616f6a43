package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned by Validate on a zero value.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand asks to register a new pending order for a seller.
// A seller creates orders for itself; an admin may create one on behalf of
// any approved seller.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), actorID, sellerID, order.Details{
//	    CustomerName:  "Ada",
//	    CustomerPhone: "+15550100",
//	    Street:        "1 Main St",
//	    City:          "Springfield",
//	    Item:          "Widget",
//	    Quantity:      3,
//	})
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	actorID  kernel.UUID
	sellerID kernel.UUID
	details  order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers and the quantity. The remaining
// details are checked by order.NewOrder so the rules live in one place.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	sellerID kernel.UUID,
	details order.Details,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setSellerID(sellerID),
		cmd.validateQuantity(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the id the new order will be stored under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the seller or admin creating the order.
func (c CreateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// SellerID returns the owner of the new order.
func (c CreateOrderCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// Details returns the order details as given; NewOrder trims them.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	c.actorID = id
	return nil
}

func (c *CreateOrderCommand) setSellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("seller", err)
	}
	c.sellerID = id
	return nil
}

func (c CreateOrderCommand) validateQuantity() error {
	if c.details.Quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", c.details.Quantity, 1, "unbounded")
	}
	return nil
}
