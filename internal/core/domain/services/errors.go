package services

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the actor's role, approval or ownership
	// does not permit the request.
	ErrUnauthorized = errors.New("actor is not allowed to perform this action")

	// ErrDriverIsRequired is returned when an assignment is requested without a driver.
	ErrDriverIsRequired = errors.New("driver id is required to assign an order")

	// ErrDriverNotFound is returned when the selected driver does not exist.
	ErrDriverNotFound = errors.New("driver not found")

	// ErrDriverNotApproved is returned when the selected user is not an approved driver.
	ErrDriverNotApproved = errors.New("driver is not approved")

	// ErrItemNotFound is returned when the seller has no stock line for the item.
	ErrItemNotFound = errors.New("stock item not found")

	// ErrItemNotApproved is returned when the seller's stock line awaits approval.
	ErrItemNotApproved = errors.New("stock item is not approved")

	// ErrOutOfStock is the sentinel behind OutOfStockError.
	ErrOutOfStock = errors.New("out of stock")
)

// OutOfStockError reports how much of the item is actually available.
type OutOfStockError struct {
	Item      string
	Requested int
	Available int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("%s: %q requested %d, available %d", ErrOutOfStock, e.Item, e.Requested, e.Available)
}

func (e *OutOfStockError) Unwrap() error {
	return ErrOutOfStock
}
