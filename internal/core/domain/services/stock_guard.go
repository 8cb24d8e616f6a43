package services

import (
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/stock"
)

// StockGuard checks an order request against the seller's inventory. It runs
// once, when the order is created, and never changes the stock line.
type StockGuard struct{}

// NewStockGuard returns the stateless guard.
func NewStockGuard() StockGuard {
	return StockGuard{}
}

// Check validates quantity of itemName for seller against item, the stock line
// the caller looked up (nil when the lookup found nothing).
//
// Returns:
//   - ErrItemNotFound when item is nil or belongs to another seller or good
//   - ErrItemNotApproved when the line has not been approved
//   - *OutOfStockError when quantity exceeds the available amount
func (StockGuard) Check(item *stock.Item, seller kernel.UUID, itemName string, quantity int) error {
	name := stock.NormalizeName(itemName)

	if item.Validate() != nil || !item.Seller().IsEqual(seller) || item.Name() != name {
		return fmt.Errorf("%w: %q for seller %s", ErrItemNotFound, name, seller)
	}

	if !item.IsApproved() {
		return fmt.Errorf("%w: %q", ErrItemNotApproved, name)
	}

	if quantity > item.Quantity() {
		return &OutOfStockError{Item: name, Requested: quantity, Available: item.Quantity()}
	}

	return nil
}
