package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/stock"
)

// StockRepository defines the persistence contract for stock items.
type StockRepository interface {
	// Add persists a new item. An item with the same seller and name yields
	// errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *stock.Item) error

	// Update persists the approval flag and quantity of an existing item.
	Update(ctx context.Context, aggregate *stock.Item) error

	// Get retrieves an item by id or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*stock.Item, error)

	// FindBySellerAndName returns the seller's item with the given name, or
	// nil without error when there is none.
	FindBySellerAndName(ctx context.Context, seller kernel.UUID, name string) (*stock.Item, error)
}
