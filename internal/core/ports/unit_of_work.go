package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command. A UnitOfWork is not
// safe to share between concurrent requests.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans everything a single order desk command reads and writes:
// the acting user, the order under change and the seller's stock.
//
// Typical use:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//		return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//	// load, decide, save
//	return uow.Commit(ctx)
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error

	// Rollback is a no-op after Commit.
	Rollback(ctx context.Context) error

	// The repositories below share the transaction opened by Begin.
	OrderRepository() OrderRepository
	UserRepository() UserRepository
	StockRepository() StockRepository
}
