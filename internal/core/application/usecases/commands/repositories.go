// Package commands contains business operations that modify system state.
// Every handler follows the same pattern: validate the command, open a unit
// of work, load the actor, let the domain decide, persist, commit.
package commands

import (
	"context"

	"orderdesk/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// StockRepoFactory provides access to the stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// UserUoW manages transactions for user-only operations such as
	// registration and approval.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// StockUoW manages transactions for stock operations. The user
	// repository is needed to resolve the acting user.
	StockUoW interface {
		TxManager
		UserRepoFactory
		StockRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// UoW spans orders, users and stock. Order commands need all three:
	// the actor and drivers live in users, creation consults stock.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   actor, err := loadActor(ctx, uow.UserRepository(), actorID)
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   // ... let the lifecycle engine decide
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
		StockRepoFactory
	}

	// UoWFactory creates new unit of work instances for order operations.
	UoWFactory interface {
		Create() UoW
	}
)
