// Package queries contains read operations. Handlers never modify state;
// they resolve the actor, scope the data to what the actor may see and
// derive dashboard figures from the domain services.
package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// OrderView is the read model of an order.
type OrderView struct {
	ID        kernel.UUID
	Seller    kernel.UUID
	Driver    *kernel.UUID
	Status    order.Status
	Details   order.Details
	CreatedAt time.Time
	UpdatedAt time.Time
}

func newOrderView(o *order.Order) OrderView {
	return OrderView{
		ID:        o.ID(),
		Seller:    o.Seller(),
		Driver:    o.Driver(),
		Status:    o.Status(),
		Details:   o.Details(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

// UserView is the read model of a user.
type UserView struct {
	ID       kernel.UUID
	Name     string
	Role     user.Role
	Approved bool
}

func newUserView(u *user.User) UserView {
	return UserView{
		ID:       u.ID(),
		Name:     u.Name(),
		Role:     u.Role(),
		Approved: u.IsApproved(),
	}
}

func loadActor(ctx context.Context, users ports.UserRepository, id kernel.UUID) (*user.User, error) {
	actor, err := users.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: unknown actor %s", services.ErrUnauthorized, id)
	}
	if err != nil {
		return nil, err
	}
	if !actor.IsApproved() {
		return nil, fmt.Errorf("%w: %s is not approved", services.ErrUnauthorized, actor.Name())
	}
	return actor, nil
}

// scopeFor limits an order listing to what actor may see: admins see
// everything, sellers their own orders, drivers the orders bound to them.
func scopeFor(actor *user.User) ports.OrderFilter {
	id := actor.ID()
	switch actor.Role() {
	case user.Seller:
		return ports.OrderFilter{Seller: &id}
	case user.Driver:
		return ports.OrderFilter{Driver: &id}
	default:
		return ports.OrderFilter{}
	}
}

// canSee applies scopeFor to a single order.
func canSee(actor *user.User, o *order.Order) bool {
	switch actor.Role() {
	case user.Admin:
		return true
	case user.Seller:
		return o.IsOwnedBy(actor.ID())
	case user.Driver:
		return o.IsBoundTo(actor.ID())
	default:
		return false
	}
}
