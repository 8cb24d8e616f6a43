// Package user provides the User aggregate: an actor with a role and an
// approval gate set by an administrator.
package user

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User was not built by NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is an actor of the dashboard. New users start unapproved; an
// unapproved user cannot act on orders and cannot be selected as a driver.
type User struct {
	id       kernel.UUID
	name     string
	role     Role
	approved bool

	guard guard.ConstructorGuard
}

// NewUser registers an unapproved user.
func NewUser(id kernel.UUID, name string, role Role) (*User, error) {
	u := &User{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a user from persistence.
func RestoreUser(id kernel.UUID, name string, role Role, approved bool) (*User, error) {
	u, err := NewUser(id, name, role)
	if err != nil {
		return nil, err
	}
	u.approved = approved
	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) IsApproved() bool {
	return u.approved
}

// Is reports whether u has role r.
func (u *User) Is(r Role) bool {
	return u.role == r
}

// IsEligibleDriver reports whether u may be bound to an order.
func (u *User) IsEligibleDriver() bool {
	return u.role == Driver && u.approved
}

// Approve opens the approval gate. Approving twice is a no-op.
func (u *User) Approve() {
	u.approved = true
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
