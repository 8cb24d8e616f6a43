package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
)

// UserFilter narrows List. Nil fields do not filter.
type UserFilter struct {
	Role     *user.Role
	Approved *bool
}

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	// Add persists a new user. A duplicate name or id yields errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists the approval flag of an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by id or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// List returns users matching filter ordered by name.
	List(ctx context.Context, filter UserFilter) ([]*user.User, error)
}
