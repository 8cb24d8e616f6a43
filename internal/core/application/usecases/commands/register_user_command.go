package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrRegisterUserCommandIsNotConstructed is returned by Validate on a zero value.
var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand adds an unapproved user. Registration needs no actor;
// the approval gate keeps new users from acting until an admin lets them in.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	name   string
	role   user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand trims the name and rejects an empty name or an
// unknown role. Any role may self-register, admin included; approval is the
// only gate.
func NewRegisterUserCommand(userID kernel.UUID, name string, role user.Role) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the id the user will be stored under.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the trimmed display name. Names are unique.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Role returns the requested role.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

func (c *RegisterUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
