package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrBootstrapAdminCommandIsNotConstructed is returned by Validate on a zero value.
var ErrBootstrapAdminCommandIsNotConstructed = errors.New(
	"BootstrapAdminCommand must be created via NewBootstrapAdminCommand constructor",
)

// BootstrapAdminCommand seeds the first approved admin of an empty
// installation. Without it nobody could approve anybody.
type BootstrapAdminCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	name   string

	guard guard.ConstructorGuard
}

// NewBootstrapAdminCommand takes the configured admin id and name. The name
// is trimmed and must not be empty.
func NewBootstrapAdminCommand(userID kernel.UUID, name string) (BootstrapAdminCommand, error) {
	cmd := BootstrapAdminCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setName(name),
	); err != nil {
		return BootstrapAdminCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BootstrapAdminCommand) Validate() error {
	return c.guard.Validate(ErrBootstrapAdminCommandIsNotConstructed)
}

// UserID returns the configured admin id.
func (c BootstrapAdminCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the configured admin name.
func (c BootstrapAdminCommand) Name() string {
	return c.name
}

func (c *BootstrapAdminCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *BootstrapAdminCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
