package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrApproveUserCommandIsNotConstructed is returned by Validate on a zero value.
var ErrApproveUserCommandIsNotConstructed = errors.New(
	"ApproveUserCommand must be created via NewApproveUserCommand constructor",
)

// ApproveUserCommand asks an admin to open the approval gate of a user.
type ApproveUserCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveUserCommand requires the acting admin and the user to approve.
func NewApproveUserCommand(actorID kernel.UUID, userID kernel.UUID) (ApproveUserCommand, error) {
	cmd := ApproveUserCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setUserID(userID),
	); err != nil {
		return ApproveUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveUserCommand) Validate() error {
	return c.guard.Validate(ErrApproveUserCommandIsNotConstructed)
}

// ActorID returns the admin doing the approval.
func (c ApproveUserCommand) ActorID() kernel.UUID {
	return c.actorID
}

// UserID returns the user being approved.
func (c ApproveUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *ApproveUserCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	c.actorID = id
	return nil
}

func (c *ApproveUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	c.userID = id
	return nil
}
