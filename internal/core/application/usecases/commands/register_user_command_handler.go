package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/user"
)

// RegisterUserCommandHandler backs the public sign-up endpoint.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand(kernel.NewUUID(), "Dana", user.Driver)
//	if err != nil {
//	    return err
//	}
//	err = NewRegisterUserCommandHandler(userUoWFactory).Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // name taken
//	}
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler writing through uowFactory.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory}
}

// Handle stores the user unapproved. A taken name is reported by the
// repository as errs.ObjectAlreadyExistsError.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
