package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/user"
)

// ApproveUserCommandHandler lets an approved admin approve sellers, drivers
// and other admins.
//
// Example:
//
//	cmd, err := NewApproveUserCommand(adminID, driverID)
//	if err != nil {
//	    return err
//	}
//	if err = NewApproveUserCommandHandler(userUoWFactory).Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("approve driver: %w", err)
//	}
type ApproveUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewApproveUserCommandHandler creates a handler writing through uowFactory.
func NewApproveUserCommandHandler(uowFactory UserUoWFactory) ApproveUserCommandHandler {
	return ApproveUserCommandHandler{uowFactory: uowFactory}
}

// Handle approves the target user. Only approved admins may approve;
// approving an already approved user succeeds without a change.
func (h ApproveUserCommandHandler) Handle(ctx context.Context, cmd ApproveUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	actor, err := loadActor(ctx, users, cmd.ActorID())
	if err != nil {
		return err
	}
	if err = requireApproved(actor, user.Admin); err != nil {
		return err
	}

	target, err := users.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}
	if target.IsApproved() {
		return nil
	}

	target.Approve()
	if err = users.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
