package commands

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// ErrBootstrapAdminConflict is returned when the configured admin id or name
// already belongs to a user that cannot serve as the admin.
var ErrBootstrapAdminConflict = errors.New("bootstrap admin conflicts with an existing user")

// BootstrapOutcome reports what BootstrapAdminCommandHandler.Handle changed.
type BootstrapOutcome int

const (
	// BootstrapSkipped means an approved admin already existed.
	BootstrapSkipped BootstrapOutcome = iota
	// BootstrapCreated means the configured admin was inserted.
	BootstrapCreated
	// BootstrapApproved means the configured admin existed unapproved and was approved.
	BootstrapApproved
)

// String returns the outcome as logged at startup.
func (o BootstrapOutcome) String() string {
	switch o {
	case BootstrapCreated:
		return "created"
	case BootstrapApproved:
		return "approved"
	default:
		return "skipped"
	}
}

// BootstrapAdminCommandHandler makes sure an installation has one approved
// admin. It is run once at startup and is safe to repeat.
//
// Example:
//
//	handler := NewBootstrapAdminCommandHandler(userUoWFactory)
//	outcome, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrBootstrapAdminConflict) {
//	    // pick another id or name
//	}
type BootstrapAdminCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewBootstrapAdminCommandHandler creates a handler writing through uowFactory.
func NewBootstrapAdminCommandHandler(uowFactory UserUoWFactory) BootstrapAdminCommandHandler {
	return BootstrapAdminCommandHandler{uowFactory: uowFactory}
}

// Handle does nothing when an approved admin exists. Otherwise it approves
// the configured user if it is already stored as an admin, or inserts it.
// A stored non-admin with the configured id, or another user holding the
// configured name, yields ErrBootstrapAdminConflict.
func (h BootstrapAdminCommandHandler) Handle(ctx context.Context, cmd BootstrapAdminCommand) (BootstrapOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return BootstrapSkipped, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BootstrapSkipped, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	role := user.Admin
	approved := true
	admins, err := users.List(ctx, ports.UserFilter{Role: &role, Approved: &approved})
	if err != nil {
		return BootstrapSkipped, err
	}
	if len(admins) > 0 {
		return BootstrapSkipped, nil
	}

	outcome, err := h.ensureAdmin(ctx, users, cmd)
	if err != nil {
		return BootstrapSkipped, err
	}

	if err = uow.Commit(ctx); err != nil {
		return BootstrapSkipped, err
	}

	return outcome, nil
}

func (h BootstrapAdminCommandHandler) ensureAdmin(
	ctx context.Context,
	users ports.UserRepository,
	cmd BootstrapAdminCommand,
) (BootstrapOutcome, error) {
	existing, err := users.Get(ctx, cmd.UserID())
	switch {
	case err == nil:
		if !existing.Is(user.Admin) {
			return BootstrapSkipped, fmt.Errorf("%w: user %s is a %s",
				ErrBootstrapAdminConflict, cmd.UserID(), existing.Role())
		}
		existing.Approve()
		if err = users.Update(ctx, existing); err != nil {
			return BootstrapSkipped, err
		}
		return BootstrapApproved, nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return BootstrapSkipped, err
	}

	admin, err := user.RestoreUser(cmd.UserID(), cmd.Name(), user.Admin, true)
	if err != nil {
		return BootstrapSkipped, err
	}

	if err = users.Add(ctx, admin); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return BootstrapSkipped, fmt.Errorf("%w: %w", ErrBootstrapAdminConflict, err)
		}
		return BootstrapSkipped, err
	}

	return BootstrapCreated, nil
}
