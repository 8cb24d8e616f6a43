package commands

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// loadActor resolves the acting user inside the current transaction so
// approval changes made by an admin take effect on the next request.
// An unknown actor is reported as services.ErrUnauthorized.
func loadActor(ctx context.Context, users ports.UserRepository, id kernel.UUID) (*user.User, error) {
	actor, err := users.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: unknown actor %s", services.ErrUnauthorized, id)
	}
	if err != nil {
		return nil, err
	}
	return actor, nil
}

// requireApproved returns services.ErrUnauthorized unless actor is an
// approved user holding one of roles.
func requireApproved(actor *user.User, roles ...user.Role) error {
	if !actor.IsApproved() {
		return fmt.Errorf("%w: %s is not approved", services.ErrUnauthorized, actor.Name())
	}
	for _, r := range roles {
		if actor.Is(r) {
			return nil
		}
	}
	return fmt.Errorf("%w: role %s", services.ErrUnauthorized, actor.Role())
}
