package queries

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
)

// GetEligibleDriversQueryHandler narrows users to the driver role in the
// repository and leaves the eligibility decision to services.EligibleDrivers,
// the same predicate the assignment workflow applies.
type GetEligibleDriversQueryHandler struct {
	users ports.UserRepository
}

// NewGetEligibleDriversQueryHandler creates a handler reading from users.
func NewGetEligibleDriversQueryHandler(users ports.UserRepository) GetEligibleDriversQueryHandler {
	return GetEligibleDriversQueryHandler{users: users}
}

// Handle returns approved drivers ordered by name. Actors other than admins
// get services.ErrUnauthorized.
func (h GetEligibleDriversQueryHandler) Handle(ctx context.Context, query GetEligibleDriversQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor, err := loadActor(ctx, h.users, query.ActorID())
	if err != nil {
		return nil, err
	}
	if !actor.Is(user.Admin) {
		return nil, fmt.Errorf("%w: only admins assign drivers", services.ErrUnauthorized)
	}

	role := user.Driver
	drivers, err := h.users.List(ctx, ports.UserFilter{Role: &role})
	if err != nil {
		return nil, err
	}

	eligible := services.EligibleDrivers(drivers)
	views := make([]UserView, 0, len(eligible))
	for _, d := range eligible {
		views = append(views, newUserView(d))
	}
	return views, nil
}
