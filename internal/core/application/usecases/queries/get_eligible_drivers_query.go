package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrGetEligibleDriversQueryIsNotConstructed is returned by Validate on a zero value.
var ErrGetEligibleDriversQueryIsNotConstructed = errors.New(
	"GetEligibleDriversQuery must be created via NewGetEligibleDriversQuery constructor",
)

// GetEligibleDriversQuery lists the drivers an admin may assign.
type GetEligibleDriversQuery struct {
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetEligibleDriversQuery requires the acting admin.
func NewGetEligibleDriversQuery(actorID kernel.UUID) (GetEligibleDriversQuery, error) {
	if err := actorID.Validate(); err != nil {
		return GetEligibleDriversQuery{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	return GetEligibleDriversQuery{actorID: actorID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEligibleDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetEligibleDriversQueryIsNotConstructed)
}

// ActorID returns the admin asking for the list.
func (q GetEligibleDriversQuery) ActorID() kernel.UUID {
	return q.actorID
}
