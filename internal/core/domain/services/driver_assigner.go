package services

import (
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"
)

// DriverLookup resolves a driver id against users the caller already loaded.
type DriverLookup func(id kernel.UUID) (*user.User, bool)

// LookupFrom builds a DriverLookup over a fixed set of users. Nil entries are ignored.
func LookupFrom(users ...*user.User) DriverLookup {
	return func(id kernel.UUID) (*user.User, bool) {
		for _, u := range users {
			if u != nil && u.ID().IsEqual(id) {
				return u, true
			}
		}
		return nil, false
	}
}

// DriverAssigner binds a driver to a pending order.
//
// Business rules:
//   - only approved admins may assign
//   - only pending orders can be assigned; a second assignment fails with order.ErrNotPending
//   - the driver must exist, have the driver role and be approved
//   - on any failure the order is left untouched
//
// Example usage:
//
//	assigner := NewDriverAssigner(kernel.SystemClock())
//	_, err := assigner.Assign(o, driverID, LookupFrom(driver), admin)
//	if errors.Is(err, order.ErrNotPending) {
//	    // someone else assigned or canceled it; refetch
//	}
type DriverAssigner struct {
	clock kernel.Clock
}

// NewDriverAssigner stamps assignments with clock.
func NewDriverAssigner(clock kernel.Clock) DriverAssigner {
	return DriverAssigner{clock: clock}
}

// Assign runs the assignment workflow in its fixed order: authorization,
// pending check, driver resolution, mutation.
func (a DriverAssigner) Assign(
	o *order.Order,
	driverID kernel.UUID,
	drivers DriverLookup,
	actor *user.User,
) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if actor.Validate() != nil || !actor.Is(user.Admin) || !actor.IsApproved() {
		return nil, fmt.Errorf("%w: only approved admins assign drivers", ErrUnauthorized)
	}

	if o.Status() != order.Pending {
		return nil, fmt.Errorf("%w: current status is %s", order.ErrNotPending, o.Status())
	}

	driver, err := a.resolveDriver(driverID, drivers)
	if err != nil {
		return nil, err
	}

	if err = o.Assign(driver.ID(), a.clock.Now()); err != nil {
		return nil, err
	}

	return o, nil
}

// resolveDriver maps driverID onto an eligible driver.
func (a DriverAssigner) resolveDriver(driverID kernel.UUID, drivers DriverLookup) (*user.User, error) {
	if err := driverID.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDriverIsRequired, err)
	}

	if drivers == nil {
		return nil, fmt.Errorf("%w: %s", ErrDriverNotFound, driverID)
	}

	driver, ok := drivers(driverID)
	if !ok || driver.Validate() != nil {
		return nil, fmt.Errorf("%w: %s", ErrDriverNotFound, driverID)
	}

	if !driver.IsEligibleDriver() {
		return nil, fmt.Errorf("%w: %s", ErrDriverNotApproved, driverID)
	}

	return driver, nil
}

// EligibleDrivers returns the users an admin may pick from: approved users
// with the driver role, in input order.
func EligibleDrivers(users []*user.User) []*user.User {
	eligible := make([]*user.User, 0, len(users))
	for _, u := range users {
		if u.Validate() == nil && u.IsEligibleDriver() {
			eligible = append(eligible, u)
		}
	}
	return eligible
}
