package services

import (
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"
)

// driverTargets are the statuses a bound driver may move an order to, subject
// to the transition table.
var driverTargets = map[order.Status]struct{}{
	order.InTransit: {},
	order.Delivered: {},
	order.NoAnswer:  {},
	order.Postponed: {},
	order.Canceled:  {},
}

// AuthorizationPolicy decides whether an actor may request a transition. It
// never looks at anything but its arguments.
//
// Rules:
//   - unapproved or invalid actors may request nothing
//   - seller: only Canceled, only from Pending, only on own orders
//   - driver: only on orders bound to them, only towards in_transit,
//     delivered, no_answer, postponed or canceled, and only along table edges
//   - admin: any table edge, including the assignment edge
type AuthorizationPolicy struct{}

// NewAuthorizationPolicy returns the stateless policy.
func NewAuthorizationPolicy() AuthorizationPolicy {
	return AuthorizationPolicy{}
}

// CanRequest reports whether actor may ask for o to move to to.
func (AuthorizationPolicy) CanRequest(actor *user.User, o *order.Order, to order.Status) bool {
	if actor.Validate() != nil || o.Validate() != nil || !actor.IsApproved() {
		return false
	}

	from := o.Status()

	switch actor.Role() {
	case user.Admin:
		return order.IsLegalTransition(from, to)
	case user.Seller:
		return to == order.Canceled && from == order.Pending && o.IsOwnedBy(actor.ID())
	case user.Driver:
		if !o.IsBoundTo(actor.ID()) {
			return false
		}
		if _, ok := driverTargets[to]; !ok {
			return false
		}
		return order.IsLegalTransition(from, to)
	default:
		return false
	}
}
