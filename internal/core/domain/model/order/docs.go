// Package order provides the Order aggregate, the closed Status enum and the
// canonical transition table of the delivery lifecycle.
//
// The package includes:
//   - Status: pending, assigned, in_transit, delivered, canceled, no_answer, postponed
//   - IsLegalTransition / NextStatuses: the one transition table every caller consults
//   - Order: identity, seller supplied details, status, driver binding and timestamps
//
// Key business rules:
//   - Delivered and Canceled are terminal
//   - Self-transitions are never legal
//   - Assigned is only entered from Pending, through Order.Assign, which binds a driver
//   - A bound driver is never cleared
//
// Who may request a transition is decided by the services package; this
// package only knows whether an edge exists.
package order
