package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Status is the lifecycle state of an order. The set is closed: values outside
// the declared constants fail Validate, and ParseStatus is the only way to turn
// external text into a Status.
//
// Lifecycle (see transitions.go for the full table):
//
//	Pending ──> Assigned ──> InTransit ──> Delivered
//	   │           │          │   ▲   │
//	   │           │          ▼   │   ▼
//	   │           └──────> Postponed <─> NoAnswer
//	   └──────────────────────────────────────> Canceled
type Status int

const (
	// Unknown is the zero value and never a valid status.
	Unknown Status = iota

	// Pending is the initial status; the order waits for a driver.
	Pending

	// Assigned means a driver has been bound to the order.
	Assigned

	// InTransit means the driver is on the way to the customer.
	InTransit

	// Delivered is terminal.
	Delivered

	// Canceled is terminal.
	Canceled

	// NoAnswer means the customer could not be reached on arrival.
	NoAnswer

	// Postponed means delivery was rescheduled.
	Postponed
)

// statusNames is ordered by Status value and doubles as the enumeration used by
// All and CountByStatus.
var statusNames = []struct {
	status Status
	name   string
}{
	{Pending, "pending"},
	{Assigned, "assigned"},
	{InTransit, "in_transit"},
	{Delivered, "delivered"},
	{Canceled, "canceled"},
	{NoAnswer, "no_answer"},
	{Postponed, "postponed"},
}

// All returns every valid status in declaration order.
func All() []Status {
	all := make([]Status, 0, len(statusNames))
	for _, s := range statusNames {
		all = append(all, s.status)
	}
	return all
}

// ParseStatus converts the wire name ("in_transit") into a Status.
func ParseStatus(name string) (Status, error) {
	for _, s := range statusNames {
		if s.name == name {
			return s.status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// String returns the wire name, or "unknown" for values outside the enum.
func (s Status) String() string {
	for _, n := range statusNames {
		if n.status == s {
			return n.name
		}
	}
	return "unknown"
}

// Validate rejects Unknown and any value outside the enum.
func (s Status) Validate() error {
	if s.String() == "unknown" {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// ValidateCanHaveDriver checks the driver binding against the status.
//
//   - Pending orders have no driver.
//   - Assigned, InTransit, NoAnswer, Postponed and Delivered orders have one.
//   - Canceled orders may have either, depending on whether they were assigned first.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	switch {
	case s == Canceled:
		return nil
	case hasDriver && s == Pending:
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a driver", s),
		)
	case !hasDriver && s != Pending:
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no driver", s),
		)
	}
	return nil
}
