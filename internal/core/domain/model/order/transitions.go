package order

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is returned when the target status is not reachable from
// the current one.
var ErrIllegalTransition = errors.New("illegal transition")

// IllegalTransitionError carries the rejected edge. Terminal is set when From
// accepts no transition at all.
type IllegalTransitionError struct {
	From     Status
	To       Status
	Terminal bool
}

func (e *IllegalTransitionError) Error() string {
	if e.Terminal {
		return fmt.Sprintf("%s: %s -> %s (order is %s and final)", ErrIllegalTransition, e.From, e.To, e.From)
	}
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// transitions is the single transition table of the system. Every caller,
// including the allowed-actions projection served to dashboards, reads it
// through IsLegalTransition or NextStatuses.
var transitions = map[Status][]Status{
	Pending:   {Assigned, Canceled},
	Assigned:  {InTransit, Postponed, Canceled},
	InTransit: {Delivered, NoAnswer, Postponed, Canceled},
	NoAnswer:  {InTransit, Postponed, Canceled},
	Postponed: {InTransit, Delivered, Canceled, NoAnswer},
	Delivered: {},
	Canceled:  {},
}

// IsLegalTransition reports whether to is directly reachable from from.
// It is total: unknown statuses and self-transitions yield false.
func IsLegalTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from from, in table order.
// The returned slice is a copy.
func NextStatuses(from Status) []Status {
	next := transitions[from]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// ValidateTransition returns an *IllegalTransitionError when the edge is not in the table.
func ValidateTransition(from, to Status) error {
	if from.IsTerminal() {
		return &IllegalTransitionError{From: from, To: to, Terminal: true}
	}
	if !IsLegalTransition(from, to) {
		return &IllegalTransitionError{From: from, To: to}
	}
	return nil
}
