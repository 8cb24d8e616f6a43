package order

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNotPending is returned when assigning or deleting an order that has
	// already left Pending. Callers should refetch the order and re-decide.
	ErrNotPending = errors.New("order is not pending")
)

// Details are the seller supplied attributes of an order. They are fixed at
// creation; editing them is not part of the lifecycle.
type Details struct {
	CustomerName  string
	CustomerPhone string
	Street        string
	City          string
	// LocationURL is an optional link to an external map.
	LocationURL string
	Item        string
	Quantity    int
	Comment     string
}

// Order is the aggregate root of a delivery task.
//
// Invariants:
//   - status is always a member of the Status enum
//   - driver is set exactly once, by Assign, and never cleared
//   - createdAt never changes; updatedAt moves on every status change
//
// Status and driver can only change through MoveTo and Assign; both are
// driven by the lifecycle engine in the services package.
type Order struct {
	id        kernel.UUID
	seller    kernel.UUID
	driver    *kernel.UUID
	details   Details
	status    Status
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order owned by seller. All field errors are
// reported together.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), sellerID, order.Details{
//	    CustomerName:  "Ada",
//	    CustomerPhone: "+15550100",
//	    Street:        "1 Main St",
//	    City:          "Springfield",
//	    Item:          "Widget",
//	    Quantity:      3,
//	}, clock.Now())
func NewOrder(id kernel.UUID, seller kernel.UUID, details Details, now time.Time) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setSeller(seller),
		o.setDetails(details),
		validateTimestamp("created at", now),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence, checking the same field
// rules as NewOrder plus status/driver consistency.
func RestoreOrder(
	id kernel.UUID,
	seller kernel.UUID,
	details Details,
	status Status,
	driver *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setSeller(seller),
		o.setDetails(details),
		status.Validate(),
		status.ValidateCanHaveDriver(driver != nil),
		validateTimestamp("created at", createdAt),
		validateTimestamp("updated at", updatedAt),
	); err != nil {
		return nil, err
	}

	if driver != nil {
		if err := driver.Validate(); err != nil {
			return nil, err
		}
		d := *driver
		o.driver = &d
	}

	return o, nil
}

// Validate reports whether the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Seller returns the owning seller.
func (o *Order) Seller() kernel.UUID {
	return o.seller
}

// Driver returns the bound driver, or nil while the order is unassigned.
// The returned pointer is a copy.
func (o *Order) Driver() *kernel.UUID {
	if o.driver == nil {
		return nil
	}
	d := *o.driver
	return &d
}

func (o *Order) Details() Details {
	return o.details
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsOwnedBy reports whether userID created the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.seller.IsEqual(userID)
}

// IsBoundTo reports whether userID is the assigned driver.
func (o *Order) IsBoundTo(userID kernel.UUID) bool {
	return o.driver != nil && o.driver.IsEqual(userID)
}

// Assign binds driverID and moves the order to Assigned. It is the only
// mutation site of the driver reference.
//
// Returns ErrNotPending unless the order is Pending. Eligibility of the
// driver is checked by the caller.
func (o *Order) Assign(driverID kernel.UUID, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.status != Pending {
		return fmt.Errorf("%w: current status is %s", ErrNotPending, o.status)
	}
	if err := ValidateTransition(o.status, Assigned); err != nil {
		return err
	}

	d := driverID
	o.driver = &d
	o.status = Assigned
	o.touch(at)
	return nil
}

// MoveTo changes the status along a table edge other than the assignment edge.
// Entering Assigned requires a driver and therefore goes through Assign.
func (o *Order) MoveTo(to Status, at time.Time) error {
	if to == Assigned {
		return &IllegalTransitionError{From: o.status, To: to}
	}
	if err := ValidateTransition(o.status, to); err != nil {
		return err
	}

	o.status = to
	o.touch(at)
	return nil
}

// ValidateDelete checks that the order may still be removed by its owner.
func (o *Order) ValidateDelete() error {
	if o.status != Pending {
		return fmt.Errorf("%w: current status is %s", ErrNotPending, o.status)
	}
	return nil
}

// touch moves updatedAt forward; a clock running behind createdAt is ignored.
func (o *Order) touch(at time.Time) {
	if at.Before(o.createdAt) {
		at = o.createdAt
	}
	o.updatedAt = at
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setSeller(seller kernel.UUID) error {
	if err := seller.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("seller", err)
	}
	o.seller = seller
	return nil
}

func (o *Order) setDetails(d Details) error {
	d.CustomerName = strings.TrimSpace(d.CustomerName)
	d.CustomerPhone = strings.TrimSpace(d.CustomerPhone)
	d.Street = strings.TrimSpace(d.Street)
	d.City = strings.TrimSpace(d.City)
	d.LocationURL = strings.TrimSpace(d.LocationURL)
	d.Item = strings.TrimSpace(d.Item)

	err := errors.Join(
		required("customer name", d.CustomerName),
		required("customer phone", d.CustomerPhone),
		required("delivery street", d.Street),
		required("delivery city", d.City),
		required("item", d.Item),
		validateLocationURL(d.LocationURL),
		validateQuantity(d.Quantity),
	)
	if err != nil {
		return err
	}

	o.details = d
	return nil
}

func required(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	return nil
}

func validateLocationURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("delivery location", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery location",
			fmt.Errorf("%q is not an absolute http(s) link", raw),
		)
	}
	return nil
}

func validateTimestamp(name string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
