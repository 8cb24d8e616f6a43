// Package stock provides the seller owned inventory line consulted by the
// stock availability guard when an order is created.
package stock

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not built by NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("stock Item must be created via NewItem constructor")

// Item is one inventory line: a seller's available quantity of a named good.
// Unapproved items cannot back new orders. Item names are compared
// case-sensitively after trimming, and are unique per seller.
type Item struct {
	id       kernel.UUID
	seller   kernel.UUID
	name     string
	quantity int
	approved bool

	guard guard.ConstructorGuard
}

// NewItem creates an unapproved inventory line.
func NewItem(id kernel.UUID, seller kernel.UUID, name string, quantity int) (*Item, error) {
	it := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		it.setID(id),
		it.setSeller(seller),
		it.setName(name),
		it.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// RestoreItem rebuilds an item from persistence.
func RestoreItem(id kernel.UUID, seller kernel.UUID, name string, quantity int, approved bool) (*Item, error) {
	it, err := NewItem(id, seller, name, quantity)
	if err != nil {
		return nil, err
	}
	it.approved = approved
	return it, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Seller() kernel.UUID {
	return i.seller
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) IsApproved() bool {
	return i.approved
}

// Approve marks the line as usable for new orders.
func (i *Item) Approve() {
	i.approved = true
}

// NormalizeName is the form item names are stored and looked up in.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setSeller(seller kernel.UUID) error {
	if err := seller.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("seller", err)
	}
	i.seller = seller
	return nil
}

func (i *Item) setName(name string) error {
	name = NormalizeName(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	i.quantity = quantity
	return nil
}
