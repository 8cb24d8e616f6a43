package services_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

var (
	t0    = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	later = t0.Add(15 * time.Minute)
)

func newUser(t *testing.T, role user.Role, approved bool) *user.User {
	t.Helper()
	u, err := user.RestoreUser(kernel.NewUUID(), role.String()+" user", role, approved)
	require.NoError(t, err)
	return u
}

func details(item string, quantity int) order.Details {
	return order.Details{
		CustomerName:  "Grace Hopper",
		CustomerPhone: "+15550199",
		Street:        "42 Harbor Rd",
		City:          "Arlington",
		Item:          item,
		Quantity:      quantity,
	}
}

func pendingOrder(t *testing.T, seller *user.User) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), seller.ID(), details("Widget", 3), t0)
	require.NoError(t, err)
	return o
}

// orderIn builds an order of seller in status s; every status past pending is bound to driver.
func orderIn(t *testing.T, s order.Status, seller, driver *user.User) *order.Order {
	t.Helper()
	var driverID *kernel.UUID
	if s != order.Pending {
		id := driver.ID()
		driverID = &id
	}
	o, err := order.RestoreOrder(kernel.NewUUID(), seller.ID(), details("Widget", 3), s, driverID, t0, t0)
	require.NoError(t, err)
	return o
}
