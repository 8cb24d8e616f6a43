package services_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverAssigner_Assign(t *testing.T) {
	assigner := services.NewDriverAssigner(kernel.FixedClock(later))
	admin := newUser(t, user.Admin, true)
	seller := newUser(t, user.Seller, true)

	t.Run("binds an approved driver", func(t *testing.T) {
		driver := newUser(t, user.Driver, true)
		o := pendingOrder(t, seller)

		result, err := assigner.Assign(o, driver.ID(), services.LookupFrom(driver), admin)

		require.NoError(t, err)
		assert.Same(t, o, result)
		assert.Equal(t, order.Assigned, o.Status())
		assert.True(t, o.IsBoundTo(driver.ID()))
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("non admin is unauthorized", func(t *testing.T) {
		driver := newUser(t, user.Driver, true)
		for _, actor := range []*user.User{seller, driver, newUser(t, user.Admin, false), nil} {
			o := pendingOrder(t, seller)

			_, err := assigner.Assign(o, driver.ID(), services.LookupFrom(driver), actor)

			require.ErrorIs(t, err, services.ErrUnauthorized)
			assert.Equal(t, order.Pending, o.Status())
			assert.Nil(t, o.Driver())
		}
	})

	t.Run("authorization is checked before the pending check", func(t *testing.T) {
		driver := newUser(t, user.Driver, true)
		o := orderIn(t, order.Assigned, seller, driver)

		_, err := assigner.Assign(o, driver.ID(), services.LookupFrom(driver), seller)

		require.ErrorIs(t, err, services.ErrUnauthorized)
	})

	t.Run("non pending order", func(t *testing.T) {
		driver := newUser(t, user.Driver, true)
		for _, s := range order.All() {
			if s == order.Pending {
				continue
			}
			o := orderIn(t, s, seller, driver)

			_, err := assigner.Assign(o, driver.ID(), services.LookupFrom(driver), admin)

			require.ErrorIs(t, err, order.ErrNotPending, s.String())
			assert.Equal(t, s, o.Status())
		}
	})

	t.Run("pending check comes before driver resolution", func(t *testing.T) {
		driver := newUser(t, user.Driver, true)
		o := orderIn(t, order.Canceled, seller, driver)

		_, err := assigner.Assign(o, kernel.NewUUID(), services.LookupFrom(), admin)

		require.ErrorIs(t, err, order.ErrNotPending)
	})

	t.Run("assigning twice fails the second call", func(t *testing.T) {
		first := newUser(t, user.Driver, true)
		second := newUser(t, user.Driver, true)
		o := pendingOrder(t, seller)
		lookup := services.LookupFrom(first, second)

		_, err := assigner.Assign(o, first.ID(), lookup, admin)
		require.NoError(t, err)

		_, err = assigner.Assign(o, second.ID(), lookup, admin)

		require.ErrorIs(t, err, order.ErrNotPending)
		assert.True(t, o.IsBoundTo(first.ID()))
	})

	t.Run("unknown driver", func(t *testing.T) {
		o := pendingOrder(t, seller)

		_, err := assigner.Assign(o, kernel.NewUUID(), services.LookupFrom(newUser(t, user.Driver, true)), admin)

		require.ErrorIs(t, err, services.ErrDriverNotFound)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("nil lookup means not found", func(t *testing.T) {
		o := pendingOrder(t, seller)

		_, err := assigner.Assign(o, kernel.NewUUID(), nil, admin)

		require.ErrorIs(t, err, services.ErrDriverNotFound)
	})

	t.Run("zero driver id is required", func(t *testing.T) {
		o := pendingOrder(t, seller)

		_, err := assigner.Assign(o, kernel.UUID{}, services.LookupFrom(), admin)

		require.ErrorIs(t, err, services.ErrDriverIsRequired)
	})

	t.Run("ineligible users are not approved drivers", func(t *testing.T) {
		for _, candidate := range []*user.User{
			newUser(t, user.Driver, false),
			newUser(t, user.Seller, true),
			newUser(t, user.Admin, true),
		} {
			o := pendingOrder(t, seller)

			_, err := assigner.Assign(o, candidate.ID(), services.LookupFrom(candidate), admin)

			require.ErrorIs(t, err, services.ErrDriverNotApproved, candidate.Role().String())
			assert.Equal(t, order.Pending, o.Status())
			assert.Nil(t, o.Driver())
		}
	})

	t.Run("invalid order", func(t *testing.T) {
		_, err := assigner.Assign(nil, kernel.NewUUID(), nil, admin)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestEligibleDrivers(t *testing.T) {
	approved1 := newUser(t, user.Driver, true)
	approved2 := newUser(t, user.Driver, true)
	users := []*user.User{
		newUser(t, user.Admin, true),
		approved1,
		newUser(t, user.Driver, false),
		newUser(t, user.Seller, true),
		nil,
		approved2,
	}

	eligible := services.EligibleDrivers(users)

	assert.Equal(t, []*user.User{approved1, approved2}, eligible)
	assert.Empty(t, services.EligibleDrivers(nil))
}
