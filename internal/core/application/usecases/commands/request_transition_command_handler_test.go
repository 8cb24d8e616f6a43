package commands_test

import (
	"errors"
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func transitionHandler(f commands.UoWFactory) commands.RequestTransitionCommandHandler {
	return commands.NewRequestTransitionCommandHandler(f, services.NewLifecycleEngine(kernel.FixedClock(now)))
}

func TestRequestTransitionCommandHandler_DriverStartsTransit(t *testing.T) {
	ctx := t.Context()
	seller := newUser(t, user.Seller, true)
	driver := newUser(t, user.Driver, true)
	o := assignedOrder(t, seller, driver)
	cmd, err := commands.NewRequestTransitionCommand(o.ID(), driver.ID(), order.InTransit)
	require.NoError(t, err)

	e := newEnv()
	e.committed(ctx)
	e.users.On("Get", ctx, driver.ID()).Return(driver, nil).Once()
	e.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	e.orders.On("Update", ctx, o, order.Assigned).Return(nil).Once()

	h := transitionHandler(e.factory())
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.InTransit, o.Status())
	assert.Equal(t, now, o.UpdatedAt())
	e.assertCommitted(t)
}

func TestRequestTransitionCommandHandler_AdminAssignsDriver(t *testing.T) {
	ctx := t.Context()
	admin := newUser(t, user.Admin, true)
	seller := newUser(t, user.Seller, true)
	driver := newUser(t, user.Driver, true)
	o := pendingOrder(t, seller)
	cmd, err := commands.NewRequestTransitionCommand(o.ID(), admin.ID(), order.Assigned)
	require.NoError(t, err)
	cmd = cmd.WithDriver(driver.ID()).WithExpectedStatus(order.Pending)

	e := newEnv()
	e.committed(ctx)
	e.users.On("Get", ctx, admin.ID()).Return(admin, nil).Once()
	e.users.On("Get", ctx, driver.ID()).Return(driver, nil).Once()
	e.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	e.orders.On("Update", ctx, o, order.Pending).Return(nil).Once()

	h := transitionHandler(e.factory())
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.Assigned, o.Status())
	assert.True(t, o.IsBoundTo(driver.ID()))
	e.assertCommitted(t)
}

func TestRequestTransitionCommandHandler_AssignmentRejections(t *testing.T) {
	ctx := t.Context()
	admin := newUser(t, user.Admin, true)
	seller := newUser(t, user.Seller, true)
	unapproved := newUser(t, user.Driver, false)
	notADriver := newUser(t, user.Seller, true)

	t.Run("missing driver", func(t *testing.T) {
		o := pendingOrder(t, seller)
		missing := kernel.NewUUID()
		cmd, err := commands.NewRequestTransitionCommand(o.ID(), admin.ID(), order.Assigned)
		require.NoError(t, err)

		e := newEnv()
		e.rolledBack(ctx)
		e.users.On("Get", ctx, admin.ID()).Return(admin, nil).Once()
		e.users.On("Get", ctx, missing).Return(nil, errs.NewObjectNotFoundError("user", missing)).Once()
		e.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

		h := transitionHandler(e.factory())
		require.ErrorIs(t, h.Handle(ctx, cmd.WithDriver(missing)), services.ErrDriverNotFound)
		e.assert(t)
	})

	for name, candidate := range map[string]*user.User{"unapproved driver": unapproved, "seller as driver": notADriver} {
		t.Run(name, func(t *testing.T) {
			o := pendingOrder(t, seller)
			cmd, err := commands.NewRequestTransitionCommand(o.ID(), admin.ID(), order.Assigned)
			require.NoError(t, err)

			e := newEnv()
			e.rolledBack(ctx)
			e.users.On("Get", ctx, admin.ID()).Return(admin, nil).Once()
			e.users.On("Get", ctx, candidate.ID()).Return(candidate, nil).Once()
			e.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

			h := transitionHandler(e.factory())
			require.ErrorIs(t, h.Handle(ctx, cmd.WithDriver(candidate.ID())), services.ErrDriverNotApproved)
			assert.Equal(t, order.Pending, o.Status())
			assert.Nil(t, o.Driver())
			e.assert(t)
		})
	}

	t.Run("no driver id", func(t *testing.T) {
		o := pendingOrder(t, seller)
		cmd, err := commands.NewRequestTransitionCommand(o.ID(), admin.ID(), order.Assigned)
		require.NoError(t, err)

		e := newEnv()
		e.rolledBack(ctx)
		e.users.On("Get", ctx, admin.ID()).Return(admin, nil).Once()
		e.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

		h := transitionHandler(e.factory())
		require.ErrorIs(t, h.Handle(ctx, cmd), services.ErrDriverIsRequired)
		e.assert(t)
	})
}

func TestRequestTransitionCommandHandler_EngineRejections(t *testing.T) {
	ctx := t.Context()
	seller := newUser(t, user.Seller, true)
	driver := newUser(t, user.Driver, true)

	cases := []struct {
		name  string
		actor *user.User
		to    order.Status
		want  error
	}{
		{"driver skips transit", driver, order.Delivered, order.ErrIllegalTransition},
		{"seller cancels assigned order", seller, order.Canceled, services.ErrUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := assignedOrder(t, seller, driver)
			cmd, err := commands.NewRequestTransitionCommand(o.ID(), tc.actor.ID(), tc.to)
			require.NoError(t, err)

			e := newEnv()
			e.rolledBack(ctx)
			e.users.On("Get", ctx, tc.actor.ID()).Return(tc.actor, nil).Once()
			e.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

			h := transitionHandler(e.factory())
			require.ErrorIs(t, h.Handle(ctx, cmd), tc.want)
			assert.Equal(t, order.Assigned, o.Status())
			e.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			e.assert(t)
		})
	}
}

func TestRequestTransitionCommandHandler_StaleOrder(t *testing.T) {
	ctx := t.Context()
	seller := newUser(t, user.Seller, true)
	driver := newUser(t, user.Driver, true)

	t.Run("expected status differs from stored status", func(t *testing.T) {
		o := assignedOrder(t, seller, driver)
		cmd, err := commands.NewRequestTransitionCommand(o.ID(), driver.ID(), order.InTransit)
		require.NoError(t, err)

		e := newEnv()
		e.rolledBack(ctx)
		e.users.On("Get", ctx, driver.ID()).Return(driver, nil).Once()
		e.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

		h := transitionHandler(e.factory())
		require.ErrorIs(t, h.Handle(ctx, cmd.WithExpectedStatus(order.Postponed)), ports.ErrStaleOrder)
		e.assert(t)
	})

	t.Run("compare and swap lost", func(t *testing.T) {
		o := assignedOrder(t, seller, driver)
		cmd, err := commands.NewRequestTransitionCommand(o.ID(), driver.ID(), order.InTransit)
		require.NoError(t, err)

		e := newEnv()
		e.rolledBack(ctx)
		e.users.On("Get", ctx, driver.ID()).Return(driver, nil).Once()
		e.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		e.orders.On("Update", ctx, o, order.Assigned).Return(ports.ErrStaleOrder).Once()

		h := transitionHandler(e.factory())
		require.ErrorIs(t, h.Handle(ctx, cmd), ports.ErrStaleOrder)
		e.assert(t)
	})
}

func TestRequestTransitionCommandHandler_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	admin := newUser(t, user.Admin, true)
	orderID := kernel.NewUUID()
	cmd, err := commands.NewRequestTransitionCommand(orderID, admin.ID(), order.Canceled)
	require.NoError(t, err)

	e := newEnv()
	e.rolledBack(ctx)
	e.users.On("Get", ctx, admin.ID()).Return(admin, nil).Once()
	e.orders.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()

	h := transitionHandler(e.factory())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	e.assert(t)
}

func TestRequestTransitionCommandHandler_UserLookupFailure(t *testing.T) {
	ctx := t.Context()
	admin := newUser(t, user.Admin, true)
	o := pendingOrder(t, newUser(t, user.Seller, true))
	driverID := kernel.NewUUID()
	cmd, err := commands.NewRequestTransitionCommand(o.ID(), admin.ID(), order.Assigned)
	require.NoError(t, err)

	e := newEnv()
	e.rolledBack(ctx)
	e.users.On("Get", ctx, admin.ID()).Return(admin, nil).Once()
	e.users.On("Get", ctx, driverID).Return(nil, errors.New("connection reset")).Once()
	e.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	h := transitionHandler(e.factory())
	require.EqualError(t, h.Handle(ctx, cmd.WithDriver(driverID)), "connection reset")
	e.assert(t)
}

func TestNewRequestTransitionCommand(t *testing.T) {
	_, err := commands.NewRequestTransitionCommand(kernel.UUID{}, kernel.UUID{}, order.Unknown)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd, err := commands.NewRequestTransitionCommand(kernel.NewUUID(), kernel.NewUUID(), order.Canceled)
	require.NoError(t, err)
	assert.Nil(t, cmd.DriverID())
	assert.Nil(t, cmd.ExpectedStatus())

	driverID := kernel.NewUUID()
	withDriver := cmd.WithDriver(driverID)
	assert.Nil(t, cmd.DriverID(), "WithDriver must not modify the receiver")
	require.NotNil(t, withDriver.DriverID())
	assert.True(t, withDriver.DriverID().IsEqual(driverID))
}
