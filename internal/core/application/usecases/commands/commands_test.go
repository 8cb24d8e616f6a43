package commands_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		orderID, actorID, sellerID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(orderID, actorID, sellerID, details("Widget", 2))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, actorID, cmd.ActorID())
		assert.Equal(t, sellerID, cmd.SellerID())
		assert.Equal(t, 2, cmd.Details().Quantity)
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, details("Widget", 0))

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "actor")
		assert.Contains(t, err.Error(), "seller")
	})

	t.Run("large quantity is left to the stock guard", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			details("Widget", 150_000))

		require.NoError(t, err)
		assert.Equal(t, 150_000, cmd.Details().Quantity)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestNewDeleteOrderCommand(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewDeleteOrderCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
}

func TestNewApproveCommands(t *testing.T) {
	_, err := commands.NewApproveUserCommand(kernel.UUID{}, kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewApproveStockItemCommand(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewBootstrapAdminCommand(kernel.NewUUID(), "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
