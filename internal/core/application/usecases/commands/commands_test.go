package commands_test

import (
	"testing"

	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create command with valid input", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(testCredentials(t), []order.ItemRequest{{ItemID: 1, Quantity: 1}})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("should accept empty item list", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(testCredentials(t), nil)

		require.NoError(t, err)
		assert.Empty(t, cmd.Items())
	})

	t.Run("should reject non-constructed credentials", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(ports.Credentials{}, nil)

		require.Error(t, err)
	})

	t.Run("should reject invalid item request", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(testCredentials(t), []order.ItemRequest{{ItemID: 1, Quantity: 0}})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestNewUpdateOrderCommand(t *testing.T) {
	t.Run("should create command with valid input", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderCommand(7, order.StatusProcessing, []order.ItemRequest{{ItemID: 1, Quantity: 2}})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, int64(7), cmd.OrderID())
		assert.Equal(t, order.StatusProcessing, cmd.Status())
	})

	t.Run("should reject missing order id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(0, order.StatusProcessing, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(7, order.Status("NOPE"), nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should accept any known status regardless of transition legality", func(t *testing.T) {
		// Transition legality is decided against the loaded order, not here.
		for _, s := range order.AllStatuses() {
			_, err := commands.NewUpdateOrderCommand(7, s, nil)
			assert.NoError(t, err)
		}
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var cmd commands.UpdateOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderCommandIsNotConstructed)
	})
}

func TestNewDeleteOrderCommand(t *testing.T) {
	t.Run("should create command with valid id", func(t *testing.T) {
		cmd, err := commands.NewDeleteOrderCommand(7)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, int64(7), cmd.OrderID())
	})

	t.Run("should reject non-positive id", func(t *testing.T) {
		for _, id := range []int64{0, -1} {
			_, err := commands.NewDeleteOrderCommand(id)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var cmd commands.DeleteOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrDeleteOrderCommandIsNotConstructed)
	})
}
