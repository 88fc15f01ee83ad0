package order_test

import (
	"testing"
	"time"

	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	validUserID := int64(42)
	validDate := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validUserID, validDate)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.Equal(t, validUserID, o.UserID())
		assert.Equal(t, order.StatusNew, o.Status())
		assert.Zero(t, o.ID())
		assert.Empty(t, o.Items())
	})

	t.Run("should truncate creation date to date precision", func(t *testing.T) {
		o, err := order.NewOrder(validUserID, validDate)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), o.CreationDate())
	})

	t.Run("should fail with zero user id", func(t *testing.T) {
		o, err := order.NewOrder(0, validDate)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "userID")
	})

	t.Run("should fail with negative user id", func(t *testing.T) {
		o, err := order.NewOrder(-7, validDate)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero creation date", func(t *testing.T) {
		o, err := order.NewOrder(validUserID, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "creationDate")
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder(0, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "userID")
		assert.Contains(t, err.Error(), "creationDate")
	})
}

func TestRestoreOrder(t *testing.T) {
	validDate := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("should restore order with persisted state", func(t *testing.T) {
		item, err := order.RestoreOrderItem(10, 5, 100, 3)
		require.NoError(t, err)

		o, err := order.RestoreOrder(5, 42, order.StatusShipped, validDate, []*order.OrderItem{item})

		require.NoError(t, err)
		assert.Equal(t, int64(5), o.ID())
		assert.Equal(t, int64(42), o.UserID())
		assert.Equal(t, order.StatusShipped, o.Status())
		require.Len(t, o.Items(), 1)
		assert.Equal(t, int64(100), o.Items()[0].ItemID())
	})

	t.Run("should fail without id", func(t *testing.T) {
		o, err := order.RestoreOrder(0, 42, order.StatusNew, validDate, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unknown status", func(t *testing.T) {
		o, err := order.RestoreOrder(5, 42, order.Status("BROKEN"), validDate, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with non-constructed item", func(t *testing.T) {
		o, err := order.RestoreOrder(5, 42, order.StatusNew, validDate, []*order.OrderItem{{}})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrOrderItemIsNotConstructed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(1, time.Now())
		require.NoError(t, err)
		return o
	}

	t.Run("should follow happy path to delivered", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.StatusProcessing))
		require.NoError(t, o.ChangeStatus(order.StatusShipped))
		require.NoError(t, o.ChangeStatus(order.StatusDelivered))
		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("should allow cancellation from every non-terminal status", func(t *testing.T) {
		for _, from := range []order.Status{order.StatusNew, order.StatusProcessing, order.StatusShipped} {
			o, err := order.RestoreOrder(1, 1, from, time.Now(), nil)
			require.NoError(t, err)

			require.NoError(t, o.ChangeStatus(order.StatusCancelled))
			assert.Equal(t, order.StatusCancelled, o.Status())
		}
	})

	t.Run("should reject skipping a lifecycle stage", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(order.StatusShipped)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.StatusNew, o.Status(), "status must be unchanged after rejected transition")
	})

	t.Run("should reject any transition out of delivered", func(t *testing.T) {
		o, err := order.RestoreOrder(1, 1, order.StatusDelivered, time.Now(), nil)
		require.NoError(t, err)

		for _, to := range order.AllStatuses() {
			transitionErr := o.ChangeStatus(to)
			require.Error(t, transitionErr)
			assert.ErrorIs(t, transitionErr, order.ErrInvalidStatusTransition)
		}
	})

	t.Run("should reject any transition out of cancelled", func(t *testing.T) {
		o, err := order.RestoreOrder(1, 1, order.StatusCancelled, time.Now(), nil)
		require.NoError(t, err)

		for _, to := range order.AllStatuses() {
			transitionErr := o.ChangeStatus(to)
			require.Error(t, transitionErr)
			assert.ErrorIs(t, transitionErr, order.ErrInvalidStatusTransition)
		}
	})

	t.Run("should name both statuses in the error", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(order.StatusDelivered)

		require.Error(t, err)
		assert.Equal(t, "invalid status transition: NEW -> DELIVERED", err.Error())

		var transitionErr *order.InvalidStatusTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.StatusNew, transitionErr.From)
		assert.Equal(t, order.StatusDelivered, transitionErr.To)
	})

	t.Run("should reject unknown target before consulting the state machine", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(order.Status("LOST"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ReplaceItems(t *testing.T) {
	t.Run("should replace item list and bind items to the order", func(t *testing.T) {
		o, err := order.RestoreOrder(7, 1, order.StatusNew, time.Now(), nil)
		require.NoError(t, err)

		first, err := order.NewOrderItem(100, 2)
		require.NoError(t, err)
		second, err := order.NewOrderItem(200, 1)
		require.NoError(t, err)

		require.NoError(t, o.ReplaceItems([]*order.OrderItem{first, second}))

		require.Len(t, o.Items(), 2)
		assert.Equal(t, int64(7), first.OrderID())
		assert.Equal(t, int64(7), second.OrderID())
	})

	t.Run("should drop previous items entirely", func(t *testing.T) {
		o, err := order.NewOrder(1, time.Now())
		require.NoError(t, err)

		old, err := order.NewOrderItem(100, 2)
		require.NoError(t, err)
		require.NoError(t, o.ReplaceItems([]*order.OrderItem{old}))

		require.NoError(t, o.ReplaceItems(nil))
		assert.Empty(t, o.Items())
	})

	t.Run("should reject non-constructed items", func(t *testing.T) {
		o, err := order.NewOrder(1, time.Now())
		require.NoError(t, err)

		err = o.ReplaceItems([]*order.OrderItem{{}})

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderItemIsNotConstructed)
		assert.Empty(t, o.Items(), "item list must be unchanged after rejected replace")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare by persistence identifier", func(t *testing.T) {
		a, err := order.RestoreOrder(3, 1, order.StatusNew, time.Now(), nil)
		require.NoError(t, err)
		b, err := order.RestoreOrder(3, 2, order.StatusShipped, time.Now(), nil)
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should never equal unsaved orders", func(t *testing.T) {
		a, err := order.NewOrder(1, time.Now())
		require.NoError(t, err)
		b, err := order.NewOrder(1, time.Now())
		require.NoError(t, err)

		assert.False(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(nil))
	})
}
