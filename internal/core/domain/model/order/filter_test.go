package order_test

import (
	"testing"

	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Clauses(t *testing.T) {
	t.Run("should yield nil for empty filter", func(t *testing.T) {
		var filter order.Filter

		assert.True(t, filter.IsEmpty())
		assert.Nil(t, filter.Clauses())
	})

	t.Run("should build single clause for statuses", func(t *testing.T) {
		filter := order.Filter{Statuses: []order.Status{order.StatusNew, order.StatusShipped}}

		clauses := filter.Clauses()

		require.Len(t, clauses, 1)
		assert.Equal(t, order.FieldStatus, clauses[0].Field)
		assert.Equal(t, []any{"NEW", "SHIPPED"}, clauses[0].Values)
	})

	t.Run("should build single clause for ids", func(t *testing.T) {
		filter := order.Filter{IDs: []int64{1, 2, 3}}

		clauses := filter.Clauses()

		require.Len(t, clauses, 1)
		assert.Equal(t, order.FieldID, clauses[0].Field)
		assert.Equal(t, []any{int64(1), int64(2), int64(3)}, clauses[0].Values)
	})

	t.Run("should combine both fields conjunctively", func(t *testing.T) {
		filter := order.Filter{
			Statuses: []order.Status{order.StatusCancelled},
			IDs:      []int64{9},
		}

		clauses := filter.Clauses()

		require.Len(t, clauses, 2)
		assert.Equal(t, order.FieldID, clauses[0].Field)
		assert.Equal(t, order.FieldStatus, clauses[1].Field)
	})
}

func TestFilter_Validate(t *testing.T) {
	t.Run("should accept empty filter", func(t *testing.T) {
		assert.NoError(t, order.Filter{}.Validate())
	})

	t.Run("should accept known statuses", func(t *testing.T) {
		filter := order.Filter{Statuses: order.AllStatuses()}
		assert.NoError(t, filter.Validate())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		filter := order.Filter{Statuses: []order.Status{"NOPE"}}

		err := filter.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
