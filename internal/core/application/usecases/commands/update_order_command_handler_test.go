package commands_test

import (
	"errors"
	"testing"
	"time"

	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/domain/model/user"
	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, id, userID int64, status order.Status, items ...*order.OrderItem) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, userID, status, time.Now(), items)
	require.NoError(t, err)
	return o
}

func TestUpdateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderCommand(7, order.StatusProcessing, []order.ItemRequest{{ItemID: 100, Quantity: 3}})
	require.NoError(t, err)

	existingItem, err := order.RestoreOrderItem(10, 7, 100, 1)
	require.NoError(t, err)
	existing := storedOrder(t, 7, 42, order.StatusNew, existingItem)
	saved := storedOrder(t, 7, 42, order.StatusProcessing, existingItem)
	owner := &user.User{ID: 42}

	catalog := new(MockItemCatalog)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetWithItems", mock.Anything, int64(7)).Return(existing, nil).Once(),
		uow.On("ItemCatalog").Return(catalog).Once(),
		repo.On("Update", mock.Anything, existing).Return(saved, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, mock.MatchedBy(func(e ports.OrderChangedEvent) bool {
		return e.OrderID == 7 && e.Action == ports.OrderActionUpdated && e.Status == order.StatusProcessing
	})).Return(nil).Once()

	userClient := new(MockUserClient)
	userClient.On("GetByID", ctx, int64(42)).Return(owner, nil).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, userClient, publisher, testLogger())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, saved, result.Order)
	assert.Same(t, owner, result.User)
	assert.Equal(t, order.StatusProcessing, existing.Status())
	assert.Equal(t, 3, existingItem.Quantity(), "retained item quantity must be updated in place")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	userClient.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderCommand(7, order.StatusDelivered, nil)
	require.NoError(t, err)

	existing := storedOrder(t, 7, 42, order.StatusNew)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetWithItems", mock.Anything, int64(7)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	userClient := new(MockUserClient)
	publisher := new(MockEventPublisher)

	h := commands.NewUpdateOrderCommandHandler(factory, userClient, publisher, testLogger())
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	assert.Equal(t, order.StatusNew, existing.Status(), "rejected transition must leave the order untouched")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderChanged", mock.Anything, mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderCommand(99, order.StatusProcessing, nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetWithItems", mock.Anything, int64(99)).
			Return(nil, errs.NewObjectNotFoundError("order", "99")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, new(MockUserClient), new(MockEventPublisher), testLogger())
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderCommandHandler_Handle_EnrichmentFailureAfterCommit(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderCommand(7, order.StatusProcessing, nil)
	require.NoError(t, err)

	existing := storedOrder(t, 7, 42, order.StatusNew)
	saved := storedOrder(t, 7, 42, order.StatusProcessing)

	catalog := new(MockItemCatalog)
	repo := new(MockOrderRepository)
	repo.On("GetWithItems", mock.Anything, int64(7)).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, existing).Return(saved, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("ItemCatalog").Return(catalog).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, mock.Anything).Return(nil).Once()

	userClient := new(MockUserClient)
	userClient.On("GetByID", ctx, int64(42)).
		Return(nil, errs.NewServiceUnavailableError("user-service")).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, userClient, publisher, testLogger())
	_, err = h.Handle(ctx, cmd)

	// The write is committed; only the enrichment failure propagates.
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrServiceUnavailable)
	uow.AssertCalled(t, "Commit", ctx)
	publisher.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteOrderCommand(7)
	require.NoError(t, err)

	existing := storedOrder(t, 7, 42, order.StatusCancelled)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(7)).Return(existing, nil).Once(),
		repo.On("Delete", mock.Anything, int64(7)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, mock.MatchedBy(func(e ports.OrderChangedEvent) bool {
		return e.OrderID == 7 && e.Action == ports.OrderActionDeleted
	})).Return(nil).Once()

	h := commands.NewDeleteOrderCommandHandler(factory, publisher, testLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteOrderCommand(99)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(99)).
			Return(nil, errs.NewObjectNotFoundError("order", "99")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewDeleteOrderCommandHandler(factory, publisher, testLogger())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderChanged", mock.Anything, mock.Anything)
}

func TestDeleteOrderCommandHandler_Handle_DeleteError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteOrderCommand(7)
	require.NoError(t, err)

	existing := storedOrder(t, 7, 42, order.StatusNew)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(7)).Return(existing, nil).Once(),
		repo.On("Delete", mock.Anything, int64(7)).Return(errors.New("delete error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory, new(MockEventPublisher), testLogger())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
