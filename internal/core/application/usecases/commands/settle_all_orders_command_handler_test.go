package commands_test

import (
	"testing"
	"time"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettleAllOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSettleAllOrdersCommand(7)
	require.NoError(t, err)

	first := restoredOrder(t, 41, 7, testNow.Add(-48*time.Hour), order.Delivered)
	second := restoredOrder(t, 42, 7, testNow.Add(-24*time.Hour), order.Delivered)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllDeliveredByUser", ctx, int64(7)).
			Return([]*order.Order{first, second}, nil).Once(),
		repo.On("UpdateStatus", ctx, first, order.Delivered).Return(nil).Once(),
		repo.On("UpdateStatus", ctx, second, order.Delivered).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)
	publisher.On("Publish", ctx, mock.Anything).Return(nil).Twice()

	h := commands.NewSettleAllOrdersCommandHandler(factory, publisher)
	count, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Equal(t, order.Settled, first.Status())
	require.Equal(t, order.Settled, second.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestSettleAllOrdersCommandHandler_Handle_NothingToSettle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSettleAllOrdersCommand(7)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllDeliveredByUser", ctx, int64(7)).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSettleAllOrdersCommandHandler(factory, new(MockNotificationPublisher))
	count, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestSettleAllOrdersCommandHandler_Handle_ConflictAbortsBatch(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSettleAllOrdersCommand(7)
	require.NoError(t, err)

	first := restoredOrder(t, 41, 7, testNow.Add(-48*time.Hour), order.Delivered)
	second := restoredOrder(t, 42, 7, testNow.Add(-24*time.Hour), order.Delivered)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllDeliveredByUser", ctx, int64(7)).
			Return([]*order.Order{first, second}, nil).Once(),
		repo.On("UpdateStatus", ctx, first, order.Delivered).Return(nil).Once(),
		repo.On("UpdateStatus", ctx, second, order.Delivered).
			Return(errs.NewConflictError("orderID", int64(42))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSettleAllOrdersCommandHandler(factory, new(MockNotificationPublisher))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertExpectations(t)
}
