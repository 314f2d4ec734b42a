package commands_test

import (
	"testing"
	"time"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDisputeOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDisputeOrderCommand(42, 7)
	require.NoError(t, err)

	existing := restoredOrder(t, 42, 7, testNow.Add(-48*time.Hour), order.Delivered)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(42)).Return(existing, nil).Once(),
		repo.On("UpdateDisputed", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)
	publisher.On("Publish", ctx, ports.Notification{
		EventType: ports.NotificationOrderDisputed,
		OrderID:   42,
		UserID:    7,
		Status:    "Delivered",
	}).Return(nil).Once()

	h := commands.NewDisputeOrderCommandHandler(factory, fixedClock{testNow}, publisher)
	require.NoError(t, h.Handle(ctx, cmd))
	require.True(t, existing.Disputed())
	require.Equal(t, order.Delivered, existing.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDisputeOrderCommandHandler_Handle_AlreadyDisputed(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDisputeOrderCommand(42, 7)
	require.NoError(t, err)

	item, err := order.NewItem(1, "Masala Dosa", kernel.NewMoneyFromPaise(4500), 1, "")
	require.NoError(t, err)
	existing, err := order.RestoreOrder(
		42, 7, false, testNow.Add(-time.Hour), order.Delivered, true,
		kernel.NewMoneyFromPaise(4500), "", false, kernel.Date{}, []order.Item{item})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(42)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDisputeOrderCommandHandler(factory, fixedClock{testNow}, new(MockNotificationPublisher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAlreadyDisputed)
}

func TestDisputeOrderCommandHandler_Handle_ForeignOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDisputeOrderCommand(42, 8)
	require.NoError(t, err)

	existing := restoredOrder(t, 42, 7, testNow, order.Pending)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(42)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDisputeOrderCommandHandler(factory, fixedClock{testNow}, new(MockNotificationPublisher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.False(t, existing.Disputed())
}
