package commands_test

import (
	"testing"
	"time"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredScheduledOrder(t *testing.T, id int64, userID int64, day kernel.Date, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem(1, "Masala Dosa", kernel.NewMoneyFromPaise(4500), 1, "")
	require.NoError(t, err)
	o, err := order.RestoreOrder(
		id, userID, false, testNow.Add(-72*time.Hour), status, false,
		kernel.NewMoneyFromPaise(4500), "", true, day, []order.Item{item})
	require.NoError(t, err)
	return o
}

func TestBulkCancelScheduledOrdersCommandHandler_Handle_PartialReport(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewBulkCancelScheduledOrdersCommand(7, []int64{41, 42, 43})
	require.NoError(t, err)

	future := kernel.NewDate(2024, time.June, 10)

	cancellable := restoredScheduledOrder(t, 41, 7, future, order.Pending)
	confirmed := restoredScheduledOrder(t, 42, 7, future, order.Confirmed)
	foreign := restoredScheduledOrder(t, 43, 8, future, order.Pending)

	repoA := new(MockOrderRepository)
	uowA := new(MockOrderUoW)
	mock.InOrder(
		uowA.On("Begin", ctx).Return(nil).Once(),
		uowA.On("OrderRepository").Return(repoA).Once(),
		repoA.On("Get", ctx, int64(41)).Return(cancellable, nil).Once(),
		repoA.On("UpdateStatus", ctx, cancellable, order.Pending).Return(nil).Once(),
		uowA.On("Commit", ctx).Return(nil).Once(),
		uowA.On("Rollback", ctx).Return(nil).Once(),
	)

	repoB := new(MockOrderRepository)
	uowB := new(MockOrderUoW)
	mock.InOrder(
		uowB.On("Begin", ctx).Return(nil).Once(),
		uowB.On("OrderRepository").Return(repoB).Once(),
		repoB.On("Get", ctx, int64(42)).Return(confirmed, nil).Once(),
		uowB.On("Rollback", ctx).Return(nil).Once(),
	)

	repoC := new(MockOrderRepository)
	uowC := new(MockOrderUoW)
	mock.InOrder(
		uowC.On("Begin", ctx).Return(nil).Once(),
		uowC.On("OrderRepository").Return(repoC).Once(),
		repoC.On("Get", ctx, int64(43)).Return(foreign, nil).Once(),
		uowC.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uowA).Once(),
		factory.On("Create").Return(uowB).Once(),
		factory.On("Create").Return(uowC).Once(),
	)

	h := commands.NewBulkCancelScheduledOrdersCommandHandler(factory, fixedClock{testNow})
	report, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, []int64{41}, report.CancelledIDs)
	require.Len(t, report.Failed, 2)
	require.Equal(t, int64(42), report.Failed[0].OrderID)
	require.Equal(t, int64(43), report.Failed[1].OrderID)
	require.Equal(t, order.Cancelled, cancellable.Status())
	require.Equal(t, order.Confirmed, confirmed.Status())
	require.Equal(t, order.Pending, foreign.Status())
}

func TestBulkCancelScheduledOrdersCommandHandler_Handle_SameDayIneligible(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewBulkCancelScheduledOrdersCommand(7, []int64{41})
	require.NoError(t, err)

	today := kernel.DateOf(testNow)
	sameDay := restoredScheduledOrder(t, 41, 7, today, order.Pending)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(41)).Return(sameDay, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBulkCancelScheduledOrdersCommandHandler(factory, fixedClock{testNow})
	report, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Empty(t, report.CancelledIDs)
	require.Len(t, report.Failed, 1)
	require.Equal(t, order.Pending, sameDay.Status())
}

func TestBulkCancelScheduledOrdersCommand_RequiresIDs(t *testing.T) {
	_, err := commands.NewBulkCancelScheduledOrdersCommand(7, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
