package queries_test

import (
	"testing"
	"time"

	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBillSummary(t *testing.T) {
	t.Run("splits settled from outstanding", func(t *testing.T) {
		// Three delivered orders: A and B settled, C outstanding.
		orders := []queries.BillOrderRow{
			{OrderID: 1, Settled: true, TotalPaise: 12000},
			{OrderID: 2, Settled: true, TotalPaise: 8000},
			{OrderID: 3, Settled: false, TotalPaise: 4500},
		}

		bill := queries.BuildBillSummary(7, orders, nil)

		assert.Equal(t, int64(7), bill.UserID)
		assert.Equal(t, int64(20000), bill.SettledTotal.Paise())
		assert.Equal(t, int64(4500), bill.OutstandingTotal.Paise())
		assert.Equal(t, int64(24500), bill.GrandTotal.Paise())
		assert.Equal(t, 2, bill.SettledOrders)
		assert.Equal(t, 1, bill.OutstandingOrders)
		assert.Zero(t, bill.DisputedOrders)

		require.Len(t, bill.Orders, 3)
		assert.Equal(t, int64(1), bill.Orders[0].OrderID)
		assert.True(t, bill.Orders[0].Settled)
		assert.False(t, bill.Orders[2].Settled)
		assert.Equal(t, int64(4500), bill.Orders[2].Total.Paise())
	})

	t.Run("merges item lines across orders", func(t *testing.T) {
		orders := []queries.BillOrderRow{
			{OrderID: 1, Settled: false, TotalPaise: 9000},
			{OrderID: 2, Settled: true, TotalPaise: 7000},
		}
		items := []queries.BillItemRow{
			{OrderID: 1, Name: "Masala Dosa", Quantity: 2, AmountPaise: 9000},
			{OrderID: 2, Name: "Masala Dosa", Quantity: 1, AmountPaise: 4500},
			{OrderID: 2, Name: "Chai", ProportionName: "Half", Quantity: 1, AmountPaise: 2500},
		}

		bill := queries.BuildBillSummary(7, orders, items)

		require.Len(t, bill.ItemsBreakdown, 2)
		assert.Equal(t, "Masala Dosa", bill.ItemsBreakdown[0].Name)
		assert.Equal(t, 3, bill.ItemsBreakdown[0].Quantity)
		assert.Equal(t, int64(13500), bill.ItemsBreakdown[0].Amount.Paise())
		assert.Equal(t, "Chai", bill.ItemsBreakdown[1].Name)
		assert.Equal(t, "Half", bill.ItemsBreakdown[1].ProportionName)
	})

	t.Run("same name with different proportions stays separate", func(t *testing.T) {
		orders := []queries.BillOrderRow{{OrderID: 1, Settled: false, TotalPaise: 7000}}
		items := []queries.BillItemRow{
			{OrderID: 1, Name: "Chai", ProportionName: "Full", Quantity: 1, AmountPaise: 4000},
			{OrderID: 1, Name: "Chai", ProportionName: "Half", Quantity: 1, AmountPaise: 3000},
		}

		bill := queries.BuildBillSummary(7, orders, items)
		require.Len(t, bill.ItemsBreakdown, 2)
		assert.Equal(t, "Full", bill.ItemsBreakdown[0].ProportionName)
		assert.Equal(t, "Half", bill.ItemsBreakdown[1].ProportionName)
	})

	t.Run("ignores item rows of non-billable orders", func(t *testing.T) {
		orders := []queries.BillOrderRow{{OrderID: 1, Settled: false, TotalPaise: 4500}}
		items := []queries.BillItemRow{
			{OrderID: 1, Name: "Masala Dosa", Quantity: 1, AmountPaise: 4500},
			{OrderID: 99, Name: "Stale Row", Quantity: 1, AmountPaise: 1000},
		}

		bill := queries.BuildBillSummary(7, orders, items)
		require.Len(t, bill.ItemsBreakdown, 1)
		assert.Equal(t, "Masala Dosa", bill.ItemsBreakdown[0].Name)
	})

	t.Run("counts disputed orders without changing totals", func(t *testing.T) {
		orders := []queries.BillOrderRow{
			{OrderID: 1, Settled: false, Disputed: true, TotalPaise: 4500},
			{OrderID: 2, Settled: true, TotalPaise: 8000},
		}

		bill := queries.BuildBillSummary(7, orders, nil)
		assert.Equal(t, 1, bill.DisputedOrders)
		assert.Equal(t, int64(12500), bill.GrandTotal.Paise())
	})

	t.Run("empty bill has zero totals", func(t *testing.T) {
		bill := queries.BuildBillSummary(7, nil, nil)
		assert.True(t, bill.GrandTotal.IsZero())
		assert.Empty(t, bill.ItemsBreakdown)
		assert.Zero(t, bill.OutstandingOrders+bill.SettledOrders)
	})
}

func TestNewGetBillSummaryQuery(t *testing.T) {
	t.Run("valid user id", func(t *testing.T) {
		query, err := queries.NewGetBillSummaryQuery(7, kernel.Date{}, kernel.Date{})
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, int64(7), query.UserID())
		assert.True(t, query.Start().IsZero())
		assert.True(t, query.End().IsZero())
	})

	t.Run("bounded billing period", func(t *testing.T) {
		query, err := queries.NewGetBillSummaryQuery(7,
			kernel.NewDate(2024, time.January, 1), kernel.NewDate(2024, time.June, 30))
		require.NoError(t, err)
		assert.Equal(t, kernel.NewDate(2024, time.January, 1), query.Start())
		assert.Equal(t, kernel.NewDate(2024, time.June, 30), query.End())
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := queries.NewGetBillSummaryQuery(7,
			kernel.NewDate(2024, time.June, 30), kernel.NewDate(2024, time.January, 1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid user id", func(t *testing.T) {
		_, err := queries.NewGetBillSummaryQuery(0, kernel.Date{}, kernel.Date{})
		require.Error(t, err)
	})

	t.Run("zero value query is not constructed", func(t *testing.T) {
		var query queries.GetBillSummaryQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetBillSummaryQueryIsNotConstructed)
	})
}
