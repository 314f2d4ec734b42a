package http

import (
	"testing"
	"time"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBulkCancelResponse(t *testing.T) {
	report := commands.BulkCancelReport{
		CancelledIDs: []int64{11, 12},
		Failed: []commands.BulkCancelFailure{
			{OrderID: 13, Reason: "order is not eligible for cancellation"},
		},
	}

	response := toBulkCancelResponse(report)

	assert.Equal(t, 2, response.Cancelled)
	assert.Equal(t, []int64{11, 12}, response.CancelledIDs)
	require.Len(t, response.Failed, 1)
	assert.Equal(t, int64(13), response.Failed[0].OrderID)
}

func TestToBillSummaryResponse(t *testing.T) {
	bill := queries.GetBillSummaryQueryResponse{
		UserID:            7,
		OutstandingTotal:  kernel.NewMoneyFromPaise(4500),
		SettledTotal:      kernel.NewMoneyFromPaise(20000),
		GrandTotal:        kernel.NewMoneyFromPaise(24500),
		OutstandingOrders: 1,
		SettledOrders:     1,
		DisputedOrders:    1,
		Orders: []queries.BillOrderLine{
			{
				OrderID: 1, Settled: true,
				Total:     kernel.NewMoneyFromPaise(20000),
				CreatedAt: kernel.NewDate(2024, time.June, 3),
			},
			{
				OrderID: 3, Disputed: true,
				Total:     kernel.NewMoneyFromPaise(4500),
				CreatedAt: kernel.NewDate(2024, time.June, 5),
			},
		},
	}
	start := kernel.NewDate(2024, time.June, 1)

	response := toBillSummaryResponse(bill, start, kernel.Date{})

	assert.Equal(t, 2, response.TotalOrders)
	require.NotNil(t, response.StartDate)
	assert.Equal(t, start, *response.StartDate)
	assert.Nil(t, response.EndDate)
	require.Len(t, response.Orders, 2)
	assert.Equal(t, int64(1), response.Orders[0].ID)
	assert.True(t, response.Orders[0].Settled)
	assert.True(t, response.Orders[1].Disputed)
	assert.Equal(t, kernel.NewDate(2024, time.June, 5), response.Orders[1].CreatedAt)
}
