package order_test

import (
	"testing"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{order.Pending, order.Confirmed, order.Delivered, order.Settled, order.Cancelled}
	for _, s := range valid {
		t.Run(s.String(), func(t *testing.T) {
			require.NoError(t, s.Validate())
		})
	}

	t.Run("unknown is invalid", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
	})

	t.Run("out of range is invalid", func(t *testing.T) {
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Confirmed", order.Confirmed.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Settled", order.Settled.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips every valid status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Delivered, order.Settled, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("Shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("is case sensitive", func(t *testing.T) {
		_, err := order.StatusFromString("pending")
		require.Error(t, err)
	})
}

func TestStatus_Advance(t *testing.T) {
	testCases := []struct {
		name    string
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{"pending to confirmed", order.Pending, order.Confirmed, true},
		{"pending to delivered skips a step", order.Pending, order.Delivered, true},
		{"confirmed to delivered", order.Confirmed, order.Delivered, true},
		{"confirmed back to pending", order.Confirmed, order.Pending, false},
		{"delivered back to confirmed", order.Delivered, order.Confirmed, false},
		{"no self transition", order.Confirmed, order.Confirmed, false},
		{"settled is unreachable via advance", order.Delivered, order.Settled, false},
		{"cancelled is unreachable via advance", order.Pending, order.Cancelled, false},
		{"terminal orders cannot advance", order.Settled, order.Delivered, false},
		{"cancelled orders cannot advance", order.Cancelled, order.Confirmed, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := tc.from.Advance(tc.to)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
			} else {
				require.ErrorIs(t, err, errs.ErrInvalidState)
			}
		})
	}
}

func TestStatus_Settle(t *testing.T) {
	t.Run("delivered settles", func(t *testing.T) {
		next, err := order.Delivered.Settle()
		require.NoError(t, err)
		assert.Equal(t, order.Settled, next)
	})

	for _, s := range []order.Status{order.Pending, order.Confirmed, order.Settled, order.Cancelled} {
		t.Run(s.String()+" does not settle", func(t *testing.T) {
			_, err := s.Settle()
			require.ErrorIs(t, err, errs.ErrInvalidState)
		})
	}
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, order.Pending.CanCancel())
	assert.True(t, order.Confirmed.CanCancel())
	assert.False(t, order.Delivered.CanCancel())
	assert.False(t, order.Settled.CanCancel())
	assert.False(t, order.Cancelled.CanCancel())

	assert.True(t, order.Pending.CanDispute())
	assert.True(t, order.Confirmed.CanDispute())
	assert.True(t, order.Delivered.CanDispute())
	assert.False(t, order.Settled.CanDispute())
	assert.False(t, order.Cancelled.CanDispute())

	assert.True(t, order.Settled.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Delivered.IsTerminal())
}
