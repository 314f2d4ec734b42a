package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"canteen/internal/pkg/errs"
)

// Money is a currency amount held in integer minor units (paise).
// All arithmetic stays in integers so repeated aggregation of the same data
// is bit-for-bit reproducible; the two-decimal representation exists only at
// the formatting boundary.
//
// Money is a value object: the zero value is a valid zero amount.
type Money struct {
	paise int64
}

// NewMoneyFromPaise creates a Money amount from integer minor units.
func NewMoneyFromPaise(paise int64) Money {
	return Money{paise: paise}
}

// ParseMoney parses a decimal amount such as "45.50" or "45" into Money.
// At most two fractional digits are accepted; anything else is a
// ValueIsInvalidError.
func ParseMoney(value string) (Money, error) {
	whole, frac, _ := strings.Cut(strings.TrimSpace(value), ".")

	negative := strings.HasPrefix(whole, "-")
	whole = strings.TrimPrefix(whole, "-")

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	var cents int64
	if frac != "" {
		if len(frac) > 2 {
			return Money{}, errs.NewValueIsInvalidErrorWithCause(
				"amount", fmt.Errorf("%q has more than two fractional digits", value))
		}
		// "5" means fifty paise, not five.
		for len(frac) < 2 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
		}
	}

	paise := units*100 + cents
	if negative {
		paise = -paise
	}
	return Money{paise: paise}, nil
}

// Paise returns the amount in integer minor units.
func (m Money) Paise() int64 {
	return m.paise
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{paise: m.paise + other.paise}
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{paise: m.paise * int64(quantity)}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.paise < 0
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.paise == 0
}

// String formats the amount with exactly two decimal places.
func (m Money) String() string {
	paise := m.paise
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}
	return fmt.Sprintf("%s%d.%02d", sign, paise/100, paise%100)
}

// MarshalJSON emits the amount as a plain JSON number with two decimal
// places, e.g. 350.00. Formatting goes through String, never through
// floating point.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}
