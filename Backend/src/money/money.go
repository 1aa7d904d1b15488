// Package money holds the exact decimal arithmetic used for every price,
// discount and total in the bookstore. Values never pass through float64.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a literal cannot be parsed as an exact decimal.
var ErrInvalidAmount = errors.New("invalid decimal amount")

// RoundingMode selects how a value exactly halfway between two candidates is rounded.
type RoundingMode int

const (
	HalfEven RoundingMode = iota
	HalfUp
)

func (m RoundingMode) String() string {
	switch m {
	case HalfEven:
		return "HALF_EVEN"
	case HalfUp:
		return "HALF_UP"
	default:
		return "UNSPECIFIED"
	}
}

// SettlementRounding is applied to every displayed or settled amount.
const SettlementRounding = HalfEven

// SettlementPlaces is the number of decimal places of a settled amount.
const SettlementPlaces = 2

// Amount is an exact base-10 monetary value.
type Amount struct {
	d decimal.Decimal
}

// Zero is the zero amount.
var Zero = Amount{d: decimal.Zero}

// Parse reads a decimal literal such as "45.00".
func Parse(literal string) (Amount, error) {
	d, err := decimal.NewFromString(literal)
	if err != nil {
		return Zero, fmt.Errorf("%w %q: %v", ErrInvalidAmount, literal, err)
	}
	return Amount{d: d}, nil
}

// MustParse is Parse for compile-time literals; it panics on bad input.
func MustParse(literal string) Amount {
	a, err := Parse(literal)
	if err != nil {
		panic(err)
	}
	return a
}

func FromInt(n int64) Amount { return Amount{d: decimal.NewFromInt(n)} }

func (a Amount) Add(b Amount) Amount { return Amount{d: a.d.Add(b.d)} }
func (a Amount) Sub(b Amount) Amount { return Amount{d: a.d.Sub(b.d)} }

// MulInt multiplies by a quantity.
func (a Amount) MulInt(q int) Amount { return Amount{d: a.d.Mul(decimal.NewFromInt(int64(q)))} }

// Mul multiplies by a rate.
func (a Amount) Mul(r Rate) Amount { return Amount{d: a.d.Mul(r.d)} }

// Discount returns a × (1 − r).
func (a Amount) Discount(r Rate) Amount { return a.Sub(a.Mul(r)) }

// Surcharge returns a × (1 + r).
func (a Amount) Surcharge(r Rate) Amount { return a.Add(a.Mul(r)) }

func (a Amount) Cmp(b Amount) int { return a.d.Cmp(b.d) }
func (a Amount) Equal(b Amount) bool { return a.d.Equal(b.d) }
func (a Amount) IsZero() bool { return a.d.IsZero() }
func (a Amount) IsNegative() bool { return a.d.IsNegative() }
func (a Amount) Decimal() decimal.Decimal { return a.d }

// Round rounds to the given number of decimal places using mode.
func (a Amount) Round(places int32, mode RoundingMode) Amount {
	switch mode {
	case HalfEven:
		return Amount{d: a.d.RoundBank(places)}
	case HalfUp:
		return Amount{d: a.d.Round(places)}
	default:
		panic(fmt.Sprintf("money: unknown rounding mode %d", mode))
	}
}

// Settle rounds to cents with SettlementRounding.
func (a Amount) Settle() Amount { return a.Round(SettlementPlaces, SettlementRounding) }

// FloorDiv returns the integer quotient a / n rounded down. n must be positive.
func (a Amount) FloorDiv(n int64) int64 {
	if n <= 0 {
		panic("money: FloorDiv by non-positive divisor")
	}
	q, r := a.d.QuoRem(decimal.NewFromInt(n), 0)
	if r.IsNegative() {
		q = q.Sub(decimal.NewFromInt(1))
	}
	return q.IntPart()
}

// String renders the settled amount with exactly two decimals.
func (a Amount) String() string { return a.Settle().d.StringFixed(SettlementPlaces) }

// Exact renders the unrounded value.
func (a Amount) Exact() string { return a.d.String() }

func (a Amount) MarshalJSON() ([]byte, error) { return a.d.MarshalJSON() }

func (a *Amount) UnmarshalJSON(b []byte) error { return a.d.UnmarshalJSON(b) }

// Rate is an exact multiplier such as 0.15 for fifteen percent.
type Rate struct {
	d decimal.Decimal
}

// MustRate parses a rate literal and panics on bad input.
func MustRate(literal string) Rate {
	d, err := decimal.NewFromString(literal)
	if err != nil {
		panic(fmt.Sprintf("money: bad rate %q: %v", literal, err))
	}
	return Rate{d: d}
}

func (r Rate) String() string { return r.d.String() }

// Percent renders the rate as a whole-number percentage, e.g. "15%".
func (r Rate) Percent() string { return r.d.Shift(2).String() + "%" }
