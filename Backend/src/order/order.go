package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/ahinestrog/bookstore-console/Backend/src/cart"
	"github.com/ahinestrog/bookstore-console/Backend/src/customer"
	"github.com/ahinestrog/bookstore-console/Backend/src/money"
)

// VIPDiscountRate is taken off every unit for VIP customers, after the
// kind adjustment.
var VIPDiscountRate = money.MustRate("0.15")

const (
	// PointsSpendUnit is the amount spent per base loyalty point.
	PointsSpendUnit = 10
	// VIPPointsMultiplier scales the base points of VIP customers.
	VIPPointsMultiplier = 2
)

// Order is a priced snapshot taken at checkout. It is not modified after Create.
type Order struct {
	id          string
	customer    *customer.Customer
	lines       []cart.Line
	grandTotal  money.Amount
	vipDiscount money.Amount
	createdAt   time.Time
}

// Create prices lines for c. The lines are copied, so later cart changes do
// not reach the order. An empty line set gives a zero total.
//
// Totals are accumulated at full precision; rounding happens only when a
// figure is reported.
func Create(c *customer.Customer, lines []cart.Line) *Order {
	o := &Order{
		id:          uuid.NewString()[:8],
		customer:    c,
		lines:       make([]cart.Line, len(lines)),
		grandTotal:  money.Zero,
		vipDiscount: money.Zero,
		createdAt:   time.Now(),
	}
	copy(o.lines, lines)

	for _, l := range o.lines {
		unit := l.UnitPrice()
		before := unit.MulInt(l.Quantity)
		if c.IsVIP() {
			after := unit.Discount(VIPDiscountRate).MulInt(l.Quantity)
			o.vipDiscount = o.vipDiscount.Add(before.Sub(after))
			o.grandTotal = o.grandTotal.Add(after)
		} else {
			o.grandTotal = o.grandTotal.Add(before)
		}
	}
	return o
}

func (o *Order) ID() string { return o.id }
func (o *Order) Customer() *customer.Customer { return o.customer }
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Lines returns a copy of the priced lines.
func (o *Order) Lines() []cart.Line {
	out := make([]cart.Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// GrandTotal is the payable amount rounded to cents.
func (o *Order) GrandTotal() money.Amount { return o.grandTotal.Settle() }

// VIPDiscountApplied is the total tier discount rounded to cents. Zero for
// general customers.
func (o *Order) VIPDiscountApplied() money.Amount { return o.vipDiscount.Settle() }

// ExactGrandTotal is the unrounded grand total.
func (o *Order) ExactGrandTotal() money.Amount { return o.grandTotal }

// ExactVIPDiscount is the unrounded tier discount.
func (o *Order) ExactVIPDiscount() money.Amount { return o.vipDiscount }

// LoyaltyPointsEarned computes the points for o without crediting them:
// one point per full PointsSpendUnit of the unrounded grand total, doubled
// for VIP customers.
func LoyaltyPointsEarned(o *Order) int {
	base := int(o.grandTotal.FloorDiv(PointsSpendUnit))
	if o.customer.IsVIP() {
		return base * VIPPointsMultiplier
	}
	return base
}

// LineSummary is the per-line breakdown shown on a receipt.
type LineSummary struct {
	BookID    string
	Title     string
	Kind      string
	Quantity  int
	UnitPrice money.Amount // after kind adjustment
	FinalUnit money.Amount // after the VIP discount, equal to UnitPrice otherwise
	LineTotal money.Amount // FinalUnit × Quantity, unrounded
}

func (o *Order) Summary() []LineSummary {
	out := make([]LineSummary, 0, len(o.lines))
	for _, l := range o.lines {
		unit := l.UnitPrice()
		final := unit
		if o.customer.IsVIP() {
			final = unit.Discount(VIPDiscountRate)
		}
		out = append(out, LineSummary{
			BookID:    l.Book.ID(),
			Title:     l.Book.Title(),
			Kind:      l.Book.Kind().String(),
			Quantity:  l.Quantity,
			UnitPrice: unit,
			FinalUnit: final,
			LineTotal: final.MulInt(l.Quantity),
		})
	}
	return out
}
