package cart

import (
	"errors"
	"fmt"

	"github.com/ahinestrog/bookstore-console/Backend/src/catalog"
	"github.com/ahinestrog/bookstore-console/Backend/src/money"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrNilBook         = errors.New("book is required")
)

// Line is one book at a quantity. Lines are values; copying a slice of them
// copies the cart contents.
type Line struct {
	Book     *catalog.Book
	Quantity int
}

// UnitPrice is the adjusted price of one copy, before any customer discount.
func (l Line) UnitPrice() money.Amount { return catalog.AdjustedPrice(l.Book) }

// Total is UnitPrice times Quantity.
func (l Line) Total() money.Amount { return l.UnitPrice().MulInt(l.Quantity) }

// Cart holds the lines of the active customer. Adding the same book twice
// yields two lines.
type Cart struct {
	lines []Line
}

func New() *Cart { return &Cart{} }

func (c *Cart) AddLine(book *catalog.Book, quantity int) error {
	if book == nil {
		return ErrNilBook
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	c.lines = append(c.lines, Line{Book: book, Quantity: quantity})
	return nil
}

func (c *Cart) Clear() { c.lines = nil }

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int { return len(c.lines) }
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Subtotal sums the line totals without any tier discount.
func (c *Cart) Subtotal() money.Amount {
	total := money.Zero
	for _, l := range c.lines {
		total = total.Add(l.Total())
	}
	return total
}
