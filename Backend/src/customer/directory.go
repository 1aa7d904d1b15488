package customer

import "fmt"

// Directory keeps the known customers in registration order.
type Directory struct {
	order []*Customer
	byID  map[string]*Customer
}

func NewDirectory() *Directory {
	return &Directory{byID: make(map[string]*Customer)}
}

func (d *Directory) Add(c *Customer) error {
	if _, ok := d.byID[c.ID()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCustomer, c.ID())
	}
	d.byID[c.ID()] = c
	d.order = append(d.order, c)
	return nil
}

func (d *Directory) Get(id string) (*Customer, error) {
	c, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c, nil
}

// At returns the i-th customer, zero based.
func (d *Directory) At(i int) (*Customer, error) {
	if i < 0 || i >= len(d.order) {
		return nil, fmt.Errorf("%w: index %d", ErrNotFound, i)
	}
	return d.order[i], nil
}

func (d *Directory) All() []*Customer {
	out := make([]*Customer, len(d.order))
	copy(out, d.order)
	return out
}

func (d *Directory) Len() int { return len(d.order) }
