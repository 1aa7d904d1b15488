// Package store ties the catalog, customers, cart and pricing together for
// one interactive session. It replaces process-wide globals: the caller
// creates one Store at startup and passes it around.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ahinestrog/bookstore-console/Backend/src/cart"
	"github.com/ahinestrog/bookstore-console/Backend/src/catalog"
	"github.com/ahinestrog/bookstore-console/Backend/src/customer"
	"github.com/ahinestrog/bookstore-console/Backend/src/order"
)

var (
	ErrNoCustomer = errors.New("no customer selected")
	ErrEmptyCart  = errors.New("shopping cart is empty")
)

type Store struct {
	catalog   *catalog.Service
	customers *customer.Directory
	events    order.Publisher
	log       zerolog.Logger

	current *customer.Customer
	cart    *cart.Cart
}

func New(cat *catalog.Service, customers *customer.Directory, events order.Publisher, log zerolog.Logger) *Store {
	return &Store{
		catalog:   cat,
		customers: customers,
		events:    events,
		log:       log,
		cart:      cart.New(),
	}
}

func (s *Store) Catalog() *catalog.Service { return s.catalog }
func (s *Store) Customers() *customer.Directory { return s.customers }
func (s *Store) Current() *customer.Customer { return s.current }
func (s *Store) Cart() *cart.Cart { return s.cart }

// SelectCustomer makes id the active customer and empties the cart.
func (s *Store) SelectCustomer(id string) (*customer.Customer, error) {
	c, err := s.customers.Get(id)
	if err != nil {
		return nil, err
	}
	s.current = c
	s.cart.Clear()
	s.log.Debug().Str("customer", c.ID()).Str("tier", c.Tier().String()).Msg("customer selected")
	return c, nil
}

// AddToCart puts qty copies of the catalog book bookID in the cart.
func (s *Store) AddToCart(ctx context.Context, bookID string, qty int) (*catalog.Book, error) {
	if s.current == nil {
		return nil, ErrNoCustomer
	}
	b, err := s.catalog.Get(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if err := s.cart.AddLine(b, qty); err != nil {
		return nil, err
	}
	s.log.Debug().Str("book", b.ID()).Int("qty", qty).Msg("added to cart")
	return b, nil
}

// Receipt is what a completed checkout hands back to the caller.
type Receipt struct {
	Order        *order.Order
	PointsEarned int
	Balance      int
}

// Checkout prices the cart for the active customer, credits loyalty points
// once and empties the cart. Event delivery failures are logged only.
func (s *Store) Checkout(ctx context.Context) (*Receipt, error) {
	if s.current == nil {
		return nil, ErrNoCustomer
	}
	if s.cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	o := order.Create(s.current, s.cart.Lines())
	points := order.LoyaltyPointsEarned(o)
	balance := s.current.LoyaltyPoints()
	if points > 0 {
		var err error
		if balance, err = s.current.CreditPoints(points); err != nil {
			return nil, fmt.Errorf("credit points: %w", err)
		}
	}

	s.log.Info().
		Str("order", o.ID()).
		Str("customer", s.current.ID()).
		Str("total", o.GrandTotal().String()).
		Str("vip_discount", o.VIPDiscountApplied().String()).
		Int("points", points).
		Msg("order placed")

	s.publish(ctx, order.RKOrderCreated, order.NewOrderCreated(o))
	if points > 0 {
		s.publish(ctx, order.RKPointsCredited, order.PointsCreditedPayload{
			OrderID:    o.ID(),
			CustomerID: s.current.ID(),
			Points:     points,
			Balance:    balance,
		})
	}

	s.cart.Clear()
	return &Receipt{Order: o, PointsEarned: points, Balance: balance}, nil
}

// Recommend returns the priciest book of each kind. It reads the catalog
// only.
func (s *Store) Recommend(ctx context.Context) (map[catalog.Kind]*catalog.Book, error) {
	return s.catalog.Recommend(ctx)
}

func (s *Store) publish(ctx context.Context, key string, v any) {
	if err := order.PublishJSON(ctx, s.events, key, v); err != nil {
		s.log.Warn().Err(err).Str("rk", key).Msg("publish failed")
	}
}
