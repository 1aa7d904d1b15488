package customer

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
)

var (
	ErrInvalidCustomer   = errors.New("invalid customer")
	ErrInvalidTier       = errors.New("invalid customer tier")
	ErrNegativePoints    = errors.New("loyalty points must not be negative")
	ErrDuplicateCustomer = errors.New("customer already registered")
	ErrNotFound          = errors.New("customer not found")
)

// Tier is fixed when the customer is created.
type Tier int

const (
	TierUnspecified Tier = iota
	TierGeneral
	TierVIP
)

func (t Tier) String() string {
	switch t {
	case TierGeneral:
		return "GENERAL"
	case TierVIP:
		return "VIP"
	default:
		return "UNSPECIFIED"
	}
}

func ParseTier(s string) (Tier, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "GENERAL":
		return TierGeneral, nil
	case "VIP":
		return TierVIP, nil
	default:
		return TierUnspecified, fmt.Errorf("%w: %q", ErrInvalidTier, s)
	}
}

type Customer struct {
	id     string
	name   string
	tier   Tier
	points atomic.Int64
}

func New(id, name string, tier Tier) (*Customer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidCustomer)
	}
	if tier != TierGeneral && tier != TierVIP {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTier, tier)
	}
	return &Customer{id: id, name: name, tier: tier}, nil
}

func (c *Customer) ID() string { return c.id }
func (c *Customer) Name() string { return c.name }
func (c *Customer) Tier() Tier { return c.tier }
func (c *Customer) IsVIP() bool { return c.tier == TierVIP }

func (c *Customer) LoyaltyPoints() int { return int(c.points.Load()) }

// CreditPoints adds n to the balance and returns the new balance. The balance
// never decreases.
func (c *Customer) CreditPoints(n int) (int, error) {
	if n < 0 {
		return c.LoyaltyPoints(), fmt.Errorf("%w: %d", ErrNegativePoints, n)
	}
	return int(c.points.Add(int64(n))), nil
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer[ID=%s, Username='%s', Type=%s, LoyaltyPoints=%d]",
		c.id, c.name, c.tier, c.LoyaltyPoints())
}
