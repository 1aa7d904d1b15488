package customer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, err := New("C001", "Alice Wonderland", TierVIP)
	require.NoError(t, err)
	assert.True(t, c.IsVIP())
	assert.Equal(t, 0, c.LoyaltyPoints())
	assert.Equal(t, "Customer[ID=C001, Username='Alice Wonderland', Type=VIP, LoyaltyPoints=0]", c.String())

	g, err := New("C002", "Bob The Builder", TierGeneral)
	require.NoError(t, err)
	assert.False(t, g.IsVIP())
	assert.Equal(t, TierGeneral, g.Tier())

	_, err = New("", "x", TierGeneral)
	assert.ErrorIs(t, err, ErrInvalidCustomer)
	_, err = New("C3", "x", TierUnspecified)
	assert.ErrorIs(t, err, ErrInvalidTier)
}

func TestCreditPoints(t *testing.T) {
	c, err := New("C001", "Alice", TierVIP)
	require.NoError(t, err)

	bal, err := c.CreditPoints(2)
	require.NoError(t, err)
	assert.Equal(t, 2, bal)
	bal, err = c.CreditPoints(0)
	require.NoError(t, err)
	assert.Equal(t, 2, bal)

	bal, err = c.CreditPoints(-1)
	assert.ErrorIs(t, err, ErrNegativePoints)
	assert.Equal(t, 2, bal)
	assert.Equal(t, 2, c.LoyaltyPoints())
}

func TestCreditPointsConcurrent(t *testing.T) {
	c, err := New("C001", "Alice", TierGeneral)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.CreditPoints(3)
		}()
	}
	wg.Wait()
	assert.Equal(t, 150, c.LoyaltyPoints())
}

func TestParseTier(t *testing.T) {
	tier, err := ParseTier("vip")
	require.NoError(t, err)
	assert.Equal(t, TierVIP, tier)
	tier, err = ParseTier(" General ")
	require.NoError(t, err)
	assert.Equal(t, TierGeneral, tier)
	_, err = ParseTier("gold")
	assert.ErrorIs(t, err, ErrInvalidTier)
}

func TestDirectory(t *testing.T) {
	d := NewDirectory()
	alice, _ := New("C001", "Alice", TierVIP)
	bob, _ := New("C002", "Bob", TierGeneral)
	require.NoError(t, d.Add(alice))
	require.NoError(t, d.Add(bob))
	assert.ErrorIs(t, d.Add(alice), ErrDuplicateCustomer)

	assert.Equal(t, 2, d.Len())
	got, err := d.Get("C002")
	require.NoError(t, err)
	assert.Same(t, bob, got)
	_, err = d.Get("C404")
	assert.ErrorIs(t, err, ErrNotFound)

	first, err := d.At(0)
	require.NoError(t, err)
	assert.Same(t, alice, first)
	_, err = d.At(2)
	assert.ErrorIs(t, err, ErrNotFound)

	all := d.All()
	all[0] = nil
	assert.Same(t, alice, d.All()[0])
}
