package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	a, err := Parse("45.00")
	require.NoError(t, err)
	assert.Equal(t, "45.00", a.String())

	_, err = Parse("twelve")
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestSettleUsesHalfEven(t *testing.T) {
	cases := []struct {
		in, even, up string
	}{
		{"12.125", "12.12", "12.13"},
		{"12.135", "12.14", "12.14"},
		{"12.145", "12.14", "12.15"},
		{"12.165", "12.16", "12.17"},
		{"59.995", "60.00", "60.00"},
		{"25.225", "25.22", "25.23"},
		{"41.245", "41.24", "41.25"},
		{"10.004", "10.00", "10.00"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			a := MustParse(tc.in)
			assert.Equal(t, tc.even, a.String())
			assert.True(t, a.Settle().Equal(MustParse(tc.even)))
			assert.True(t, a.Round(2, HalfUp).Equal(MustParse(tc.up)))
		})
	}
}

func TestHalfEvenHasLessBiasOverMany(t *testing.T) {
	values := []string{"12.125", "12.135", "12.145", "12.155", "12.165", "12.175", "59.995", "25.225", "33.335", "41.245"}
	exact, even, up := Zero, Zero, Zero
	for _, v := range values {
		a := MustParse(v)
		exact = exact.Add(a)
		even = even.Add(a.Round(2, HalfEven))
		up = up.Add(a.Round(2, HalfUp))
	}
	assert.True(t, exact.Equal(MustParse("232.700")))
	assert.True(t, even.Equal(exact), "half-even sum %s", even.Exact())
	assert.True(t, up.Equal(MustParse("232.75")), "half-up sum %s", up.Exact())
}

func TestRateArithmetic(t *testing.T) {
	base := MustParse("20.00")
	assert.True(t, base.Discount(MustRate("0.10")).Equal(MustParse("18")))
	assert.True(t, base.Surcharge(MustRate("0.05")).Equal(MustParse("21")))
	assert.True(t, MustParse("18.00").Discount(MustRate("0.15")).Equal(MustParse("15.3")))
	assert.Equal(t, "15%", MustRate("0.15").Percent())
	assert.Equal(t, "10%", MustRate("0.10").Percent())
}

func TestMulIntAndCompare(t *testing.T) {
	a := MustParse("33.3").MulInt(3)
	assert.Equal(t, "99.90", a.String())
	assert.Equal(t, 1, a.Cmp(MustParse("99.89")))
	assert.Equal(t, 0, a.Cmp(MustParse("99.900")))
	assert.True(t, Zero.IsZero())
	assert.True(t, MustParse("-0.01").IsNegative())
}

func TestFloorDiv(t *testing.T) {
	assert.EqualValues(t, 1, MustParse("18.00").FloorDiv(10))
	assert.EqualValues(t, 0, MustParse("9.99").FloorDiv(10))
	assert.EqualValues(t, 4, MustParse("49.999999").FloorDiv(10))
	assert.EqualValues(t, 5, MustParse("50").FloorDiv(10))
	assert.EqualValues(t, -1, MustParse("-0.5").FloorDiv(10))
	assert.Panics(t, func() { Zero.FloorDiv(0) })
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Total Amount `json:"total"`
	}{MustParse("15.300")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":"15.3"}`, string(b))

	var out struct {
		Total Amount `json:"total"`
	}
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "15.30", out.Total.String())
}
