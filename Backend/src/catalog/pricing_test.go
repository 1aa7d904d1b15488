package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahinestrog/bookstore-console/Backend/src/money"
)

func mustBook(t *testing.T, kind Kind, id, price string) *Book {
	t.Helper()
	b, err := New(kind, id, "Title "+id, "Author", price)
	require.NoError(t, err)
	return b
}

func TestAdjustedPrice(t *testing.T) {
	cases := []struct {
		kind  Kind
		base  string
		exact string
		shown string
	}{
		{KindPhysical, "20.00", "20", "20.00"},
		{KindEBook, "20.00", "18", "18.00"},
		{KindAudioBook, "20.00", "21", "21.00"},
		{KindEBook, "32.99", "29.691", "29.69"},
		{KindAudioBook, "29.95", "31.4475", "31.45"},
		{KindAudioBook, "22.50", "23.625", "23.62"},
		{KindEBook, "0", "0", "0.00"},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String()+"/"+tc.base, func(t *testing.T) {
			b := mustBook(t, tc.kind, "x", tc.base)
			got := AdjustedPrice(b)
			assert.True(t, got.Equal(money.MustParse(tc.exact)), "got %s", got.Exact())
			assert.Equal(t, tc.shown, got.String())
			assert.True(t, b.AdjustedPrice().Equal(got))
		})
	}
}

func TestAdjustedPriceUnknownKindPanics(t *testing.T) {
	b := &Book{id: "bad", kind: KindUnspecified}
	assert.Panics(t, func() { AdjustedPrice(b) })
}

func TestBestByCategoryOnePerKind(t *testing.T) {
	p := mustBook(t, KindPhysical, "p", "20.00")
	e := mustBook(t, KindEBook, "e", "20.00")
	a := mustBook(t, KindAudioBook, "a", "20.00")

	best := BestByCategory([]*Book{p, e, a})
	require.Len(t, best, 3)
	assert.Same(t, p, best[KindPhysical])
	assert.Same(t, e, best[KindEBook])
	assert.Same(t, a, best[KindAudioBook])
}

func TestBestByCategoryPicksHighestAdjusted(t *testing.T) {
	cheap := mustBook(t, KindEBook, "cheap", "30.00")
	dear := mustBook(t, KindEBook, "dear", "55.00")
	audio := mustBook(t, KindAudioBook, "audio", "22.00")

	best := BestByCategory([]*Book{cheap, audio, dear})
	require.Len(t, best, 2)
	assert.Same(t, dear, best[KindEBook])
	assert.Same(t, audio, best[KindAudioBook])
	_, ok := best[KindPhysical]
	assert.False(t, ok)
}

func TestBestByCategoryFirstWinsOnTie(t *testing.T) {
	first := mustBook(t, KindPhysical, "first", "40.00")
	second := mustBook(t, KindPhysical, "second", "40.0")
	books := []*Book{first, second}

	assert.Same(t, first, BestByCategory(books)[KindPhysical])
	assert.Same(t, first, BestByCategory(books)[KindPhysical])
}

func TestBestByCategoryEmpty(t *testing.T) {
	best := BestByCategory(nil)
	assert.NotNil(t, best)
	assert.Empty(t, best)
}
