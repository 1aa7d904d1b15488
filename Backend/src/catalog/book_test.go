package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	p, err := NewPhysicalBook("978-0321765723", "Effective Java", "Joshua Bloch", "45.00")
	require.NoError(t, err)
	assert.Equal(t, KindPhysical, p.Kind())
	assert.Equal(t, "Effective Java", p.Title())
	assert.Equal(t, "Joshua Bloch", p.Author())
	assert.Equal(t, "45.00", p.BasePrice().String())

	e, err := NewEBook("978-0134685991", "Clean Code", "Robert C. Martin", "30.00")
	require.NoError(t, err)
	assert.Equal(t, KindEBook, e.Kind())

	a, err := NewAudioBook("978-0132350884", "The Mythical Man-Month", "Frederick P. Brooks Jr.", "22.00")
	require.NoError(t, err)
	assert.Equal(t, KindAudioBook, a.Kind())
	assert.Equal(t, "978-0132350884", a.ID())
}

func TestPhysicalEdition(t *testing.T) {
	b, err := NewPhysicalEdition("978-0684832722", "The Sovereign Individual", "James Dale Davidson", "59.99",
		PrintDetails{Pages: 448, Cover: "Hardcover", PublishYear: 1997})
	require.NoError(t, err)
	assert.Equal(t, 448, b.Print().Pages)
	assert.Equal(t, "Hardcover", b.Print().Cover)
	assert.Equal(t, "59.99", b.AdjustedPrice().String())
}

func TestConstructorRejectsBadInput(t *testing.T) {
	_, err := NewEBook("x", "t", "a", "-0.01")
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewAudioBook("x", "t", "a", "cheap")
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewPhysicalEdition("x", "t", "a", "-1", PrintDetails{})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewPhysicalBook(" ", "t", "a", "1.00")
	assert.ErrorIs(t, err, ErrInvalidBook)

	_, err = New(KindUnspecified, "x", "t", "a", "1.00")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := ParseKind("ebook")
	require.NoError(t, err)
	assert.Equal(t, KindEBook, got)

	_, err = ParseKind("Scroll")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
