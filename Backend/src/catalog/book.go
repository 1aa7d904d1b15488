package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ahinestrog/bookstore-console/Backend/src/money"
)

var (
	ErrInvalidPrice = errors.New("invalid base price")
	ErrInvalidBook  = errors.New("invalid book")
	ErrUnknownKind  = errors.New("unknown book kind")
)

// Kind is the category tag of a book. It decides the price adjustment rule.
type Kind int

const (
	KindUnspecified Kind = iota
	KindPhysical
	KindEBook
	KindAudioBook
)

// Kinds lists every sellable kind in display order.
var Kinds = []Kind{KindPhysical, KindEBook, KindAudioBook}

func (k Kind) String() string {
	switch k {
	case KindPhysical:
		return "PhysicalBook"
	case KindEBook:
		return "EBook"
	case KindAudioBook:
		return "AudioBook"
	default:
		return "Unspecified"
	}
}

// ParseKind accepts the names produced by String.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return KindUnspecified, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// PrintDetails describes a physical edition. Zero values mean unknown.
type PrintDetails struct {
	Pages       int
	Cover       string
	PublishYear int
}

// Book is a sellable catalog item. It is never mutated after construction.
type Book struct {
	id        string
	title     string
	author    string
	basePrice money.Amount
	kind      Kind
	print     PrintDetails
}

func (b *Book) ID() string { return b.id }
func (b *Book) Title() string { return b.title }
func (b *Book) Author() string { return b.author }
func (b *Book) BasePrice() money.Amount { return b.basePrice }
func (b *Book) Kind() Kind { return b.kind }
func (b *Book) Print() PrintDetails { return b.print }

// AdjustedPrice is shorthand for the package-level AdjustedPrice.
func (b *Book) AdjustedPrice() money.Amount { return AdjustedPrice(b) }

// New builds a book of the given kind. basePrice must be a non-negative
// decimal literal.
func New(kind Kind, id, title, author, basePrice string) (*Book, error) {
	price, err := money.Parse(basePrice)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}
	return newBook(kind, id, title, author, price, PrintDetails{})
}

func NewPhysicalBook(id, title, author, basePrice string) (*Book, error) {
	return New(KindPhysical, id, title, author, basePrice)
}

// NewPhysicalEdition is NewPhysicalBook with print details attached.
func NewPhysicalEdition(id, title, author, basePrice string, print PrintDetails) (*Book, error) {
	price, err := money.Parse(basePrice)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}
	return newBook(KindPhysical, id, title, author, price, print)
}

func NewEBook(id, title, author, basePrice string) (*Book, error) {
	return New(KindEBook, id, title, author, basePrice)
}

func NewAudioBook(id, title, author, basePrice string) (*Book, error) {
	return New(KindAudioBook, id, title, author, basePrice)
}

func newBook(kind Kind, id, title, author string, price money.Amount, print PrintDetails) (*Book, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidBook)
	}
	switch kind {
	case KindPhysical, KindEBook, KindAudioBook:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: %s is negative", ErrInvalidPrice, price.Exact())
	}
	return &Book{
		id:        id,
		title:     title,
		author:    author,
		basePrice: price,
		kind:      kind,
		print:     print,
	}, nil
}
