package catalog

import (
	"fmt"

	"github.com/ahinestrog/bookstore-console/Backend/src/money"
)

var (
	EBookDiscountRate = money.MustRate("0.10")
	AudioBookFeeRate  = money.MustRate("0.05")
)

// AdjustedPrice applies the kind-specific rule to the base price. The result
// is exact; callers settle it when displaying.
func AdjustedPrice(b *Book) money.Amount {
	switch b.kind {
	case KindPhysical:
		return b.basePrice
	case KindEBook:
		return b.basePrice.Discount(EBookDiscountRate)
	case KindAudioBook:
		return b.basePrice.Surcharge(AudioBookFeeRate)
	default:
		// constructors reject any other kind
		panic(fmt.Sprintf("catalog: book %q has unknown kind %d", b.id, b.kind))
	}
}

// BestByCategory returns, per kind present in books, the book with the highest
// adjusted price. On ties the first one seen is kept.
func BestByCategory(books []*Book) map[Kind]*Book {
	best := make(map[Kind]*Book)
	for _, b := range books {
		cur, ok := best[b.kind]
		if !ok || AdjustedPrice(b).Cmp(AdjustedPrice(cur)) > 0 {
			best[b.kind] = b
		}
	}
	return best
}
