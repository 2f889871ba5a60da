package pricing

// Quote aggregates the derived monetary fields of a product record.
type Quote struct {
	Price          float64
	DiscountAmount float64
	TotalAmount    float64
}

// Compute derives price, discount amount, and total from the unit rate,
// quantity, and discount percentage. Pure and deterministic; no rounding is
// applied, display rounding is a presentation concern.
func Compute(rate float64, quantity int, discountPercent int) Quote {
	price := rate * float64(quantity)
	discount := price * float64(discountPercent) / 100
	return Quote{
		Price:          price,
		DiscountAmount: discount,
		TotalAmount:    price - discount,
	}
}

// QuoteFor is the common path: normalize the category, look up its discount,
// and compute the derived fields in one step.
func QuoteFor(category string, rate float64, quantity int) Quote {
	return Compute(rate, quantity, DiscountPercent(NormalizeCategory(category)))
}
