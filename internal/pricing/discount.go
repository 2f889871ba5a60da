package pricing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Category names carrying a discount. Lookup is an exact match against the
// normalized spelling; anything else earns 0%.
const (
	CategoryFruits     = "Fruits"
	CategoryVegetables = "Vegetables"
	CategoryGrocery    = "Grocery"
)

var discountTable = map[string]int{
	CategoryFruits:     10,
	CategoryVegetables: 5,
	CategoryGrocery:    15,
}

// DiscountPercent returns the discount percentage for a category. Unknown
// categories are not an error; they simply get no discount.
func DiscountPercent(category string) int {
	return discountTable[category]
}

// NormalizeCategory upper-cases the first rune and lower-cases the rest,
// so "fruits", "FRUITS", and "Fruits" all store as "Fruits".
func NormalizeCategory(category string) string {
	if category == "" {
		return category
	}
	first, size := utf8.DecodeRuneInString(category)
	return string(unicode.ToUpper(first)) + strings.ToLower(category[size:])
}
