package inventory

import "time"

// Record is a stored product row in API-friendly format. The business key is
// ProductID; the row's internal uuid never leaves the store. Price and
// TotalAmount are derived server-side at write time, DiscountAmount is
// recomputed on read from the stored category.
type Record struct {
	ProductID      string    `json:"productId"`
	ProductName    string    `json:"productName"`
	Category       string    `json:"category"`
	Quantity       int       `json:"quantity"`
	Rate           float64   `json:"rate"`
	Location       string    `json:"location"`
	Price          float64   `json:"price"`
	DiscountAmount float64   `json:"discountAmount"`
	TotalAmount    float64   `json:"totalAmount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
