package domain

import "github.com/shopspring/decimal"

// Rating is the aggregated shopper rating of a product
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product represents a catalog product record
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// UnitPrice returns the product price as an exact decimal
func (p Product) UnitPrice() decimal.Decimal {
	return decimal.NewFromFloat(p.Price)
}

// CartLineItem is one product's aggregated entry in a cart
type CartLineItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns price * quantity for the line item
func (i CartLineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}
