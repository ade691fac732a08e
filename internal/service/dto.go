package service

import (
	"time"

	"github.com/jafarshop/storefront/internal/domain"
)

// ProductFilter narrows a product listing
type ProductFilter struct {
	Category string           `form:"category"`
	Query    string           `form:"q"`
	Sort     domain.SortOrder `form:"sort"`
	Limit    int              `form:"limit" binding:"min=0"`
}

// AddItemRequest represents the add-to-cart payload
type AddItemRequest struct {
	ProductID int `json:"product_id" binding:"required,min=1"`
}

// SetQuantityRequest represents the quantity update payload.
// Zero and negative quantities are allowed and remove the item.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartItemView is a line item ready for display
type CartItemView struct {
	domain.CartLineItem
	Subtotal          string `json:"subtotal"`
	FormattedPrice    string `json:"formatted_price"`
	FormattedSubtotal string `json:"formatted_subtotal"`
}

// CartView is the cart as presented to the shopper
type CartView struct {
	Items          []CartItemView `json:"items"`
	ItemCount      int            `json:"item_count"`
	Total          string         `json:"total"`
	FormattedTotal string         `json:"formatted_total"`
	Version        uint64         `json:"version"`
}

// Receipt is returned by checkout
type Receipt struct {
	ID       string    `json:"id"`
	Cart     CartView  `json:"cart"`
	PlacedAt time.Time `json:"placed_at"`
}
