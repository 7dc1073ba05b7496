package dto

import (
	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
)

// CartItemResponse one cart row.
type CartItemResponse struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// CartResponse the whole cart panel state.
type CartResponse struct {
	Items    []CartItemResponse `json:"items"`
	Total    string             `json:"total"`
	Count    int                `json:"count"`
	CanOrder bool               `json:"can_order"`
}

// NewCartResponse maps cart entries into the panel state. Total comes from
// the caller so it is always the live sum.
func NewCartResponse(items []entity.MenuItem, total string) CartResponse {
	rows := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		rows = append(rows, CartItemResponse{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price.StringFixed(2),
		})
	}
	return CartResponse{
		Items:    rows,
		Total:    total,
		Count:    len(rows),
		CanOrder: len(rows) > 0,
	}
}

// CheckoutRequest the shipping form.
type CheckoutRequest struct {
	Name    string `json:"name" form:"name"`
	Address string `json:"address" form:"address"`
	Phone   string `json:"phone" form:"phone"`
}
