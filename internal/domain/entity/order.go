package entity

import "github.com/shopspring/decimal"

// Order is built once at checkout and submitted to the backend.
// Total is computed client-side from the cart and trusted by the backend
// as designed; FoodItemIDs reference menu items by identifier.
type Order struct {
	ID          uint64          `json:"id,omitempty"`
	Customer    string          `json:"customer"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	Total       decimal.Decimal `json:"total"`
	FoodItemIDs []uint64        `json:"food_items"`
}

// PlacedOrder is an order as returned by the history endpoint, with the
// item records expanded.
type PlacedOrder struct {
	ID        uint64          `json:"id"`
	Customer  string          `json:"customer"`
	Address   string          `json:"address"`
	Total     decimal.Decimal `json:"total"`
	FoodItems []MenuItem      `json:"food_items"`
}
