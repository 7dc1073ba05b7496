package repository

import (
	"context"

	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
)

// OrderRepository is the port to the backend's order endpoints.
type OrderRepository interface {
	// Create submits an order. Called at most once per checkout; the cart
	// is only cleared after a successful return.
	Create(ctx context.Context, order entity.Order) error
	// ListByUser fetches the order history. Never cached locally.
	ListByUser(ctx context.Context, userID uint64) ([]entity.PlacedOrder, error)
}
