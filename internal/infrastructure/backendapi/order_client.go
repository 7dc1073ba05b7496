package backendapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
)

// OrderClient implements repository.OrderRepository over the backend's
// /orders endpoints.
type OrderClient struct {
	c *Client
}

// NewOrderClient builds the order client.
func NewOrderClient(c *Client) *OrderClient {
	return &OrderClient{c: c}
}

// Create submits an order once. Callers decide what a failure means for
// their state; nothing is retried here.
func (o *OrderClient) Create(ctx context.Context, order entity.Order) error {
	return o.c.postJSON(ctx, "/orders", order, nil)
}

// ListByUser fetches the order history for a user.
func (o *OrderClient) ListByUser(ctx context.Context, userID uint64) ([]entity.PlacedOrder, error) {
	q := url.Values{}
	q.Set("userId", strconv.FormatUint(userID, 10))

	var orders []entity.PlacedOrder
	if err := o.c.getJSON(ctx, "/orders/by-user", q, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
