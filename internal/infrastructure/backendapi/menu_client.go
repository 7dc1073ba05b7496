package backendapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dias012rrr/fooddelivery/internal/domain"
	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
	"github.com/dias012rrr/fooddelivery/internal/domain/repository"
)

// MenuClient implements repository.MenuRepository over the backend's
// /menu and /items endpoints.
type MenuClient struct {
	c *Client
}

// NewMenuClient builds the menu client.
func NewMenuClient(c *Client) *MenuClient {
	return &MenuClient{c: c}
}

// List fetches the whole catalog.
func (m *MenuClient) List(ctx context.Context) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := m.c.getJSON(ctx, "/menu", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID fetches a single item; domain.ErrNotFound on a 404.
func (m *MenuClient) GetByID(ctx context.Context, id uint64) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := m.c.getJSON(ctx, "/menu/"+strconv.FormatUint(id, 10), nil, nil, &item)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, fmt.Errorf("menu item %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &item, nil
}

// ListPage fetches one server-computed page. The backend sorts, filters and
// slices; this side must not redo any of it.
func (m *MenuClient) ListPage(ctx context.Context, page, limit int, sort, sortDir, filter string) (*repository.MenuPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if sort != "" {
		q.Set("sort", sort)
		q.Set("sortDir", sortDir)
	}
	if filter != "" {
		q.Set("filter", filter)
	}

	var body struct {
		Data  []entity.MenuItem `json:"data"`
		Total int               `json:"total"`
	}
	if err := m.c.getJSON(ctx, "/items", q, nil, &body); err != nil {
		return nil, err
	}
	return &repository.MenuPage{Items: body.Data, Total: body.Total}, nil
}
