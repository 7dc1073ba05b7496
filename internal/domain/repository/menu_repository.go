package repository

import (
	"context"

	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
)

// MenuPage is one server-computed page of the catalog.
type MenuPage struct {
	Items []entity.MenuItem
	Total int
}

// MenuRepository is the port to the backend's menu endpoints.
type MenuRepository interface {
	// List fetches the whole catalog (client-side paging mode).
	List(ctx context.Context) ([]entity.MenuItem, error)
	// GetByID fetches a single item.
	GetByID(ctx context.Context, id uint64) (*entity.MenuItem, error)
	// ListPage fetches one server-computed page (server-paged mode).
	// sortDir is "asc" or "desc"; filter is a free-text name filter.
	ListPage(ctx context.Context, page, limit int, sort, sortDir, filter string) (*MenuPage, error)
}
