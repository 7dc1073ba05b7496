package catalog

import (
	"context"

	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
	"github.com/dias012rrr/fooddelivery/internal/domain/repository"
	"github.com/dias012rrr/fooddelivery/pkg/logger"
)

// Browser is the catalog browsing use case. It supports two operating
// modes: client-side (fetch the whole catalog once, slice locally through
// a per-session Engine) and server-paged (every page change is a backend
// query; nothing is re-sorted or re-filtered here).
type Browser struct {
	menu        repository.MenuRepository
	pageSize    int
	serverPaged bool
	log         *logger.Logger
}

// NewBrowser builds the browsing use case.
func NewBrowser(menu repository.MenuRepository, pageSize int, serverPaged bool, log *logger.Logger) *Browser {
	return &Browser{menu: menu, pageSize: pageSize, serverPaged: serverPaged, log: log}
}

// PageSize returns the configured page size of the menu surface.
func (b *Browser) PageSize() int {
	return b.pageSize
}

// ServerPaged reports the active operating mode.
func (b *Browser) ServerPaged() bool {
	return b.serverPaged
}

// Load ensures the session engine holds the catalog (client-side mode).
// In server-paged mode there is nothing to preload.
func (b *Browser) Load(ctx context.Context, e *Engine) error {
	if b.serverPaged || e.Loaded() {
		return nil
	}
	items, err := b.menu.List(ctx)
	if err != nil {
		return err
	}
	e.SetCatalog(items)
	return nil
}

// View resolves one catalog page for the given parameters.
func (b *Browser) View(ctx context.Context, e *Engine, p Params) (*PageView, error) {
	if b.serverPaged {
		return b.serverView(ctx, p)
	}
	if err := b.Load(ctx, e); err != nil {
		return nil, err
	}
	view := e.Apply(p)
	return &view, nil
}

// serverView fetches one backend page. A request past the end is clamped
// and refetched once so out-of-range navigation never faults.
func (b *Browser) serverView(ctx context.Context, p Params) (*PageView, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	page, err := b.menu.ListPage(ctx, p.Page, b.pageSize, p.Sort, string(p.Dir), p.Filter)
	if err != nil {
		return nil, err
	}

	totalPages := TotalPages(page.Total, b.pageSize)
	if totalPages > 0 && p.Page > totalPages {
		p.Page = totalPages
		page, err = b.menu.ListPage(ctx, p.Page, b.pageSize, p.Sort, string(p.Dir), p.Filter)
		if err != nil {
			return nil, err
		}
	}

	view := &PageView{
		Items:      page.Items,
		Page:       p.Page,
		TotalPages: totalPages,
		Params:     p,
		Empty:      page.Total == 0,
	}
	if !view.Empty {
		view.Buttons = pageButtons(p.Page, totalPages)
		view.HasPrev = p.Page > 1
		view.HasNext = p.Page < totalPages
	}
	return view, nil
}

// MenuSections fetches the full catalog grouped into the fixed category
// sections of the menu page.
func (b *Browser) MenuSections(ctx context.Context) (map[string][]entity.MenuItem, error) {
	items, err := b.menu.List(ctx)
	if err != nil {
		return nil, err
	}
	return Sections(items), nil
}
