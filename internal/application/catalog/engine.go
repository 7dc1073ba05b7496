package catalog

import (
	"sort"
	"strings"

	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
)

// SortDir is a price sort direction.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// Params are the catalog browsing parameters a page interaction carries.
// Sort is the sort key ("price" is the only one the menu surface offers);
// an empty Sort means catalog order.
type Params struct {
	Page   int
	Sort   string
	Dir    SortDir
	Filter string
}

// PageButton is one numbered pagination control.
type PageButton struct {
	Number int
	Active bool
}

// PageView is the derived, never-persisted view of one catalog page.
type PageView struct {
	Items      []entity.MenuItem
	Page       int
	TotalPages int
	Buttons    []PageButton
	HasPrev    bool
	HasNext    bool
	Empty      bool
	Params     Params
}

// Engine computes the visible slice of the catalog in client-side mode:
// it receives the whole catalog once and sorts, filters and slices locally.
// One engine per browser session; callers serialize access.
type Engine struct {
	pageSize int
	source   []entity.MenuItem
	params   Params
}

// NewEngine builds an engine for the given page size.
func NewEngine(pageSize int) *Engine {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Engine{pageSize: pageSize, params: Params{Page: 1}}
}

// SetCatalog installs the fetched catalog and resets to page 1 of the
// unfiltered, unsorted view.
func (e *Engine) SetCatalog(items []entity.MenuItem) {
	e.source = append([]entity.MenuItem(nil), items...)
	e.params = Params{Page: 1}
}

// Loaded reports whether a catalog has been installed.
func (e *Engine) Loaded() bool {
	return e.source != nil
}

// Apply merges the requested parameters into the engine state and returns
// the resulting page view. Changing sort or filter resets to page 1 so that
// a stale page number never leaks into the new ordering; a page request is
// clamped to the valid range.
func (e *Engine) Apply(p Params) PageView {
	sortChanged := p.Sort != e.params.Sort || (p.Sort != "" && p.Dir != e.params.Dir)
	filterChanged := p.Filter != e.params.Filter

	e.params.Sort = p.Sort
	e.params.Dir = p.Dir
	e.params.Filter = p.Filter

	if sortChanged || filterChanged {
		e.params.Page = 1
	} else if p.Page > 0 {
		e.params.Page = p.Page
	}

	return e.Page()
}

// Page recomputes the current view from authoritative state.
func (e *Engine) Page() PageView {
	visible := e.visible()

	totalPages := TotalPages(len(visible), e.pageSize)
	e.params.Page = clampPage(e.params.Page, totalPages)

	view := PageView{
		Page:       e.params.Page,
		TotalPages: totalPages,
		Params:     e.params,
		Empty:      len(visible) == 0,
	}
	if view.Empty {
		return view
	}

	start := (e.params.Page - 1) * e.pageSize
	end := start + e.pageSize
	if end > len(visible) {
		end = len(visible)
	}
	view.Items = visible[start:end]
	view.Buttons = pageButtons(e.params.Page, totalPages)
	view.HasPrev = e.params.Page > 1
	view.HasNext = e.params.Page < totalPages
	return view
}

// visible applies the active filter and sort to the source catalog.
// Filtering is a substring match on the name, case-sensitive as typed.
// The price sort must be stable: equal-price items keep catalog order.
func (e *Engine) visible() []entity.MenuItem {
	items := make([]entity.MenuItem, 0, len(e.source))
	for _, item := range e.source {
		if e.params.Filter == "" || strings.Contains(item.Name, e.params.Filter) {
			items = append(items, item)
		}
	}

	if e.params.Sort == "price" {
		desc := e.params.Dir == SortDesc
		sort.SliceStable(items, func(i, j int) bool {
			cmp := items[i].Price.Cmp(items[j].Price)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}
	return items
}

// Sections groups a catalog by normalized category for the fixed menu
// sections; items with an unknown category are left out, as the page has
// no grid for them.
func Sections(items []entity.MenuItem) map[string][]entity.MenuItem {
	sections := make(map[string][]entity.MenuItem, len(entity.MenuCategories))
	known := make(map[string]bool, len(entity.MenuCategories))
	for _, c := range entity.MenuCategories {
		known[c] = true
	}
	for _, item := range items {
		if s := item.Section(); known[s] {
			sections[s] = append(sections[s], item)
		}
	}
	return sections
}

// TotalPages is ceil(total/pageSize); zero items means zero pages.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return totalPages
	}
	return page
}

func pageButtons(current, totalPages int) []PageButton {
	buttons := make([]PageButton, 0, totalPages)
	for i := 1; i <= totalPages; i++ {
		buttons = append(buttons, PageButton{Number: i, Active: i == current})
	}
	return buttons
}
