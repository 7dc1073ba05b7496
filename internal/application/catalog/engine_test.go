package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dias012rrr/fooddelivery/internal/application/catalog"
	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
)

func item(id uint64, name string, price string) entity.MenuItem {
	return entity.MenuItem{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}

func catalogOf(n int) []entity.MenuItem {
	items := make([]entity.MenuItem, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, item(uint64(i), "Dish", "10.00"))
	}
	return items
}

func ids(items []entity.MenuItem) []uint64 {
	out := make([]uint64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, catalog.TotalPages(0, 5))
	assert.Equal(t, 1, catalog.TotalPages(1, 5))
	assert.Equal(t, 1, catalog.TotalPages(5, 5))
	assert.Equal(t, 2, catalog.TotalPages(6, 5))
	assert.Equal(t, 3, catalog.TotalPages(11, 5))
}

func TestEngine_PagePartition(t *testing.T) {
	e := catalog.NewEngine(5)
	e.SetCatalog(catalogOf(12))

	var seen []uint64
	for page := 1; page <= 3; page++ {
		view := e.Apply(catalog.Params{Page: page})
		require.Equal(t, page, view.Page)
		require.Equal(t, 3, view.TotalPages)
		if page < 3 {
			assert.Len(t, view.Items, 5)
		} else {
			assert.Len(t, view.Items, 2)
		}
		seen = append(seen, ids(view.Items)...)
	}

	// Every item appears exactly once across the pages, in catalog order.
	require.Len(t, seen, 12)
	for i, id := range seen {
		assert.Equal(t, uint64(i+1), id)
	}
}

func TestEngine_SortByPriceAscending(t *testing.T) {
	e := catalog.NewEngine(2)
	e.SetCatalog([]entity.MenuItem{
		item(1, "Borscht", "10.00"),
		item(2, "Pelmeni", "5.00"),
		item(3, "Blini", "5.00"),
	})

	view := e.Apply(catalog.Params{Sort: "price", Dir: catalog.SortAsc})
	require.Equal(t, 1, view.Page)
	require.Equal(t, 2, view.TotalPages)
	// Equal prices keep catalog order: 2 before 3.
	assert.Equal(t, []uint64{2, 3}, ids(view.Items))

	view = e.Apply(catalog.Params{Page: 2, Sort: "price", Dir: catalog.SortAsc})
	assert.Equal(t, []uint64{1}, ids(view.Items))
}

func TestEngine_SortByPriceDescending(t *testing.T) {
	e := catalog.NewEngine(3)
	e.SetCatalog([]entity.MenuItem{
		item(1, "Borscht", "10.00"),
		item(2, "Pelmeni", "5.00"),
		item(3, "Blini", "5.00"),
	})

	view := e.Apply(catalog.Params{Sort: "price", Dir: catalog.SortDesc})
	// Descending still keeps catalog order among equal prices.
	assert.Equal(t, []uint64{1, 2, 3}, ids(view.Items))
}

func TestEngine_FilterIsCaseSensitiveSubstring(t *testing.T) {
	e := catalog.NewEngine(5)
	e.SetCatalog([]entity.MenuItem{
		item(1, "Cheese Burger", "8.00"),
		item(2, "cheesecake", "6.00"),
		item(3, "Green Salad", "5.00"),
	})

	view := e.Apply(catalog.Params{Filter: "Cheese"})
	assert.Equal(t, []uint64{1}, ids(view.Items))

	view = e.Apply(catalog.Params{Filter: "cheese"})
	assert.Equal(t, []uint64{2}, ids(view.Items))
}

func TestEngine_NoMatchShowsEmptyState(t *testing.T) {
	e := catalog.NewEngine(5)
	e.SetCatalog(catalogOf(3))

	view := e.Apply(catalog.Params{Filter: "Sushi"})
	assert.True(t, view.Empty)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.TotalPages)
	assert.Empty(t, view.Buttons)
}

func TestEngine_SortChangeResetsToPageOne(t *testing.T) {
	e := catalog.NewEngine(2)
	e.SetCatalog(catalogOf(6))

	view := e.Apply(catalog.Params{Page: 3})
	require.Equal(t, 3, view.Page)

	view = e.Apply(catalog.Params{Page: 3, Sort: "price", Dir: catalog.SortAsc})
	assert.Equal(t, 1, view.Page)
}

func TestEngine_FilterChangeResetsToPageOne(t *testing.T) {
	e := catalog.NewEngine(2)
	e.SetCatalog([]entity.MenuItem{
		item(1, "Soup A", "1.00"),
		item(2, "Soup B", "2.00"),
		item(3, "Soup C", "3.00"),
		item(4, "Soup D", "4.00"),
		item(5, "Steak", "9.00"),
	})

	view := e.Apply(catalog.Params{Page: 2})
	require.Equal(t, 2, view.Page)

	view = e.Apply(catalog.Params{Page: 2, Filter: "Soup"})
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 2, view.TotalPages)
}

func TestEngine_OutOfRangePageIsClamped(t *testing.T) {
	e := catalog.NewEngine(5)
	e.SetCatalog(catalogOf(7))

	view := e.Apply(catalog.Params{Page: 99})
	assert.Equal(t, 2, view.Page)
	assert.Len(t, view.Items, 2)

	view = e.Apply(catalog.Params{Page: -3})
	// A non-positive request keeps the current page.
	assert.Equal(t, 2, view.Page)
}

func TestEngine_PaginationButtons(t *testing.T) {
	e := catalog.NewEngine(5)
	e.SetCatalog(catalogOf(12))

	view := e.Apply(catalog.Params{Page: 2})
	require.Len(t, view.Buttons, 3)
	assert.False(t, view.Buttons[0].Active)
	assert.True(t, view.Buttons[1].Active)
	assert.True(t, view.HasPrev)
	assert.True(t, view.HasNext)

	view = e.Apply(catalog.Params{Page: 3})
	assert.True(t, view.HasPrev)
	assert.False(t, view.HasNext)
}

func TestEngine_SetCatalogResetsState(t *testing.T) {
	e := catalog.NewEngine(2)
	e.SetCatalog(catalogOf(6))
	e.Apply(catalog.Params{Page: 3, Filter: "Dish"})

	e.SetCatalog(catalogOf(4))
	view := e.Page()
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, catalog.Params{Page: 1}, view.Params)
}

func TestSections_GroupsByNormalizedCategory(t *testing.T) {
	items := []entity.MenuItem{
		{ID: 1, Category: "Main Courses"},
		{ID: 2, Category: "desserts"},
		{ID: 3, Category: "main-courses"},
		{ID: 4, Category: "mystery"},
	}

	sections := catalog.Sections(items)
	assert.Equal(t, []uint64{1, 3}, ids(sections[entity.CategoryMainCourses]))
	assert.Equal(t, []uint64{2}, ids(sections[entity.CategoryDesserts]))
	// Unknown categories have no grid on the page.
	assert.NotContains(t, sections, "mystery")
}
