package view

import (
	"bytes"
	"html/template"

	"github.com/dias012rrr/fooddelivery/internal/application/catalog"
	"github.com/dias012rrr/fooddelivery/internal/application/dto"
	"github.com/dias012rrr/fooddelivery/internal/application/profile"
	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
)

// Renderer turns application state into markup. Renderers are pure:
// state in, markup out, no side effects.
type Renderer struct{}

// New builds the renderer.
func New() *Renderer {
	return &Renderer{}
}

// LayoutData is what every full page carries.
type LayoutData struct {
	Title   string
	Theme   string
	Session *entity.Session
	Body    template.HTML
}

// SectionData one fixed category section of the menu page.
type SectionData struct {
	Title  string
	GridID string
	Items  []entity.MenuItem
}

// MenuPageData the whole menu page.
type MenuPageData struct {
	Sections []SectionData
	Page     catalog.PageView
	Cart     dto.CartResponse
}

// ProfilePageData the profile page.
type ProfilePageData struct {
	User    entity.User
	History historyData
}

// AuthPageData the sign-in / sign-up page.
type AuthPageData struct {
	Error string
}

// historyData adapts profile.History for the template (precomputed
// prev/next targets).
type historyData struct {
	profile.History
	PrevPage int
	NextPage int
}

// Grid IDs and human titles of the fixed menu sections, in page order.
var sectionMeta = map[string]SectionData{
	entity.CategoryAppetizers:  {Title: "Appetizers", GridID: "appetizersGrid"},
	entity.CategoryMainCourses: {Title: "Main Courses", GridID: "mainCoursesGrid"},
	entity.CategoryDesserts:    {Title: "Desserts", GridID: "dessertsGrid"},
	entity.CategoryDrinks:      {Title: "Drinks", GridID: "drinksGrid"},
}

func (r *Renderer) render(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Layout renders a full page around a body fragment.
func (r *Renderer) Layout(data LayoutData) (string, error) {
	html, err := r.render("layout", data)
	return string(html), err
}

// MenuPage renders the menu page body: category sections, the recommended
// grid with its pagination, and the cart panel.
func (r *Renderer) MenuPage(sections map[string][]entity.MenuItem, page catalog.PageView, cart dto.CartResponse) (template.HTML, error) {
	data := MenuPageData{Page: page, Cart: cart}
	for _, key := range entity.MenuCategories {
		meta := sectionMeta[key]
		meta.Items = sections[key]
		data.Sections = append(data.Sections, meta)
	}
	return r.render("menu_page", data)
}

// MenuFragment renders just the recommended grid plus pagination buttons,
// for in-place page/sort/filter changes.
func (r *Renderer) MenuFragment(page catalog.PageView) (template.HTML, error) {
	return r.render("menu_fragment", page)
}

// CartPanel renders the cart fragment.
func (r *Renderer) CartPanel(cart dto.CartResponse) (template.HTML, error) {
	return r.render("cart_panel", cart)
}

// ProfilePage renders the profile body with its order history.
func (r *Renderer) ProfilePage(user entity.User, history profile.History) (template.HTML, error) {
	return r.render("profile_page", ProfilePageData{User: user, History: pager(history)})
}

// OrderHistory renders just the history fragment.
func (r *Renderer) OrderHistory(history profile.History) (template.HTML, error) {
	return r.render("order_history", pager(history))
}

// AuthPage renders the sign-in / sign-up forms.
func (r *Renderer) AuthPage(errMsg string) (template.HTML, error) {
	return r.render("auth_page", AuthPageData{Error: errMsg})
}

func pager(h profile.History) historyData {
	d := historyData{History: h, PrevPage: h.Page - 1, NextPage: h.Page + 1}
	if d.PrevPage < 1 {
		d.PrevPage = 1
	}
	if h.TotalPages > 0 && d.NextPage > h.TotalPages {
		d.NextPage = h.TotalPages
	}
	return d
}
