package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/dias012rrr/fooddelivery/internal/application/catalog"
	"github.com/dias012rrr/fooddelivery/internal/application/dto"
	"github.com/dias012rrr/fooddelivery/pkg/logger"
)

// MenuHandler serves the menu page and its grid fragments.
type MenuHandler struct {
	browser *catalog.Browser
	pages   *PageRenderer
	log     *logger.Logger
}

// NewMenuHandler builds the menu handler.
func NewMenuHandler(browser *catalog.Browser, pages *PageRenderer, log *logger.Logger) *MenuHandler {
	return &MenuHandler{browser: browser, pages: pages, log: log}
}

// Page renders the whole menu page: category sections, the recommended
// grid at its current paging state, and the cart panel.
func (h *MenuHandler) Page(c *fiber.Ctx) error {
	sess := session(c)
	sess.Lock()
	defer sess.Unlock()

	sections, err := h.browser.MenuSections(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("menu fetch failed")
		return fail(c, err, "Failed to load the menu. Please try again.")
	}

	page, err := h.browser.View(c.Context(), sess.Engine, browseParams(c))
	if err != nil {
		h.log.Error().Err(err).Msg("catalog page failed")
		return fail(c, err, "Failed to load the menu. Please try again.")
	}

	cartResp := dto.NewCartResponse(sess.Cart.Items(), sess.Cart.Total().StringFixed(2))
	body, err := h.pages.views.MenuPage(sections, *page, cartResp)
	if err != nil {
		return err
	}
	return h.pages.sendPage(c, "Menu", body)
}

// Fragment re-renders just the recommended grid and pagination for a
// page / sort / filter change.
func (h *MenuHandler) Fragment(c *fiber.Ctx) error {
	sess := session(c)
	sess.Lock()
	defer sess.Unlock()

	page, err := h.browser.View(c.Context(), sess.Engine, browseParams(c))
	if err != nil {
		h.log.Error().Err(err).Msg("catalog page failed")
		return fail(c, err, "Failed to load the menu. Please try again.")
	}

	html, err := h.pages.views.MenuFragment(*page)
	if err != nil {
		return err
	}
	return sendFragment(c, html)
}

// browseParams reads the catalog parameters a page interaction carries.
// Every interaction sends the full set so stale values cannot leak in.
func browseParams(c *fiber.Ctx) catalog.Params {
	page, _ := strconv.Atoi(c.Query("page"))
	return catalog.Params{
		Page:   page,
		Sort:   c.Query("sort"),
		Dir:    catalog.SortDir(c.Query("dir")),
		Filter: c.Query("filter"),
	}
}
