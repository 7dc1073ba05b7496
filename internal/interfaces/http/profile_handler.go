package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/dias012rrr/fooddelivery/internal/application/profile"
	"github.com/dias012rrr/fooddelivery/internal/domain"
	"github.com/dias012rrr/fooddelivery/pkg/logger"
)

// ProfileHandler serves the profile page and the order history fragment.
type ProfileHandler struct {
	profiles *profile.UseCase
	pages    *PageRenderer
	log      *logger.Logger
}

// NewProfileHandler builds the profile handler.
func NewProfileHandler(profiles *profile.UseCase, pages *PageRenderer, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, pages: pages, log: log}
}

// Page renders the profile card with the first history page. A signed-out
// visitor is sent to the auth page instead.
func (h *ProfileHandler) Page(c *fiber.Ctx) error {
	user, err := h.profiles.Load(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Redirect("/auth", fiber.StatusSeeOther)
		}
		h.log.Error().Err(err).Msg("profile load failed")
		return fail(c, err, "Failed to load your profile. Please try again.")
	}

	history, err := h.profiles.OrderHistory(c.Context(), historyPage(c))
	if err != nil {
		return fail(c, err, "Failed to load your orders. Please try again.")
	}

	body, err := h.pages.views.ProfilePage(*user, *history)
	if err != nil {
		return err
	}
	return h.pages.sendPage(c, "Profile", body)
}

// Orders re-renders just the order history fragment for a page change.
func (h *ProfileHandler) Orders(c *fiber.Ctx) error {
	history, err := h.profiles.OrderHistory(c.Context(), historyPage(c))
	if err != nil {
		return fail(c, err, "Failed to load your orders. Please try again.")
	}

	html, err := h.pages.views.OrderHistory(*history)
	if err != nil {
		return err
	}
	return sendFragment(c, html)
}

func historyPage(c *fiber.Ctx) int {
	page, _ := strconv.Atoi(c.Query("page"))
	return page
}
