package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dias012rrr/fooddelivery/internal/application/dto"
	"github.com/dias012rrr/fooddelivery/internal/domain/repository"
	"github.com/dias012rrr/fooddelivery/pkg/logger"
)

// SiteHandler covers the page-level odds and ends: the root redirect, the
// theme toggle and the health probe.
type SiteHandler struct {
	store repository.SessionStore
	log   *logger.Logger
}

// NewSiteHandler builds the site handler.
func NewSiteHandler(store repository.SessionStore, log *logger.Logger) *SiteHandler {
	return &SiteHandler{store: store, log: log}
}

// Home sends the visitor to the menu page.
func (h *SiteHandler) Home(c *fiber.Ctx) error {
	return c.Redirect("/menu", fiber.StatusSeeOther)
}

// Theme persists the theme preference and sends the visitor back to the
// page the toggle was on.
func (h *SiteHandler) Theme(c *fiber.Ctx) error {
	var in dto.ThemeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request."})
	}

	theme := in.Theme
	if theme != "dark" {
		theme = "light"
	}
	if err := h.store.SaveTheme(theme); err != nil {
		h.log.Error().Err(err).Msg("theme save failed")
		return fail(c, err, "")
	}

	back := c.Get(fiber.HeaderReferer)
	if back == "" {
		back = "/menu"
	}
	return c.Redirect(back, fiber.StatusSeeOther)
}

// Health is the liveness probe.
func (h *SiteHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
