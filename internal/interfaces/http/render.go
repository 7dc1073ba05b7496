package http

import (
	"errors"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/dias012rrr/fooddelivery/internal/application/auth"
	"github.com/dias012rrr/fooddelivery/internal/application/dto"
	"github.com/dias012rrr/fooddelivery/internal/domain"
	"github.com/dias012rrr/fooddelivery/internal/domain/repository"
	"github.com/dias012rrr/fooddelivery/internal/interfaces/view"
)

// PageRenderer wraps body fragments in the shared layout (navbar auth
// affordance, theme class, FAQ, chat widget).
type PageRenderer struct {
	views *view.Renderer
	store repository.SessionStore
	auths *auth.UseCase
}

func NewPageRenderer(views *view.Renderer, store repository.SessionStore, auths *auth.UseCase) *PageRenderer {
	return &PageRenderer{views: views, store: store, auths: auths}
}

// sendPage renders a full HTML page around body.
func (p *PageRenderer) sendPage(c *fiber.Ctx, title string, body template.HTML) error {
	theme, err := p.store.LoadTheme()
	if err != nil {
		theme = "light"
	}
	sess, err := p.auths.Current()
	if err != nil {
		sess = nil
	}
	html, err := p.views.Layout(view.LayoutData{
		Title:   title,
		Theme:   theme,
		Session: sess,
		Body:    body,
	})
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.SendString(html)
}

// sendFragment sends a bare HTML fragment.
func sendFragment(c *fiber.Ctx, html template.HTML) error {
	c.Type("html", "utf-8")
	return c.SendString(string(html))
}

// fail maps a domain error onto a status code and the user-visible message
// the page shows for it. Unknown errors become the generic transport
// message and are not leaked to the user.
func fail(c *fiber.Ctx, err error, notice string) error {
	code := "INTERNAL"
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		code, status = "UNAUTHORIZED", fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidCredentials):
		code, status = "INVALID_CREDENTIALS", fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrEmailNotVerified):
		code, status = "EMAIL_NOT_VERIFIED", fiber.StatusForbidden
	case errors.Is(err, domain.ErrEmailTaken):
		code, status = "ALREADY_EXISTS", fiber.StatusConflict
	case errors.Is(err, domain.ErrDuplicateItem):
		code, status = "DUPLICATE_ITEM", fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput):
		code, status = "VALIDATION", fiber.StatusBadRequest
	case errors.Is(err, domain.ErrEmptyCart):
		code, status = "EMPTY_CART", fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		code, status = "NOT_FOUND", fiber.StatusNotFound
	case errors.Is(err, domain.ErrRateLimited):
		code, status = "RATE_LIMITED", fiber.StatusTooManyRequests
	case errors.Is(err, domain.ErrBackendUnavailable):
		code, status = "BACKEND_UNAVAILABLE", fiber.StatusServiceUnavailable
	}

	if notice == "" {
		notice = "Something went wrong. Please try again."
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: notice})
}
