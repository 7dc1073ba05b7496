package http

import (
	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything the router wires up.
type Handlers struct {
	Site    *SiteHandler
	Menu    *MenuHandler
	Cart    *CartHandler
	Auth    *AuthHandler
	Profile *ProfileHandler
	Support *SupportHandler
}

// RegisterRoutes mounts the storefront routes on the app. The session
// middleware runs first so every handler can rely on its browser session.
func RegisterRoutes(app *fiber.App, registry *SessionRegistry, h Handlers) {
	app.Use(registry.Middleware())

	app.Get("/", h.Site.Home)
	app.Get("/health", h.Site.Health)
	app.Post("/theme", h.Site.Theme)
	app.Static("/static", "./web/static")

	app.Get("/menu", h.Menu.Page)
	app.Get("/menu/page", h.Menu.Fragment)

	app.Get("/cart", h.Cart.Panel)
	app.Post("/cart/items/:id", h.Cart.Add)
	app.Delete("/cart/items/:id", h.Cart.Remove)
	// Plain form posts cannot send DELETE.
	app.Post("/cart/items/:id/remove", h.Cart.Remove)
	app.Post("/cart/checkout", h.Cart.Checkout)

	app.Get("/auth", h.Auth.Page)
	app.Get("/auth/session", h.Auth.Session)
	app.Post("/auth/login", h.Auth.Login)
	app.Post("/auth/register", h.Auth.Register)
	app.Post("/auth/logout", h.Auth.Logout)

	app.Post("/auth/local/signup", h.Auth.LocalSignUp)
	app.Post("/auth/local/signin", h.Auth.LocalSignIn)
	app.Post("/auth/local/switch/:index", h.Auth.LocalSwitch)

	app.Get("/profile", h.Profile.Page)
	app.Get("/profile/orders", h.Profile.Orders)

	app.Post("/support", h.Support.Send)
	app.Post("/support/chat", h.Support.Chat)
}
