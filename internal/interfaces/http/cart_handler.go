package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/dias012rrr/fooddelivery/internal/application/cart"
	"github.com/dias012rrr/fooddelivery/internal/application/dto"
	"github.com/dias012rrr/fooddelivery/internal/domain"
	"github.com/dias012rrr/fooddelivery/pkg/logger"
)

// CartHandler drives the cart panel.
type CartHandler struct {
	carts *cart.UseCase
	pages *PageRenderer
	log   *logger.Logger
}

// NewCartHandler builds the cart handler.
func NewCartHandler(carts *cart.UseCase, pages *PageRenderer, log *logger.Logger) *CartHandler {
	return &CartHandler{carts: carts, pages: pages, log: log}
}

// cartActionResponse is the JSON shape of every cart mutation: the notice
// the page shows plus the re-rendered panel state.
type cartActionResponse struct {
	Notice string           `json:"notice"`
	Cart   dto.CartResponse `json:"cart"`
}

// Panel renders the cart fragment from authoritative state.
func (h *CartHandler) Panel(c *fiber.Ctx) error {
	sess := session(c)
	sess.Lock()
	defer sess.Unlock()

	html, err := h.pages.views.CartPanel(cartState(sess))
	if err != nil {
		return err
	}
	return sendFragment(c, html)
}

// Add puts a menu item into the cart.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	itemID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "Invalid item."})
	}

	sess := session(c)
	sess.Lock()
	defer sess.Unlock()

	item, err := h.carts.Add(c.Context(), sess.Cart, itemID)
	if err != nil {
		return fail(c, err, addNotice(err))
	}

	return c.JSON(cartActionResponse{
		Notice: fmt.Sprintf("%s added to your cart!", item.Name),
		Cart:   cartState(sess),
	})
}

// Remove takes an item out of the cart; an unknown ID still answers with
// the current panel state.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	itemID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "Invalid item."})
	}

	sess := session(c)
	sess.Lock()
	defer sess.Unlock()

	h.carts.Remove(sess.Cart, itemID)
	return c.JSON(cartActionResponse{
		Notice: "Item removed from cart.",
		Cart:   cartState(sess),
	})
}

// Checkout submits the order built from the cart and the shipping form.
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request."})
	}

	sess := session(c)
	sess.Lock()
	defer sess.Unlock()

	order, err := h.carts.Checkout(c.Context(), sess.Cart, in.Name, in.Address, in.Phone)
	if err != nil {
		return fail(c, err, checkoutNotice(err))
	}

	h.log.Info().Str("customer", order.Customer).Msg("checkout complete")
	return c.JSON(cartActionResponse{
		Notice: "Order successfully placed!",
		Cart:   cartState(sess),
	})
}

func cartState(sess *browserSession) dto.CartResponse {
	return dto.NewCartResponse(sess.Cart.Items(), sess.Cart.Total().StringFixed(2))
}

// The cart notices, one per failing condition.

func addNotice(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return "Please sign in to add items to your cart."
	case errors.Is(err, domain.ErrDuplicateItem):
		return "Item is already in your cart."
	}
	return "Error adding item to cart."
}

func checkoutNotice(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return "Please sign in to place an order."
	case errors.Is(err, domain.ErrInvalidInput):
		return "Please fill in all required fields."
	case errors.Is(err, domain.ErrEmptyCart):
		return "Your cart is empty. Add items to your cart before checking out."
	}
	return "Failed to place order."
}
