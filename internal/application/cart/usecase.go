package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/dias012rrr/fooddelivery/internal/domain"
	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
	"github.com/dias012rrr/fooddelivery/internal/domain/repository"
	"github.com/dias012rrr/fooddelivery/pkg/logger"
)

// UseCase drives the cart transitions: add, remove, checkout.
type UseCase struct {
	menu     repository.MenuRepository
	orders   repository.OrderRepository
	sessions repository.SessionStore
	log      *logger.Logger
}

// NewUseCase builds the cart use case.
func NewUseCase(menu repository.MenuRepository, orders repository.OrderRepository, sessions repository.SessionStore, log *logger.Logger) *UseCase {
	return &UseCase{menu: menu, orders: orders, sessions: sessions, log: log}
}

// Add fetches the item and appends it to the cart.
// Fails with ErrUnauthorized when nobody is signed in and with
// ErrDuplicateItem when the identifier is already present; a duplicate is
// rejected, never merged.
func (uc *UseCase) Add(ctx context.Context, c *Cart, itemID uint64) (*entity.MenuItem, error) {
	user, err := uc.sessions.LoadUser()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	item, err := uc.menu.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	// The fetch is async; the cart may have gained this item meanwhile.
	if c.Contains(item.ID) {
		return nil, domain.ErrDuplicateItem
	}
	c.add(*item)
	return item, nil
}

// Remove drops an entry; an absent ID is a silent no-op.
func (uc *UseCase) Remove(c *Cart, itemID uint64) {
	c.Remove(itemID)
}

// Checkout validates preconditions in order (session, required fields,
// non-empty cart), submits the order exactly once, and clears the cart
// only after a successful response. A failed submission leaves the cart
// intact; nothing is retried.
func (uc *UseCase) Checkout(ctx context.Context, c *Cart, name, address, phone string) (*entity.Order, error) {
	// Authoritative state at submit time, not a snapshot from before the
	// form was opened.
	user, err := uc.sessions.LoadUser()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	phone = strings.TrimSpace(phone)
	if name == "" || address == "" || phone == "" {
		return nil, domain.ErrInvalidInput
	}

	if c.Len() == 0 {
		return nil, domain.ErrEmptyCart
	}

	order := entity.Order{
		Customer:    name,
		Email:       user.Email,
		Phone:       phone,
		Address:     address,
		Total:       c.Total(),
		FoodItemIDs: c.ItemIDs(),
	}

	if err := uc.orders.Create(ctx, order); err != nil {
		uc.log.Error().Err(err).Str("email", user.Email).Msg("order submission failed")
		return nil, fmt.Errorf("place order: %w", err)
	}

	uc.log.Info().
		Str("email", user.Email).
		Int("items", len(order.FoodItemIDs)).
		Str("total", order.Total.StringFixed(2)).
		Msg("order placed")

	c.Clear()
	return &order, nil
}
