package profile

import (
	"context"

	"github.com/dias012rrr/fooddelivery/internal/application/catalog"
	"github.com/dias012rrr/fooddelivery/internal/domain"
	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
	"github.com/dias012rrr/fooddelivery/internal/domain/repository"
	"github.com/dias012rrr/fooddelivery/pkg/logger"
)

// History is one page of the order history, prev/next style.
type History struct {
	Orders     []entity.PlacedOrder
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	Empty      bool
}

// UseCase loads the profile card and pages through the order history.
type UseCase struct {
	accounts repository.AccountRepository
	orders   repository.OrderRepository
	sessions repository.SessionStore
	pageSize int
	log      *logger.Logger
}

// NewUseCase builds the profile use case.
func NewUseCase(accounts repository.AccountRepository, orders repository.OrderRepository, sessions repository.SessionStore, pageSize int, log *logger.Logger) *UseCase {
	if pageSize < 1 {
		pageSize = 1
	}
	return &UseCase{accounts: accounts, orders: orders, sessions: sessions, pageSize: pageSize, log: log}
}

// Load fetches the fresh profile record for the signed-in user.
func (uc *UseCase) Load(ctx context.Context) (*entity.User, error) {
	user, err := uc.sessions.LoadUser()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.accounts.GetByEmail(ctx, user.Email)
}

// OrderHistory fetches the history and slices the requested page.
// The history is always re-fetched, never cached; a fetch failure degrades
// to an empty history rather than an error. Page numbers are clamped so
// prev/next can never run off either end.
func (uc *UseCase) OrderHistory(ctx context.Context, page int) (*History, error) {
	user, err := uc.sessions.LoadUser()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	orders, err := uc.orders.ListByUser(ctx, user.ID)
	if err != nil {
		uc.log.Warn().Err(err).Uint64("user_id", user.ID).Msg("order history fetch failed")
		orders = nil
	}

	if len(orders) == 0 {
		return &History{Page: 1, Empty: true}, nil
	}

	totalPages := catalog.TotalPages(len(orders), uc.pageSize)
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * uc.pageSize
	end := start + uc.pageSize
	if end > len(orders) {
		end = len(orders)
	}

	return &History{
		Orders:     orders[start:end],
		Page:       page,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}, nil
}
