package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dias012rrr/fooddelivery/internal/domain"
	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
	"github.com/dias012rrr/fooddelivery/internal/domain/repository"
	"github.com/dias012rrr/fooddelivery/pkg/logger"
)

// RetryConfig bounds the /auth/check retry when the backend rate-limits.
type RetryConfig struct {
	MaxAttempts int
	Wait        time.Duration
}

// UseCase holds the session state transitions: login, register, restore,
// logout. The durable record lives in the session store; the use case
// never keeps an in-memory copy that could drift from it.
type UseCase struct {
	accounts repository.AccountRepository
	store    repository.SessionStore
	retry    RetryConfig
	sleep    func(time.Duration) // swapped out in tests
	log      *logger.Logger
}

// NewUseCase builds the session use case.
func NewUseCase(accounts repository.AccountRepository, store repository.SessionStore, retry RetryConfig, log *logger.Logger) *UseCase {
	if retry.MaxAttempts < 1 {
		retry.MaxAttempts = 1
	}
	return &UseCase{
		accounts: accounts,
		store:    store,
		retry:    retry,
		sleep:    time.Sleep,
		log:      log,
	}
}

// Login authenticates against the backend and persists the session.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	sess, err := uc.accounts.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := uc.store.SaveUser(sess.User); err != nil {
		return nil, err
	}
	if sess.Token != "" {
		if err := uc.store.SaveToken(sess.Token); err != nil {
			return nil, err
		}
	}
	uc.log.Info().Str("email", sess.User.Email).Msg("user signed in")
	return sess, nil
}

// Register validates the confirmation password locally, then creates the
// user on the backend. The user still signs in afterwards; registration
// does not open a session.
func (uc *UseCase) Register(ctx context.Context, name, email, phone, password, confirm string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if name == "" || email == "" || phone == "" || password == "" {
		return domain.ErrInvalidInput
	}
	if password != confirm {
		return domain.ErrInvalidInput
	}

	if err := uc.accounts.Register(ctx, name, email, phone, password); err != nil {
		return err
	}
	uc.log.Info().Str("email", email).Msg("user registered")
	return nil
}

// Restore rebuilds the session at startup / page load.
//
// With a stored token: revalidate via /auth/check — adopt and persist the
// returned record on success; on a rate-limit signal retry after a delay
// up to the attempt cap, then fail closed; on any other rejection clear
// everything and treat as signed out. Without a token: best-effort
// fallback to the cached user record.
func (uc *UseCase) Restore(ctx context.Context) (*entity.Session, error) {
	token, err := uc.store.LoadToken()
	if err != nil {
		return nil, err
	}

	if token == "" {
		user, err := uc.store.LoadUser()
		if err != nil || user == nil {
			return nil, err
		}
		return &entity.Session{User: *user}, nil
	}

	for attempt := 1; ; attempt++ {
		user, err := uc.accounts.CheckAuth(ctx, token)
		if err == nil {
			if err := uc.store.SaveUser(*user); err != nil {
				return nil, err
			}
			return &entity.Session{User: *user, Token: token}, nil
		}

		if errors.Is(err, domain.ErrRateLimited) && attempt < uc.retry.MaxAttempts {
			uc.log.Warn().Int("attempt", attempt).Msg("auth check rate-limited, retrying")
			uc.sleep(uc.retry.Wait)
			continue
		}

		// Token rejected, rate-limit budget exhausted, or backend
		// unreachable: fail closed.
		uc.log.Warn().Err(err).Msg("auth check failed, clearing session")
		if err := uc.clear(); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

// Logout clears both the token and the user record, regardless of prior
// state.
func (uc *UseCase) Logout() error {
	if err := uc.clear(); err != nil {
		return err
	}
	uc.log.Info().Msg("user signed out")
	return nil
}

// Current returns the active session, or nil when signed out.
func (uc *UseCase) Current() (*entity.Session, error) {
	user, err := uc.store.LoadUser()
	if err != nil || user == nil {
		return nil, err
	}
	token, err := uc.store.LoadToken()
	if err != nil {
		return nil, err
	}
	return &entity.Session{User: *user, Token: token}, nil
}

func (uc *UseCase) clear() error {
	if err := uc.store.DeleteToken(); err != nil {
		return err
	}
	return uc.store.DeleteUser()
}
