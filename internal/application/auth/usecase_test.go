package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dias012rrr/fooddelivery/internal/domain"
	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
	"github.com/dias012rrr/fooddelivery/pkg/logger"
)

type memStore struct {
	user     *entity.User
	token    string
	accounts []entity.Account
	theme    string
}

func (s *memStore) SaveUser(u entity.User) error { s.user = &u; return nil }
func (s *memStore) LoadUser() (*entity.User, error) {
	if s.user == nil {
		return nil, nil
	}
	u := *s.user
	return &u, nil
}
func (s *memStore) DeleteUser() error                       { s.user = nil; return nil }
func (s *memStore) SaveToken(t string) error                { s.token = t; return nil }
func (s *memStore) LoadToken() (string, error)              { return s.token, nil }
func (s *memStore) DeleteToken() error                      { s.token = ""; return nil }
func (s *memStore) SaveAccounts(a []entity.Account) error   { s.accounts = a; return nil }
func (s *memStore) LoadAccounts() ([]entity.Account, error) { return s.accounts, nil }
func (s *memStore) SaveTheme(theme string) error            { s.theme = theme; return nil }
func (s *memStore) LoadTheme() (string, error)              { return s.theme, nil }

// stubAccounts scripts the backend's answers.
type stubAccounts struct {
	loginSession *entity.Session
	loginErr     error
	registerErr  error

	checkResults []checkResult
	checkCalls   int
}

type checkResult struct {
	user *entity.User
	err  error
}

func (a *stubAccounts) Login(context.Context, string, string) (*entity.Session, error) {
	return a.loginSession, a.loginErr
}

func (a *stubAccounts) Register(context.Context, string, string, string, string) error {
	return a.registerErr
}

func (a *stubAccounts) CheckAuth(context.Context, string) (*entity.User, error) {
	if a.checkCalls >= len(a.checkResults) {
		return nil, domain.ErrUnauthorized
	}
	r := a.checkResults[a.checkCalls]
	a.checkCalls++
	return r.user, r.err
}

func (a *stubAccounts) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, domain.ErrUserNotFound
}

func newTestUseCase(accounts *stubAccounts, store *memStore, maxAttempts int) (*UseCase, *int) {
	uc := NewUseCase(accounts, store, RetryConfig{MaxAttempts: maxAttempts, Wait: time.Second}, logger.New(logger.Config{Env: "test", Level: "error"}))
	sleeps := 0
	uc.sleep = func(time.Duration) { sleeps++ }
	return uc, &sleeps
}

func TestLogin_PersistsUserAndToken(t *testing.T) {
	store := &memStore{}
	accounts := &stubAccounts{loginSession: &entity.Session{
		User:  entity.User{ID: 7, Email: "ann@example.com"},
		Token: "tok-1",
	}}
	uc, _ := newTestUseCase(accounts, store, 3)

	sess, err := uc.Login(context.Background(), "ann@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", sess.Token)
	require.NotNil(t, store.user)
	assert.Equal(t, uint64(7), store.user.ID)
	assert.Equal(t, "tok-1", store.token)
}

func TestLogin_NoTokenVariantStillPersistsUser(t *testing.T) {
	store := &memStore{}
	accounts := &stubAccounts{loginSession: &entity.Session{
		User: entity.User{ID: 7, Email: "ann@example.com"},
	}}
	uc, _ := newTestUseCase(accounts, store, 3)

	_, err := uc.Login(context.Background(), "ann@example.com", "secret")
	require.NoError(t, err)
	require.NotNil(t, store.user)
	assert.Empty(t, store.token)
}

func TestLogin_BlankFields(t *testing.T) {
	uc, _ := newTestUseCase(&stubAccounts{}, &memStore{}, 3)

	_, err := uc.Login(context.Background(), "  ", "secret")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(context.Background(), "ann@example.com", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	uc, _ := newTestUseCase(&stubAccounts{}, &memStore{}, 3)

	err := uc.Register(context.Background(), "Ann", "ann@example.com", "+15550001", "secret12", "secret21")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRestore_TokenRevalidates(t *testing.T) {
	store := &memStore{token: "tok-1"}
	accounts := &stubAccounts{checkResults: []checkResult{
		{user: &entity.User{ID: 7, Email: "ann@example.com"}},
	}}
	uc, _ := newTestUseCase(accounts, store, 3)

	sess, err := uc.Restore(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "tok-1", sess.Token)
	// The fresh record replaces the cached one.
	require.NotNil(t, store.user)
	assert.Equal(t, "ann@example.com", store.user.Email)
}

func TestRestore_RetriesOnRateLimitThenSucceeds(t *testing.T) {
	store := &memStore{token: "tok-1"}
	accounts := &stubAccounts{checkResults: []checkResult{
		{err: domain.ErrRateLimited},
		{err: domain.ErrRateLimited},
		{user: &entity.User{ID: 7}},
	}}
	uc, sleeps := newTestUseCase(accounts, store, 3)

	sess, err := uc.Restore(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, 3, accounts.checkCalls)
	assert.Equal(t, 2, *sleeps)
}

func TestRestore_RateLimitBudgetExhaustedFailsClosed(t *testing.T) {
	store := &memStore{token: "tok-1", user: &entity.User{ID: 7}}
	accounts := &stubAccounts{checkResults: []checkResult{
		{err: domain.ErrRateLimited},
		{err: domain.ErrRateLimited},
		{err: domain.ErrRateLimited},
	}}
	uc, sleeps := newTestUseCase(accounts, store, 3)

	sess, err := uc.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.Equal(t, 3, accounts.checkCalls)
	assert.Equal(t, 2, *sleeps)
	// Fail closed: both records gone.
	assert.Nil(t, store.user)
	assert.Empty(t, store.token)
}

func TestRestore_RejectedTokenClearsSession(t *testing.T) {
	store := &memStore{token: "tok-1", user: &entity.User{ID: 7}}
	accounts := &stubAccounts{checkResults: []checkResult{
		{err: domain.ErrUnauthorized},
	}}
	uc, _ := newTestUseCase(accounts, store, 3)

	sess, err := uc.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.Nil(t, store.user)
	assert.Empty(t, store.token)
}

func TestRestore_NoTokenFallsBackToCachedUser(t *testing.T) {
	store := &memStore{user: &entity.User{ID: 7, Email: "ann@example.com"}}
	accounts := &stubAccounts{}
	uc, _ := newTestUseCase(accounts, store, 3)

	sess, err := uc.Restore(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Empty(t, sess.Token)
	assert.Equal(t, "ann@example.com", sess.User.Email)
	// No network revalidation without a token.
	assert.Equal(t, 0, accounts.checkCalls)
}

func TestRestore_NothingStored(t *testing.T) {
	uc, _ := newTestUseCase(&stubAccounts{}, &memStore{}, 3)

	sess, err := uc.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestLogout_ClearsEverything(t *testing.T) {
	store := &memStore{token: "tok-1", user: &entity.User{ID: 7}}
	uc, _ := newTestUseCase(&stubAccounts{}, store, 3)

	require.NoError(t, uc.Logout())
	assert.Nil(t, store.user)
	assert.Empty(t, store.token)

	// Logging out while signed out is still fine.
	require.NoError(t, uc.Logout())
}
