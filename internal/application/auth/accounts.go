package auth

import (
	"errors"
	"regexp"

	"github.com/dias012rrr/fooddelivery/internal/domain"
	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
	"github.com/dias012rrr/fooddelivery/internal/domain/repository"
)

// Validation errors for the local account forms, surfaced inline.
var (
	ErrFieldsRequired  = errors.New("all fields are required")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidPhone    = errors.New("invalid phone number format")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// AccountManager is the local multi-account mode: an offline account list
// kept in durable storage, no backend involved. Passwords are compared and
// stored in plaintext, which reproduces the shipped behavior.
type AccountManager struct {
	store repository.SessionStore
}

// NewAccountManager builds the manager.
func NewAccountManager(store repository.SessionStore) *AccountManager {
	return &AccountManager{store: store}
}

// SignUp validates and appends a new local account, rejecting duplicate
// email or phone.
func (m *AccountManager) SignUp(email, phone, password string) (*entity.Account, error) {
	if email == "" || phone == "" || password == "" {
		return nil, ErrFieldsRequired
	}
	if !emailRe.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if !phoneRe.MatchString(phone) {
		return nil, ErrInvalidPhone
	}
	if len(password) < 8 {
		return nil, ErrPasswordTooWeak
	}

	accounts, err := m.store.LoadAccounts()
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.Email == email || a.Phone == phone {
			return nil, domain.ErrEmailTaken
		}
	}

	account := entity.Account{Email: email, Phone: phone, Password: password}
	accounts = append(accounts, account)
	if err := m.store.SaveAccounts(accounts); err != nil {
		return nil, err
	}
	return &account, nil
}

// SignIn matches email-or-phone plus password against the stored list.
func (m *AccountManager) SignIn(emailOrPhone, password string) (*entity.Account, error) {
	if emailOrPhone == "" || password == "" {
		return nil, ErrFieldsRequired
	}
	accounts, err := m.store.LoadAccounts()
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if (a.Email == emailOrPhone || a.Phone == emailOrPhone) && a.Password == password {
			return &a, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// Accounts lists the stored local accounts.
func (m *AccountManager) Accounts() ([]entity.Account, error) {
	return m.store.LoadAccounts()
}

// Switch selects a stored account by index.
func (m *AccountManager) Switch(index int) (*entity.Account, error) {
	accounts, err := m.store.LoadAccounts()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(accounts) {
		return nil, domain.ErrNotFound
	}
	return &accounts[index], nil
}
