package repository

import "github.com/dias012rrr/fooddelivery/internal/domain/entity"

// SessionStore is the durable local key-value storage behind the session:
// the Go stand-in for the browser's localStorage. Implementations must
// treat a missing key as (zero, nil) rather than an error.
type SessionStore interface {
	// Current user record.
	SaveUser(user entity.User) error
	LoadUser() (*entity.User, error)
	DeleteUser() error

	// Bearer token, when one was issued.
	SaveToken(token string) error
	LoadToken() (string, error)
	DeleteToken() error

	// Locally managed multi-account list.
	SaveAccounts(accounts []entity.Account) error
	LoadAccounts() ([]entity.Account, error)

	// UI theme preference ("light" / "dark").
	SaveTheme(theme string) error
	LoadTheme() (string, error)
}
