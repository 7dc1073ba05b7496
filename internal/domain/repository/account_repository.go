package repository

import (
	"context"

	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
)

// AccountRepository is the port to the backend's auth and user endpoints.
type AccountRepository interface {
	// Login exchanges credentials for a user record and, when the backend
	// issues one, a bearer token. ErrEmailNotVerified on a 403.
	Login(ctx context.Context, email, password string) (*entity.Session, error)
	// Register creates a new user.
	Register(ctx context.Context, name, email, phone, password string) error
	// CheckAuth revalidates a bearer token. ErrRateLimited on a 429,
	// ErrUnauthorized on any other rejection.
	CheckAuth(ctx context.Context, token string) (*entity.User, error)
	// GetByEmail fetches the full profile record.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
