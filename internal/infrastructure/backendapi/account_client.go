package backendapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dias012rrr/fooddelivery/internal/domain"
	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
)

// AccountClient implements repository.AccountRepository over the backend's
// auth and user endpoints.
type AccountClient struct {
	c *Client
}

// NewAccountClient builds the account client.
func NewAccountClient(c *Client) *AccountClient {
	return &AccountClient{c: c}
}

// loginResponse tolerates both backend variants: a flat user object and a
// {user, token} wrapper.
type loginResponse struct {
	entity.User
	UserField *entity.User `json:"user"`
	Token     string       `json:"token"`
}

// Login exchanges credentials for a session.
func (a *AccountClient) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var out loginResponse
	err := a.c.postJSON(ctx, "/login", body, &out)
	if err != nil {
		switch statusOf(err) {
		case http.StatusForbidden:
			return nil, domain.ErrEmailNotVerified
		case http.StatusUnauthorized, http.StatusNotFound, http.StatusBadRequest:
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCredentials, err)
		}
		return nil, err
	}

	sess := &entity.Session{User: out.User, Token: out.Token}
	if out.UserField != nil {
		sess.User = *out.UserField
	}
	if sess.User.Email == "" {
		sess.User.Email = email
	}
	return sess, nil
}

// Register creates a new user; domain.ErrEmailTaken on a conflict.
func (a *AccountClient) Register(ctx context.Context, name, email, phone, password string) error {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"phone":    phone,
		"password": password,
	}
	err := a.c.postJSON(ctx, "/register", body, nil)
	if err != nil && statusOf(err) == http.StatusConflict {
		return domain.ErrEmailTaken
	}
	return err
}

// CheckAuth revalidates a bearer token against /auth/check.
func (a *AccountClient) CheckAuth(ctx context.Context, token string) (*entity.User, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	var user entity.User
	err := a.c.getJSON(ctx, "/auth/check", nil, header, &user)
	if err != nil {
		switch {
		case statusOf(err) == http.StatusTooManyRequests:
			return nil, domain.ErrRateLimited
		case statusOf(err) != 0:
			return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail fetches a profile record.
func (a *AccountClient) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	q := url.Values{}
	q.Set("email", email)

	var user entity.User
	err := a.c.getJSON(ctx, "/users/by-email", q, nil, &user)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
