package dto

import "github.com/dias012rrr/fooddelivery/internal/domain/entity"

// LoginRequest credentials for /auth/login.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// RegisterRequest body for /auth/register.
type RegisterRequest struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Phone           string `json:"phone" form:"phone"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

// SessionResponse the signed-in user as returned to the page.
type SessionResponse struct {
	User          entity.User `json:"user"`
	Authenticated bool        `json:"authenticated"`
}

// LocalSignUpRequest body for the offline multi-account sign-up.
type LocalSignUpRequest struct {
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Password string `json:"password" form:"password"`
}

// LocalSignInRequest body for the offline multi-account sign-in.
type LocalSignInRequest struct {
	EmailOrPhone string `json:"email_or_phone" form:"email_or_phone"`
	Password     string `json:"password" form:"password"`
}
