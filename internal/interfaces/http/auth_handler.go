package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/dias012rrr/fooddelivery/internal/application/auth"
	"github.com/dias012rrr/fooddelivery/internal/application/dto"
	"github.com/dias012rrr/fooddelivery/internal/domain"
	"github.com/dias012rrr/fooddelivery/pkg/logger"
)

// AuthHandler serves the auth page and the session endpoints.
type AuthHandler struct {
	auths *auth.UseCase
	local *auth.AccountManager
	pages *PageRenderer
	log   *logger.Logger
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(auths *auth.UseCase, local *auth.AccountManager, pages *PageRenderer, log *logger.Logger) *AuthHandler {
	return &AuthHandler{auths: auths, local: local, pages: pages, log: log}
}

// Page renders the sign-in / sign-up page.
func (h *AuthHandler) Page(c *fiber.Ctx) error {
	body, err := h.pages.views.AuthPage("")
	if err != nil {
		return err
	}
	return h.pages.sendPage(c, "Sign In", body)
}

// Login opens a backend session from the sign-in form.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request."})
	}

	sess, err := h.auths.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		return fail(c, err, loginNotice(err))
	}
	return c.JSON(dto.SessionResponse{User: sess.User, Authenticated: true})
}

// Register creates a backend account. The user signs in afterwards;
// registration does not open a session.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request."})
	}

	if in.Password != in.ConfirmPassword {
		return fail(c, domain.ErrInvalidInput, "Passwords do not match")
	}

	if err := h.auths.Register(c.Context(), in.Name, in.Email, in.Phone, in.Password, in.ConfirmPassword); err != nil {
		return fail(c, err, registerNotice(err))
	}
	return c.JSON(dto.NoticeResponse{Notice: "Registration successful! Please sign in."})
}

// Logout closes the session unconditionally and sends the user back to
// the menu page.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auths.Logout(); err != nil {
		return fail(c, err, "")
	}
	return c.Redirect("/menu", fiber.StatusSeeOther)
}

// Session reports the current session, signed-in or not.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	sess, err := h.auths.Current()
	if err != nil {
		return fail(c, err, "")
	}
	if sess == nil {
		return c.JSON(dto.SessionResponse{})
	}
	return c.JSON(dto.SessionResponse{User: sess.User, Authenticated: true})
}

// LocalSignUp registers an offline account in the local multi-account list.
func (h *AuthHandler) LocalSignUp(c *fiber.Ctx) error {
	var in dto.LocalSignUpRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request."})
	}

	if _, err := h.local.SignUp(in.Email, in.Phone, in.Password); err != nil {
		return localFail(c, err)
	}
	return c.JSON(dto.NoticeResponse{Notice: "Account created."})
}

// LocalSignIn matches against the local multi-account list.
func (h *AuthHandler) LocalSignIn(c *fiber.Ctx) error {
	var in dto.LocalSignInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request."})
	}

	account, err := h.local.SignIn(in.EmailOrPhone, in.Password)
	if err != nil {
		return localFail(c, err)
	}
	return c.JSON(fiber.Map{"email": account.Email, "phone": account.Phone})
}

// LocalSwitch selects a stored local account by its list position.
func (h *AuthHandler) LocalSwitch(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "Invalid account."})
	}

	account, err := h.local.Switch(index)
	if err != nil {
		return localFail(c, err)
	}
	return c.JSON(fiber.Map{"email": account.Email, "phone": account.Phone})
}

func loginNotice(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "Please fill in all required fields."
	case errors.Is(err, domain.ErrEmailNotVerified):
		return "Please verify your email before signing in."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Invalid email or password."
	}
	return "Sign in failed. Please try again."
}

func registerNotice(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "Please fill in all required fields."
	case errors.Is(err, domain.ErrEmailTaken):
		return "An account with this email already exists."
	}
	return "Registration failed. Please try again."
}

// localFail surfaces the local validation errors verbatim; they are the
// inline form messages.
func localFail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrFieldsRequired),
		errors.Is(err, auth.ErrInvalidEmail),
		errors.Is(err, auth.ErrInvalidPhone),
		errors.Is(err, auth.ErrPasswordTooWeak):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return fail(c, err, localNotice(err))
}

func localNotice(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return "An account with this email or phone already exists."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Invalid credentials."
	case errors.Is(err, domain.ErrNotFound):
		return "Account not found."
	}
	return ""
}
