package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/breedbook/breedbook/internal/config"
	"github.com/breedbook/breedbook/internal/queue"
	"github.com/breedbook/breedbook/internal/repository"
	queue_publisher "github.com/breedbook/breedbook/internal/service"
	"github.com/breedbook/breedbook/internal/utils"
)

// duplicateEmailMessage is shown both by the advisory pre-check and when the
// insert itself hits the UNIQUE constraint, so the two paths are
// indistinguishable to the user.
const duplicateEmailMessage = "Email address already registered"

// invalidCredentialsMessage is the single message for every login failure.
// Unknown email and wrong password must not be distinguishable, to avoid
// user enumeration.
const invalidCredentialsMessage = "Invalid email or password"

// AuthHandler bundles dependencies for the registration, login and logout
// pages.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

type formPage struct {
	Form  any
	Flash string
}

// ShowRegister renders an empty registration form.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", formPage{
		Form:  RegisterForm{Errors: map[string]string{}},
		Flash: takeFlash(c),
	})
}

// Register validates the submitted form, hashes the password and persists
// the user. Every failure path re-renders the form with HTTP 200 and
// persists nothing; success flashes a notice and redirects to the login
// page.
func (h *AuthHandler) Register(c echo.Context) error {
	form := RegisterForm{
		Email:           c.FormValue("email"),
		Password:        c.FormValue("password"),
		ConfirmPassword: c.FormValue("confirm_password"),
	}
	if !form.Validate() {
		return c.Render(http.StatusOK, "register.html", formPage{Form: form, Flash: takeFlash(c)})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Advisory pre-check for a friendly message; the UNIQUE constraint below
	// remains the authoritative guard against concurrent registration.
	if _, err := h.Users.GetByEmail(ctx, form.Email); err == nil {
		form.Errors["email"] = duplicateEmailMessage
		return c.Render(http.StatusOK, "register.html", formPage{Form: form, Flash: takeFlash(c)})
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hash, err := utils.HashPassword(form.Password, h.Cfg.PBKDF2Iterations)
	if err != nil {
		return err
	}
	uid, err := h.Users.Create(ctx, form.Email, hash)
	if errors.Is(err, repository.ErrEmailExists) {
		form.Errors["email"] = duplicateEmailMessage
		return c.Render(http.StatusOK, "register.html", formPage{Form: form, Flash: takeFlash(c)})
	}
	if err != nil {
		return err
	}

	_ = queue_publisher.PublishUserRegistered(ctx, queue.UserRegisteredEvent{
		UserID:       uid,
		Email:        form.Email,
		RegisteredAt: time.Now().UTC().Format(time.RFC3339),
	})

	setFlash(c, "Registration successful! Please log in.")
	return c.Redirect(http.StatusFound, "/login")
}

// ShowLogin renders an empty login form.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", formPage{
		Form:  LoginForm{Errors: map[string]string{}},
		Flash: takeFlash(c),
	})
}

// Login verifies the submitted credentials and establishes the session
// cookie. Unknown email and wrong password take the same path to the same
// message.
func (h *AuthHandler) Login(c echo.Context) error {
	form := LoginForm{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}
	if !form.Validate() {
		return c.Render(http.StatusOK, "login.html", formPage{Form: form, Flash: takeFlash(c)})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, form.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			form.Errors["form"] = invalidCredentialsMessage
			return c.Render(http.StatusOK, "login.html", formPage{Form: form, Flash: takeFlash(c)})
		}
		return err
	}
	if !utils.VerifyPassword(user.Password, form.Password) {
		form.Errors["form"] = invalidCredentialsMessage
		return c.Render(http.StatusOK, "login.html", formPage{Form: form, Flash: takeFlash(c)})
	}

	token, exp, err := utils.NewSessionToken(h.Cfg.SessionSecret, user.ID, h.Cfg.SessionTTLMin)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     utils.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/cats")
}

// Logout clears the session cookie and redirects to the login page. The
// route is guarded, so an anonymous request never reaches this handler.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     utils.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return c.Redirect(http.StatusFound, "/login")
}
