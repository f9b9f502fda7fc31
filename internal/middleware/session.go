// Package middleware contains reusable HTTP middleware.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/breedbook/breedbook/internal/utils"
)

// RequireLogin returns an Echo middleware that validates the session cookie
// and injects the authenticated user id into the request context as
// "user_id". Because this application serves browsers, an absent or invalid
// session redirects to the login page rather than returning an error.
func RequireLogin(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := sessionUserID(c, secret)
			if !ok {
				return c.Redirect(http.StatusFound, "/login")
			}
			c.Set("user_id", uid)
			return next(c)
		}
	}
}

// CurrentUser injects "user_id" when a valid session cookie is present and
// passes through anonymously otherwise. Pages that render for both states
// use this instead of RequireLogin.
func CurrentUser(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if uid, ok := sessionUserID(c, secret); ok {
				c.Set("user_id", uid)
			}
			return next(c)
		}
	}
}

func sessionUserID(c echo.Context, secret string) (int64, bool) {
	cookie, err := c.Cookie(utils.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return 0, false
	}
	uid, err := utils.ParseSessionToken(secret, cookie.Value)
	if err != nil {
		return 0, false
	}
	return uid, true
}
