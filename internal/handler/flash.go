package handler

import (
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/breedbook/breedbook/internal/utils"
)

// setFlash stores a one-time notice shown on the next rendered page. The
// message is URL-escaped because cookie values cannot contain spaces.
func setFlash(c echo.Context, message string) {
	c.SetCookie(&http.Cookie{
		Name:     utils.FlashCookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(5 * time.Minute),
	})
}

// takeFlash returns the pending flash message, if any, and clears it so it
// renders exactly once.
func takeFlash(c echo.Context) string {
	cookie, err := c.Cookie(utils.FlashCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	c.SetCookie(&http.Cookie{
		Name:     utils.FlashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	msg, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return msg
}
