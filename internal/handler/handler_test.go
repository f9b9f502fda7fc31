package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/breedbook/breedbook/internal/catapi"
	"github.com/breedbook/breedbook/internal/config"
	"github.com/breedbook/breedbook/internal/database"
	"github.com/breedbook/breedbook/internal/handler"
	"github.com/breedbook/breedbook/internal/repository"
	"github.com/breedbook/breedbook/internal/router"
	"github.com/breedbook/breedbook/internal/view"
)

// newTestApp wires the full route table against an in-memory database and
// the given upstream URL. Iterations are lowered so hashing does not
// dominate the test run.
func newTestApp(t *testing.T, dbName, upstreamURL string, authEnabled bool) *echo.Echo {
	t.Helper()

	db, err := database.Open("file:" + dbName + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.InitSchema(context.Background(), db))

	cfg := config.Config{
		Env:              "test",
		Port:             "0",
		CatAPIURL:        upstreamURL,
		AuthEnabled:      authEnabled,
		SessionSecret:    "test-secret",
		SessionTTLMin:    60,
		PBKDF2Iterations: 1000,
	}

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer

	breeds := handler.NewBreedHandler(cfg, repository.NewBreedRepo(db), catapi.New(cfg.CatAPIURL))
	auth := handler.NewAuthHandler(cfg, repository.NewUserRepo(db))
	router.Register(e, cfg, nil, breeds, auth)
	return e
}

func postForm(e *echo.Echo, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func get(e *echo.Echo, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
