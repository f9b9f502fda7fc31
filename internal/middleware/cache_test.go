package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/breedbook/breedbook/internal/config"
	"github.com/breedbook/breedbook/internal/utils"
)

func cacheTestConfig() config.CacheConfig {
	return config.CacheConfig{
		Enabled:      true,
		Methods:      map[string]bool{"GET": true},
		TTL:          time.Minute,
		Prefix:       "cache",
		MaxBodyBytes: 1 << 20,
	}
}

func newCacheEcho(t *testing.T) (*echo.Echo, *int) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	calls := 0
	e := echo.New()
	e.GET("/cats", func(c echo.Context) error {
		calls++
		return c.String(http.StatusOK, fmt.Sprintf("render-%d", calls))
	}, NewRedisCache(cacheTestConfig(), rdb))
	return e, &calls
}

func TestCacheMissThenHit(t *testing.T) {
	e, calls := newCacheEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	require.Equal(t, "render-1", rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	require.Equal(t, "render-1", rec.Body.String())
	require.Equal(t, 1, *calls)
}

func TestCacheBypassForSessionCookie(t *testing.T) {
	e, calls := newCacheEcho(t)

	// Prime the cache anonymously.
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/cats", nil))
	require.Equal(t, 1, *calls)

	req := httptest.NewRequest(http.MethodGet, "/cats", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: "some-token"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("X-Cache"))
	require.Equal(t, "render-2", rec.Body.String())
}

func TestCacheBypassForFlashCookie(t *testing.T) {
	e, calls := newCacheEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/cats", nil)
	req.AddCookie(&http.Cookie{Name: utils.FlashCookieName, Value: "notice"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("X-Cache"))
	require.Equal(t, 1, *calls)
}

func TestCacheDisabledWithoutRedis(t *testing.T) {
	calls := 0
	e := echo.New()
	e.GET("/cats", func(c echo.Context) error {
		calls++
		return c.String(http.StatusOK, fmt.Sprintf("render-%d", calls))
	}, NewRedisCache(cacheTestConfig(), nil))

	for i := 1; i <= 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cats", nil))
		require.Equal(t, fmt.Sprintf("render-%d", i), rec.Body.String())
	}
}
