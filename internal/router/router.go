// Package router wires handlers and middleware onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/breedbook/breedbook/internal/config"
	"github.com/breedbook/breedbook/internal/handler"
	"github.com/breedbook/breedbook/internal/middleware"
)

// Register mounts all routes. The auth routes exist only when cfg.AuthEnabled
// is set; the listing stays public either way (recorded decision: it is the
// redirect target of "/" and the post-login landing page). The refresh hook
// is unauthenticated by contract but rate limited, and the listing response
// is cached for anonymous visitors when Redis is available.
func Register(e *echo.Echo, cfg config.Config, rdb *redis.Client, breeds *handler.BreedHandler, auth *handler.AuthHandler) {
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e.GET("/healthz", handler.Health)
	e.GET("/", breeds.Home)
	e.GET("/update_database", breeds.Refresh, limit)

	if !cfg.AuthEnabled {
		e.GET("/cats", breeds.List, cache)
		return
	}

	e.GET("/cats", breeds.List, cache, middleware.CurrentUser(cfg.SessionSecret))
	e.GET("/register", auth.ShowRegister)
	e.POST("/register", auth.Register)
	e.GET("/login", auth.ShowLogin)
	e.POST("/login", auth.Login)
	e.GET("/logout", auth.Logout, middleware.RequireLogin(cfg.SessionSecret))
}
