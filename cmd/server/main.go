package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/breedbook/breedbook/internal/catapi"
	"github.com/breedbook/breedbook/internal/config"
	"github.com/breedbook/breedbook/internal/database"
	"github.com/breedbook/breedbook/internal/handler"
	"github.com/breedbook/breedbook/internal/repository"
	"github.com/breedbook/breedbook/internal/router"
	"github.com/breedbook/breedbook/internal/view"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("open database %s: %v", cfg.DatabasePath, err)
	}
	defer func() { _ = db.Close() }()

	initCtx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.InitSchema(initCtx, db); err != nil {
		cancelInit()
		log.Fatalf("init schema: %v", err)
	}
	cancelInit()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, cache and rate limiting disabled")
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}

	e := defineServer()
	e.Renderer = renderer

	breeds := handler.NewBreedHandler(cfg, repository.NewBreedRepo(db), catapi.New(cfg.CatAPIURL))
	auth := handler.NewAuthHandler(cfg, repository.NewUserRepo(db))
	router.Register(e, cfg, rdb, breeds, auth)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, auth=%v)", addr, cfg.Env, cfg.AuthEnabled)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Printf("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}

func defineServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/healthz"
		},
		LogStatus:  true,
		LogLatency: true,
		LogMethod:  true,
		LogURI:     true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			if v.Error != nil {
				log.Printf("%s %s - Status: %d - Latency: %v - Error: %v",
					v.Method, v.URI, v.Status, v.Latency, v.Error)
			} else {
				log.Printf("%s %s - Status: %d - Latency: %v",
					v.Method, v.URI, v.Status, v.Latency)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Pre(echomw.RemoveTrailingSlash())

	return e
}
