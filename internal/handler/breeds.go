package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/breedbook/breedbook/internal/catapi"
	"github.com/breedbook/breedbook/internal/config"
	"github.com/breedbook/breedbook/internal/queue"
	"github.com/breedbook/breedbook/internal/repository"
	queue_publisher "github.com/breedbook/breedbook/internal/service"
)

// BreedHandler serves the breed listing and the cache refresh hook.
type BreedHandler struct {
	Cfg    config.Config
	Breeds *repository.BreedRepo
	API    *catapi.Client
}

func NewBreedHandler(cfg config.Config, b *repository.BreedRepo, api *catapi.Client) *BreedHandler {
	return &BreedHandler{Cfg: cfg, Breeds: b, API: api}
}

type catsPage struct {
	Breeds      []repository.Breed
	Flash       string
	AuthEnabled bool
	LoggedIn    bool
}

// Home redirects to the breed listing.
func (h *BreedHandler) Home(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/cats")
}

// List renders all cached breeds in insertion order.
func (h *BreedHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	breeds, err := h.Breeds.ListAll(ctx)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "cats.html", catsPage{
		Breeds:      breeds,
		Flash:       takeFlash(c),
		AuthEnabled: h.Cfg.AuthEnabled,
		LoggedIn:    c.Get("user_id") != nil,
	})
}

// Refresh runs the fetch → map → replace pipeline. A non-200 or unreachable
// upstream yields the plain failure message with nothing replaced; storage
// and decode faults propagate to the error handler.
func (h *BreedHandler) Refresh(c echo.Context) error {
	ctx := c.Request().Context()

	upstream, err := h.API.FetchBreeds(ctx)
	if err != nil {
		var urlErr *url.Error
		if errors.Is(err, catapi.ErrUpstreamUnavailable) || errors.As(err, &urlErr) {
			return c.String(http.StatusOK, "Failed to update database")
		}
		return err
	}

	breeds := make([]repository.Breed, 0, len(upstream))
	for _, b := range upstream {
		breeds = append(breeds, repository.Breed{
			Name:        b.Name,
			Description: b.Description,
			ImageURL:    catapi.ImageURL(b.ReferenceImageID),
		})
	}
	if err := h.Breeds.ReplaceAll(ctx, breeds); err != nil {
		return err
	}

	_ = queue_publisher.PublishBreedsRefreshed(ctx, queue.BreedsRefreshedEvent{
		Count:       len(breeds),
		RefreshedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.String(http.StatusOK, "Database updated successfully")
}
