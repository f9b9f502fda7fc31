// Package catapi is a minimal client for TheCatAPI breeds endpoint.
package catapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// ImageBaseURL is the CDN prefix for breed reference images.
const ImageBaseURL = "https://cdn2.thecatapi.com/images/"

// ErrUpstreamUnavailable is returned when the breeds endpoint answers with a
// non-200 status. The status code and body are deliberately not surfaced;
// callers only need to know the refresh cannot proceed.
var ErrUpstreamUnavailable = errors.New("cat api unavailable")

// Breed is one element of the upstream breeds array. Only the fields this
// application stores are decoded.
type Breed struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	ReferenceImageID string `json:"reference_image_id"`
}

// Client fetches breed data from a fixed endpoint.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a client for the given breeds endpoint URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchBreeds performs a single GET against the breeds endpoint. A 200
// response is decoded into the breed slice; any other status yields
// ErrUpstreamUnavailable. Transport and decode errors propagate unwrapped,
// there is no retry.
func (c *Client) FetchBreeds(ctx context.Context) ([]Breed, error) {
	// Bind the request to the caller's context so a handler timeout also
	// cancels the upstream call.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		// Transport-level failure (DNS, refused connection, timeout).
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	// Anything other than 200 counts as the upstream being down.
	if resp.StatusCode != http.StatusOK {
		return nil, ErrUpstreamUnavailable
	}

	// Decode straight from the body; the payload is a plain JSON array.
	var breeds []Breed
	if err := json.NewDecoder(resp.Body).Decode(&breeds); err != nil {
		return nil, err
	}
	return breeds, nil
}

// ImageURL maps a reference image id to its CDN URL. An empty id maps to an
// empty URL so templates can skip the img tag.
func ImageURL(imageID string) string {
	if imageID == "" {
		return ""
	}
	return ImageBaseURL + imageID + ".jpg"
}
