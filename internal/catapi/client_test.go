package catapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImageURL(t *testing.T) {
	require.Equal(t, "", ImageURL(""))
	require.Equal(t, "https://cdn2.thecatapi.com/images/abc123.jpg", ImageURL("abc123"))
	require.Equal(t, "https://cdn2.thecatapi.com/images/0XYvRd7oD.jpg", ImageURL("0XYvRd7oD"))
}

func TestFetchBreeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"Abyssinian","description":"Active","reference_image_id":"0XYvRd7oD"},
			{"name":"Aegean"}
		]`))
	}))
	defer srv.Close()

	breeds, err := New(srv.URL).FetchBreeds(context.Background())
	require.NoError(t, err)
	require.Len(t, breeds, 2)
	require.Equal(t, "Abyssinian", breeds[0].Name)
	require.Equal(t, "Active", breeds[0].Description)
	require.Equal(t, "0XYvRd7oD", breeds[0].ReferenceImageID)
	require.Equal(t, "Aegean", breeds[1].Name)
	require.Empty(t, breeds[1].Description)
	require.Empty(t, breeds[1].ReferenceImageID)
}

func TestFetchBreedsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL).FetchBreeds(context.Background())
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestFetchBreedsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).FetchBreeds(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUpstreamUnavailable)
}
