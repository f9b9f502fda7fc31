package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/breedbook/breedbook/internal/database"
)

func setupDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	db, err := database.Open("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.InitSchema(context.Background(), db))
	return db
}

func TestBreedReplaceAllAndListAll(t *testing.T) {
	repo := NewBreedRepo(setupDB(t, "breeds1"))
	ctx := context.Background()

	in := []Breed{
		{Name: "Abyssinian", Description: "Active", ImageURL: "https://cdn2.thecatapi.com/images/0XYvRd7oD.jpg"},
		{Name: "Aegean", Description: "", ImageURL: ""},
		{Name: "Bengal", Description: "Energetic", ImageURL: "https://cdn2.thecatapi.com/images/O3btzLlsO.jpg"},
	}
	require.NoError(t, repo.ReplaceAll(ctx, in))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(in))
	for i, b := range got {
		require.Equal(t, in[i].Name, b.Name)
		require.Equal(t, in[i].Description, b.Description)
		require.Equal(t, in[i].ImageURL, b.ImageURL)
		require.Positive(t, b.ID)
		if i > 0 {
			require.Greater(t, b.ID, got[i-1].ID)
		}
	}
}

func TestBreedReplaceAllDropsPriorData(t *testing.T) {
	repo := NewBreedRepo(setupDB(t, "breeds2"))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []Breed{{Name: "Abyssinian"}, {Name: "Aegean"}}))
	require.NoError(t, repo.ReplaceAll(ctx, []Breed{{Name: "Bengal"}}))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Bengal", got[0].Name)
}

func TestBreedReplaceAllEmpty(t *testing.T) {
	repo := NewBreedRepo(setupDB(t, "breeds3"))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []Breed{{Name: "Abyssinian"}}))
	require.NoError(t, repo.ReplaceAll(ctx, nil))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}
