package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenAndInitSchema(t *testing.T) {
	db, err := Open("file:dbinit?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, InitSchema(ctx, db))
	// Schema assertion is idempotent across restarts.
	require.NoError(t, InitSchema(ctx, db))

	for _, table := range []string{"users", "cats"} {
		var name string
		err := db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}
