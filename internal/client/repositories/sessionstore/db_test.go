package sessionstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitDatabase_CreatesSchema(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "session.db")

	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r := NewSQLiteRepository(db)
	require.NoError(t, r.Set(context.Background(), KeyToken, []byte("tok")))

	v, err := r.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok"), v)
}

func TestInitDatabase_IdempotentMigrations(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Re-opening the same file must not fail on already-applied migrations.
	db2, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db2.Close())
}
