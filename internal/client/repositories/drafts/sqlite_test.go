package drafts

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/snipshare/internal/client/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:draftsrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS drafts (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  content TEXT NOT NULL,
  hidden INTEGER NOT NULL DEFAULT 0,
  updated_at TEXT NOT NULL
);
DELETE FROM drafts;
`)
	require.NoError(t, err)
	return db
}

func TestSaveAndGet(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	draft := &models.Draft{ID: "d1", Title: "notes", Content: "hello", Hidden: true}
	require.NoError(t, repo.Save(ctx, draft))

	got, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "notes", got.Title)
	require.Equal(t, "hello", got.Content)
	require.True(t, got.Hidden)
	require.False(t, got.UpdatedAt.IsZero())
}

func TestGetMissingReturnsNil(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)

	got, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSaveUpserts(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &models.Draft{ID: "d1", Title: "v1", Content: "a"}))
	require.NoError(t, repo.Save(ctx, &models.Draft{ID: "d1", Title: "v2", Content: "b"}))

	got, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	require.Equal(t, "v2", got.Title)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestDeleteAndClear(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &models.Draft{ID: "d1", Title: "t", Content: "c"}))
	require.NoError(t, repo.Save(ctx, &models.Draft{ID: "d2", Title: "t", Content: "c"}))

	require.NoError(t, repo.Delete(ctx, "d1"))
	got, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, repo.Clear(ctx))
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}
