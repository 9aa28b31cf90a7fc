// Package repositories wires the client's local sqlite storage.
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/snipshare/internal/client/migrations"
	"github.com/dmitrijs2005/snipshare/internal/client/repositories/drafts"
)

type Repositories struct {
	DB     *sql.DB
	Drafts drafts.Repository
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the local database at dsn,
// applies pending migrations, and returns the repository set.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening local database: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating local database: %w", err)
	}
	return &Repositories{DB: db, Drafts: drafts.NewSQLiteRepository(db)}, nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}
