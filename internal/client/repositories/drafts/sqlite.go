package drafts

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/snipshare/internal/client/models"
	"github.com/dmitrijs2005/snipshare/internal/dbx"
)

// maxDrafts bounds the local table; the oldest drafts are pruned once the
// limit is exceeded.
const maxDrafts = 100

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save upserts the draft and prunes the oldest entries beyond maxDrafts,
// in a single transaction.
func (r *SQLiteRepository) Save(ctx context.Context, draft *models.Draft) error {
	draft.UpdatedAt = time.Now().UTC()
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO drafts (id, title, content, hidden, updated_at) VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				title = excluded.title,
				content = excluded.content,
				hidden = excluded.hidden,
				updated_at = excluded.updated_at
		`, draft.ID, draft.Title, draft.Content, draft.Hidden, draft.UpdatedAt.Format(time.RFC3339Nano))
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			DELETE FROM drafts WHERE id NOT IN
				(SELECT id FROM drafts ORDER BY updated_at DESC LIMIT ?)
		`, maxDrafts)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save draft[%s]: %w", draft.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*models.Draft, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, content, hidden, updated_at FROM drafts WHERE id = ?`, id)
	draft, err := scanDraft(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft[%s]: %w", id, err)
	}
	return draft, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.Draft, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, content, hidden, updated_at FROM drafts ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	var result []*models.Draft
	for rows.Next() {
		draft, err := scanDraft(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draft row: %w", err)
		}
		result = append(result, draft)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate draft rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete draft[%s]: %w", id, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM drafts`)
	if err != nil {
		return fmt.Errorf("failed to clear drafts: %w", err)
	}
	return nil
}

func scanDraft(scan func(dest ...any) error) (*models.Draft, error) {
	var d models.Draft
	var hidden int
	var updated string
	if err := scan(&d.ID, &d.Title, &d.Content, &hidden, &updated); err != nil {
		return nil, err
	}
	d.Hidden = hidden != 0
	if t, err := time.Parse(time.RFC3339Nano, updated); err == nil {
		d.UpdatedAt = t
	}
	return &d, nil
}
