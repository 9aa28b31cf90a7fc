// Package drafts stores paste drafts in the client's local sqlite
// database so a paste can be composed before publishing.
package drafts

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/snipshare/internal/client/models"
)

// ErrDraftNotFound is returned when the requested draft id is absent.
var ErrDraftNotFound = errors.New("draft not found")

type Repository interface {
	// Save inserts the draft or replaces an existing one with the same id.
	Save(ctx context.Context, draft *models.Draft) error
	// Get returns the draft or (nil, nil) when absent.
	Get(ctx context.Context, id string) (*models.Draft, error)
	// List returns all drafts, most recently updated first.
	List(ctx context.Context) ([]*models.Draft, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}
