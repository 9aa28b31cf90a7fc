package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/snipshare/internal/client/api"
	"github.com/dmitrijs2005/snipshare/internal/client/models"
	"github.com/dmitrijs2005/snipshare/internal/client/repositories/drafts"
	"github.com/dmitrijs2005/snipshare/internal/logging"
	"github.com/google/uuid"
)

// PasteService covers paste CRUD plus the local draft workflow: a paste
// can be composed offline as a draft and published later.
type PasteService interface {
	Create(ctx context.Context, req *models.PasteRequest) (*models.Paste, error)
	Get(ctx context.Context, id string) (*models.Paste, error)
	Update(ctx context.Context, id string, req *models.PasteRequest) (*models.Paste, error)
	Delete(ctx context.Context, id string) error
	Mine(ctx context.Context) ([]*models.Paste, error)
	RecordView(ctx context.Context, id string) (int64, error)

	SaveDraft(ctx context.Context, draft *models.Draft) (string, error)
	Drafts(ctx context.Context) ([]*models.Draft, error)
	DeleteDraft(ctx context.Context, id string) error
	PublishDraft(ctx context.Context, draftID string) (*models.Paste, error)
}

type pasteService struct {
	api    api.Client
	drafts drafts.Repository
	log    logging.Logger
}

func NewPasteService(apiClient api.Client, draftRepo drafts.Repository, log logging.Logger) PasteService {
	return &pasteService{api: apiClient, drafts: draftRepo, log: log}
}

func (p *pasteService) Create(ctx context.Context, req *models.PasteRequest) (*models.Paste, error) {
	if req.Title == "" {
		return nil, &ValidationError{Reason: "title is required"}
	}
	if req.Content == "" {
		return nil, &ValidationError{Reason: "content is required"}
	}
	return p.api.CreatePaste(ctx, req)
}

func (p *pasteService) Get(ctx context.Context, id string) (*models.Paste, error) {
	return p.api.GetPaste(ctx, id)
}

func (p *pasteService) Update(ctx context.Context, id string, req *models.PasteRequest) (*models.Paste, error) {
	return p.api.UpdatePaste(ctx, id, req)
}

func (p *pasteService) Delete(ctx context.Context, id string) error {
	return p.api.DeletePaste(ctx, id)
}

func (p *pasteService) Mine(ctx context.Context) ([]*models.Paste, error) {
	return p.api.MyPastes(ctx)
}

// RecordView bumps the paste's view counter. The call needs no
// authentication and no ownership.
func (p *pasteService) RecordView(ctx context.Context, id string) (int64, error) {
	return p.api.IncrementViews(ctx, id)
}

// SaveDraft stores the draft locally, assigning an id when it has none,
// and returns the id.
func (p *pasteService) SaveDraft(ctx context.Context, draft *models.Draft) (string, error) {
	if draft.Title == "" && draft.Content == "" {
		return "", &ValidationError{Reason: "draft is empty"}
	}
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	if err := p.drafts.Save(ctx, draft); err != nil {
		return "", fmt.Errorf("saving draft: %w", err)
	}
	return draft.ID, nil
}

func (p *pasteService) Drafts(ctx context.Context) ([]*models.Draft, error) {
	return p.drafts.List(ctx)
}

func (p *pasteService) DeleteDraft(ctx context.Context, id string) error {
	return p.drafts.Delete(ctx, id)
}

// PublishDraft creates a server paste from a local draft. The draft is
// removed only after the server confirms the create, so a failed publish
// keeps the draft intact.
func (p *pasteService) PublishDraft(ctx context.Context, draftID string) (*models.Paste, error) {
	draft, err := p.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("loading draft: %w", err)
	}
	if draft == nil {
		return nil, drafts.ErrDraftNotFound
	}

	paste, err := p.Create(ctx, &models.PasteRequest{
		Title:   draft.Title,
		Content: draft.Content,
		Hidden:  draft.Hidden,
	})
	if err != nil {
		return nil, err
	}

	if err := p.drafts.Delete(ctx, draftID); err != nil {
		p.log.Warn(ctx, "published draft could not be removed locally",
			"draft_id", draftID, "error", err.Error())
	}
	return paste, nil
}
