package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/snipshare/internal/client/api"
	"github.com/dmitrijs2005/snipshare/internal/client/authz"
	"github.com/dmitrijs2005/snipshare/internal/client/guard"
	"github.com/dmitrijs2005/snipshare/internal/client/models"
)

// Dashboard lists the signed-in user's pastes.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.requireAuth(ctx, guard.RouteHome) {
		return nil
	}

	pastes, err := a.pasteService.Mine(ctx)
	if err != nil {
		printlnFn("Could not load your pastes:", err.Error())
		return err
	}
	if len(pastes) == 0 {
		printlnFn("You have no pastes yet. Try 'create'.")
		return nil
	}
	for _, p := range pastes {
		printlnFn(formatPasteLine(p))
	}
	return nil
}

// ShowPaste renders a single paste. The view itself is public; hidden
// pastes are shown only when the authorization predicate allows it, and a
// denied or missing paste falls back to the prompt exactly like the web
// client falls back to the landing page. Each successful view records a
// view-count increment, which needs no authentication.
func (a *App) ShowPaste(ctx context.Context, id string) error {
	ident := a.store.Identity()

	paste, err := a.pasteService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) || errors.Is(err, api.ErrUnauthorized) {
			printlnFn("Paste not found.")
			return nil
		}
		printlnFn("Could not load paste:", err.Error())
		return err
	}

	if !authz.CanView(ident, paste) {
		printlnFn("Paste not found.")
		return nil
	}

	if count, err := a.pasteService.RecordView(ctx, id); err == nil {
		paste.ViewCount = count
	}

	printlnFn(fmt.Sprintf("%s — by %s on %s (%d views)",
		paste.Title, paste.Username, paste.CreatedAt.Format(time.DateOnly), paste.ViewCount))
	if paste.Hidden {
		printlnFn("[hidden paste]")
	}
	printlnFn("")
	printlnFn(paste.Content)
	printlnFn("")

	// Affordances mirror the predicates; the server would reject anything else.
	if authz.CanEdit(ident, paste) {
		printlnFn("You can 'edit " + paste.ID + "' or 'delete " + paste.ID + "'.")
	}
	return nil
}

// CreatePaste prompts for a new paste and submits it.
func (a *App) CreatePaste(ctx context.Context) error {
	if !a.requireAuth(ctx, guard.RouteHome) {
		return nil
	}

	req, err := a.promptPaste(&models.PasteRequest{})
	if err != nil {
		return err
	}

	paste, err := a.pasteService.Create(ctx, req)
	if err != nil {
		printlnFn("Create failed:", err.Error())
		return err
	}
	printlnFn("Created paste", paste.ID)
	return nil
}

// EditPaste updates a paste after checking the edit predicate, so no edit
// flow is offered for a paste the server would reject.
func (a *App) EditPaste(ctx context.Context, id string) error {
	if !a.requireAuth(ctx, guard.RouteHome) {
		return nil
	}

	paste, err := a.pasteService.Get(ctx, id)
	if err != nil {
		printlnFn("Could not load paste:", err.Error())
		return err
	}
	if !authz.CanEdit(a.store.Identity(), paste) {
		printlnFn("You cannot edit this paste.")
		return nil
	}

	req, err := a.promptPaste(&models.PasteRequest{
		Title:   paste.Title,
		Content: paste.Content,
		Hidden:  paste.Hidden,
	})
	if err != nil {
		return err
	}

	if _, err := a.pasteService.Update(ctx, id, req); err != nil {
		printlnFn("Update failed:", err.Error())
		return err
	}
	printlnFn("Updated paste", id)
	return nil
}

// DeletePaste removes a paste after checking the delete predicate.
func (a *App) DeletePaste(ctx context.Context, id string) error {
	if !a.requireAuth(ctx, guard.RouteHome) {
		return nil
	}

	paste, err := a.pasteService.Get(ctx, id)
	if err != nil {
		printlnFn("Could not load paste:", err.Error())
		return err
	}
	if !authz.CanDelete(a.store.Identity(), paste) {
		printlnFn("You cannot delete this paste.")
		return nil
	}

	ok, err := GetYesNo(a.reader, "Delete '"+paste.Title+"'?", os.Stdout)
	if err != nil || !ok {
		return err
	}

	if err := a.pasteService.Delete(ctx, id); err != nil {
		printlnFn("Delete failed:", err.Error())
		return err
	}
	printlnFn("Deleted paste", id)
	return nil
}

// DraftList shows locally stored drafts.
func (a *App) DraftList(ctx context.Context) error {
	if !a.requireAuth(ctx, routeDrafts) {
		return nil
	}
	drafts, err := a.pasteService.Drafts(ctx)
	if err != nil {
		printlnFn("Could not load drafts:", err.Error())
		return err
	}
	if len(drafts) == 0 {
		printlnFn("No drafts. Try 'draft'.")
		return nil
	}
	for _, d := range drafts {
		printlnFn(fmt.Sprintf("%s  %s  (updated %s)", d.ID, d.Title,
			d.UpdatedAt.Format(time.DateTime)))
	}
	return nil
}

// DraftNew composes a draft locally without touching the server.
func (a *App) DraftNew(ctx context.Context) error {
	if !a.requireAuth(ctx, routeDrafts) {
		return nil
	}

	req, err := a.promptPaste(&models.PasteRequest{})
	if err != nil {
		return err
	}

	id, err := a.pasteService.SaveDraft(ctx, &models.Draft{
		Title:   req.Title,
		Content: req.Content,
		Hidden:  req.Hidden,
	})
	if err != nil {
		printlnFn("Could not save draft:", err.Error())
		return err
	}
	printlnFn("Saved draft", id)
	return nil
}

func (a *App) DraftDelete(ctx context.Context, id string) error {
	if !a.requireAuth(ctx, routeDrafts) {
		return nil
	}
	if err := a.pasteService.DeleteDraft(ctx, id); err != nil {
		printlnFn("Could not delete draft:", err.Error())
		return err
	}
	printlnFn("Deleted draft", id)
	return nil
}

// DraftPublish turns a local draft into a server paste.
func (a *App) DraftPublish(ctx context.Context, id string) error {
	if !a.requireAuth(ctx, routeDrafts) {
		return nil
	}
	paste, err := a.pasteService.PublishDraft(ctx, id)
	if err != nil {
		printlnFn("Publish failed:", err.Error())
		return err
	}
	printlnFn("Published paste", paste.ID)
	return nil
}

func (a *App) promptPaste(defaults *models.PasteRequest) (*models.PasteRequest, error) {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return nil, err
	}
	if title == "" {
		title = defaults.Title
	}

	content, err := GetMultiline(a.reader, "Content", os.Stdout)
	if err != nil {
		return nil, err
	}
	if content == "" {
		content = defaults.Content
	}

	hidden, err := GetYesNo(a.reader, "Hidden?", os.Stdout)
	if err != nil {
		return nil, err
	}

	return &models.PasteRequest{Title: title, Content: content, Hidden: hidden}, nil
}

func formatPasteLine(p *models.Paste) string {
	visibility := "public"
	if p.Hidden {
		visibility = "hidden"
	}
	return fmt.Sprintf("%s  %-30s  %s  %s  %d views",
		p.ID, p.Title, visibility, p.CreatedAt.Format(time.DateOnly), p.ViewCount)
}
