package session

import (
	"context"

	"github.com/dmitrijs2005/snipshare/internal/client/api"
	"github.com/dmitrijs2005/snipshare/internal/logging"
)

// Resolver answers "who am I" against the server and refreshes the Store.
// It runs once on startup and again after every auth-mutating action.
type Resolver struct {
	api   api.Client
	store *Store
	log   logging.Logger
}

func NewResolver(apiClient api.Client, store *Store, log logging.Logger) *Resolver {
	return &Resolver{api: apiClient, store: store, log: log}
}

// Resolve performs one resolution pass: identity first, then — only if the
// identity check succeeded — the current API key. The pass is idempotent
// and safe to invoke concurrently; each pass writes its identity/key pair
// to the store in one atomic update.
//
// A failed identity check is not an error: it resolves silently to
// Anonymous. A failed key fetch after a confirmed identity keeps the user
// authenticated without a cached key; requests then ride the session
// cookie.
func (r *Resolver) Resolve(ctx context.Context) {
	identity, err := r.api.WhoAmI(ctx)
	if err != nil {
		r.log.Debug(ctx, "session resolved as anonymous", "reason", err.Error())
		r.store.SetResolved(nil, "", true)
		return
	}

	key, err := r.api.CurrentAPIKey(ctx)
	if err != nil {
		r.log.Warn(ctx, "api key fetch failed, keeping cookie session",
			"username", identity.Username, "error", err.Error())
		r.store.SetResolved(identity, "", false)
		return
	}

	r.store.SetResolved(identity, key, true)
}
