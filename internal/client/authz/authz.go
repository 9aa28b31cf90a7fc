// Package authz computes per-paste permissions from the current identity.
//
// The predicates are advisory: the server is the enforcement point. The
// client computes them identically at every call site so that no edit or
// delete affordance is ever shown for a paste the server would reject, and
// hidden content is never rendered for principals who may not see it.
package authz

import "github.com/dmitrijs2005/snipshare/internal/client/models"

// CanView reports whether identity may read the paste. Public pastes are
// readable by everyone, including anonymous (nil) identities; hidden
// pastes only by their owner or an administrator.
func CanView(identity *models.Identity, paste *models.Paste) bool {
	if !paste.Hidden {
		return true
	}
	return identity != nil && (identity.ID == paste.UserID || identity.IsAdmin)
}

// CanEdit reports whether identity may modify the paste: owner or admin.
func CanEdit(identity *models.Identity, paste *models.Paste) bool {
	return identity != nil && (identity.ID == paste.UserID || identity.IsAdmin)
}

// CanDelete reports whether identity may delete the paste. The rule is
// currently identical to CanEdit but the two are exposed independently in
// the UI and may diverge.
func CanDelete(identity *models.Identity, paste *models.Paste) bool {
	return CanEdit(identity, paste)
}
