package authz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/snipshare/internal/client/models"
)

func paste(owner int64, hidden bool) *models.Paste {
	return &models.Paste{ID: "p1", Title: "t", UserID: owner, Hidden: hidden}
}

func TestCanView_AnonymousSeesOnlyPublic(t *testing.T) {
	require.True(t, CanView(nil, paste(1, false)))
	require.False(t, CanView(nil, paste(1, true)))
}

func TestCanView_OwnerSeesHidden(t *testing.T) {
	owner := &models.Identity{ID: 1, Username: "alice"}
	require.True(t, CanView(owner, paste(1, true)))
	require.True(t, CanView(owner, paste(1, false)))
}

func TestCanView_NonOwnerDeniedHidden(t *testing.T) {
	// authenticated non-owner, non-admin against someone else's hidden paste
	other := &models.Identity{ID: 2, Username: "bob"}
	require.False(t, CanView(other, paste(1, true)))
	require.True(t, CanView(other, paste(1, false)))
}

func TestCanView_AdminSeesEverything(t *testing.T) {
	admin := &models.Identity{ID: 99, Username: "root", IsAdmin: true}
	require.True(t, CanView(admin, paste(1, true)))
	require.True(t, CanView(admin, paste(1, false)))
}

func TestCanEdit(t *testing.T) {
	owner := &models.Identity{ID: 1}
	other := &models.Identity{ID: 2}
	admin := &models.Identity{ID: 3, IsAdmin: true}

	require.False(t, CanEdit(nil, paste(1, false)))
	require.True(t, CanEdit(owner, paste(1, false)))
	require.True(t, CanEdit(owner, paste(1, true)))
	require.False(t, CanEdit(other, paste(1, false)))
	require.True(t, CanEdit(admin, paste(1, true)))
}

// CanDelete must agree with CanEdit for every identity/paste combination
// as long as the rules have not diverged.
func TestCanDeleteMatchesCanEdit(t *testing.T) {
	identities := []*models.Identity{
		nil,
		{ID: 1},
		{ID: 2},
		{ID: 3, IsAdmin: true},
	}
	pastes := []*models.Paste{
		paste(1, false),
		paste(1, true),
		paste(2, false),
		paste(2, true),
	}
	for _, id := range identities {
		for _, p := range pastes {
			require.Equal(t, CanEdit(id, p), CanDelete(id, p))
		}
	}
}
