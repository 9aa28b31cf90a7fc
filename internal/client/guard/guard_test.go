package guard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/snipshare/internal/client/models"
	"github.com/dmitrijs2005/snipshare/internal/client/session"
)

func snap(state session.State, ident *models.Identity) session.Snapshot {
	return session.Snapshot{State: state, Identity: ident}
}

func TestAuthenticated_Resolving(t *testing.T) {
	d := Authenticated(snap(session.StateResolving, nil), RouteHome)
	require.Equal(t, Loading, d.Action)
}

func TestAuthenticated_AnonymousRedirectsToLoginWithReturn(t *testing.T) {
	d := Authenticated(snap(session.StateAnonymous, nil), "drafts")
	require.Equal(t, Redirect, d.Action)
	require.Equal(t, RouteLogin, d.Target)
	require.Equal(t, "drafts", d.ReturnTo)
}

func TestAuthenticated_Renders(t *testing.T) {
	d := Authenticated(snap(session.StateAuthenticated, &models.Identity{ID: 1}), RouteHome)
	require.Equal(t, Render, d.Action)
}

func TestAdminGuard_TransitionTable(t *testing.T) {
	g := NewAdminGuard()

	d := g.Evaluate(snap(session.StateResolving, nil), "admin/users")
	require.Equal(t, Loading, d.Action)

	d = g.Evaluate(snap(session.StateAnonymous, nil), "admin/users")
	require.Equal(t, Redirect, d.Action)
	require.Equal(t, RouteLogin, d.Target)
	require.Equal(t, "admin/users", d.ReturnTo)

	admin := &models.Identity{ID: 1, IsAdmin: true}
	d = g.Evaluate(snap(session.StateAuthenticated, admin), "admin/users")
	require.Equal(t, Render, d.Action)
}

func TestAdminGuard_NonAdminRedirectsHomeWithSingleNotice(t *testing.T) {
	g := NewAdminGuard()
	user := &models.Identity{ID: 2, Username: "bob"}

	d := g.Evaluate(snap(session.StateAuthenticated, user), "admin/users")
	require.Equal(t, Redirect, d.Action)
	require.Equal(t, RouteHome, d.Target)
	require.NotEmpty(t, d.Notice)

	// Re-evaluation for the same target (e.g. triggered by an unrelated
	// state change) must stay silent.
	for i := 0; i < 3; i++ {
		d = g.Evaluate(snap(session.StateAuthenticated, user), "admin/users")
		require.Equal(t, Redirect, d.Action)
		require.Empty(t, d.Notice)
	}
}

func TestAdminGuard_NoticeReArmsForNewTarget(t *testing.T) {
	g := NewAdminGuard()
	user := &models.Identity{ID: 2}

	d := g.Evaluate(snap(session.StateAuthenticated, user), "admin/users")
	require.NotEmpty(t, d.Notice)

	d = g.Evaluate(snap(session.StateAuthenticated, user), "admin/analytics")
	require.NotEmpty(t, d.Notice)

	d = g.Evaluate(snap(session.StateAuthenticated, user), "admin/analytics")
	require.Empty(t, d.Notice)
}

func TestAdminGuard_RenderResetsNotice(t *testing.T) {
	g := NewAdminGuard()
	user := &models.Identity{ID: 2}
	admin := &models.Identity{ID: 2, IsAdmin: true}

	d := g.Evaluate(snap(session.StateAuthenticated, user), "admin/users")
	require.NotEmpty(t, d.Notice)

	// Privileges granted in between: guard renders and forgets the denial.
	d = g.Evaluate(snap(session.StateAuthenticated, admin), "admin/users")
	require.Equal(t, Render, d.Action)

	d = g.Evaluate(snap(session.StateAuthenticated, user), "admin/users")
	require.NotEmpty(t, d.Notice)
}
