// Package guard decides whether a destination view renders, redirects, or
// waits, based on the session store's current snapshot.
package guard

import "github.com/dmitrijs2005/snipshare/internal/client/session"

// Well-known navigation targets used by the guards.
const (
	RouteLogin = "login"
	RouteHome  = "dashboard"
)

// Action is the guard's verdict for a navigation attempt.
type Action int

const (
	// Render the requested view.
	Render Action = iota
	// Loading: the initial session resolution is still in flight; show a
	// placeholder and re-evaluate once it completes.
	Loading
	// Redirect to Decision.Target instead of rendering.
	Redirect
)

// Decision is the outcome of evaluating a guard against one navigation
// attempt. ReturnTo carries the originally requested route so a login
// redirect can return there afterwards. Notice is a one-shot user-facing
// message, set at most once per denied target.
type Decision struct {
	Action   Action
	Target   string
	ReturnTo string
	Notice   string
}

// Authenticated gates routes that require any confirmed identity.
//
//	resolving     → Loading
//	anonymous     → Redirect to login, carrying the requested route
//	authenticated → Render
func Authenticated(snap session.Snapshot, requested string) Decision {
	switch snap.State {
	case session.StateResolving:
		return Decision{Action: Loading}
	case session.StateAnonymous:
		return Decision{Action: Redirect, Target: RouteLogin, ReturnTo: requested}
	default:
		return Decision{Action: Render}
	}
}

// AdminGuard gates administrator-only routes. It is a superset of
// Authenticated: a signed-in non-admin is sent to the regular home view
// with an access-denied notice.
//
// The notice fires at most once per navigation target: re-evaluating the
// same denied target (e.g. after an unrelated state change) stays silent,
// while a genuinely new target arms the notice again.
type AdminGuard struct {
	noticedTarget string
	noticedActive bool
}

func NewAdminGuard() *AdminGuard {
	return &AdminGuard{}
}

// Evaluate applies the admin transition table to one navigation attempt.
func (g *AdminGuard) Evaluate(snap session.Snapshot, requested string) Decision {
	if g.noticedActive && g.noticedTarget != requested {
		g.noticedActive = false
	}

	switch {
	case snap.State == session.StateResolving:
		return Decision{Action: Loading}
	case snap.State == session.StateAnonymous:
		return Decision{Action: Redirect, Target: RouteLogin, ReturnTo: requested}
	case !snap.Identity.IsAdmin:
		d := Decision{Action: Redirect, Target: RouteHome}
		if !g.noticedActive {
			g.noticedActive = true
			g.noticedTarget = requested
			d.Notice = "Access denied: admin privileges required"
		}
		return d
	default:
		g.noticedActive = false
		return Decision{Action: Render}
	}
}
