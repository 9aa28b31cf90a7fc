package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/snipshare/internal/client/api"
	"github.com/dmitrijs2005/snipshare/internal/client/config"
	"github.com/dmitrijs2005/snipshare/internal/client/guard"
	"github.com/dmitrijs2005/snipshare/internal/client/repositories"
	"github.com/dmitrijs2005/snipshare/internal/client/services"
	"github.com/dmitrijs2005/snipshare/internal/client/session"
	"github.com/dmitrijs2005/snipshare/internal/logging"
)

// Navigation targets beyond the guard's well-known ones.
const (
	routeAccount       = "account"
	routeDrafts        = "drafts"
	routeAdminUsers    = "admin/users"
	routeAdminPastes   = "admin/pastes"
	routeAdminAnalytic = "admin/analytics"
)

// App wires the interactive client together: the session store as the
// single credential source, the resolver, the services, and the route
// guards that gate every view.
type App struct {
	config       *config.Config
	log          logging.Logger
	store        *session.Store
	resolver     *session.Resolver
	authService  services.AuthService
	pasteService services.PasteService
	adminService services.AdminService
	adminGuard   *guard.AdminGuard
	repos        *repositories.Repositories
	apiClient    api.Client
	reader       *bufio.Reader

	// pendingRoute remembers a protected target that bounced to login,
	// so a successful login can return there.
	pendingRoute string
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	repos, err := repositories.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing local database", "error", err.Error())
		return nil, err
	}

	store := session.NewStore()

	apiClient, err := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, store.APIKey)
	if err != nil {
		repos.Close()
		return nil, err
	}

	resolver := session.NewResolver(apiClient, store, log)

	return &App{
		config:       c,
		log:          log,
		store:        store,
		resolver:     resolver,
		authService:  services.NewAuthService(apiClient, store, resolver, log),
		pasteService: services.NewPasteService(apiClient, repos.Drafts, log),
		adminService: services.NewAdminService(apiClient, log),
		adminGuard:   guard.NewAdminGuard(),
		repos:        repos,
		apiClient:    apiClient,
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

// Run resolves the initial session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.resolver.Resolve(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() {
	if err := a.apiClient.Close(); err != nil {
		a.log.Warn(context.Background(), "closing api client", "error", err.Error())
	}
	if err := a.repos.Close(); err != nil {
		a.log.Warn(context.Background(), "closing local database", "error", err.Error())
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

func (a *App) getStatus() string {
	snap := a.store.Snapshot()
	switch snap.State {
	case session.StateResolving:
		return "(resolving)"
	case session.StateAuthenticated:
		if snap.Identity.IsAdmin {
			return fmt.Sprintf("(%s, admin)", snap.Identity.Username)
		}
		return fmt.Sprintf("(%s)", snap.Identity.Username)
	default:
		return "(anonymous)"
	}
}

// navigate dispatches to the view bound to a route name. Guards run inside
// the individual views, not here; this is only the routing table.
func (a *App) navigate(ctx context.Context, route string) {
	switch route {
	case guard.RouteHome:
		_ = a.Dashboard(ctx)
	case routeAccount:
		_ = a.Account(ctx)
	case routeDrafts:
		_ = a.DraftList(ctx)
	case routeAdminUsers:
		_ = a.AdminUsers(ctx)
	case routeAdminPastes:
		_ = a.AdminPastes(ctx)
	case routeAdminAnalytic:
		_ = a.AdminAnalytics(ctx)
	}
}

// applyDecision renders the non-Render outcomes of a guard evaluation.
// It returns true when the caller may render its view.
func (a *App) applyDecision(ctx context.Context, d guard.Decision) bool {
	switch d.Action {
	case guard.Loading:
		printlnFn("Checking session...")
		return false
	case guard.Redirect:
		if d.Notice != "" {
			printlnFn(d.Notice)
		}
		if d.Target == guard.RouteLogin {
			a.pendingRoute = d.ReturnTo
			printlnFn("Please log in first (type 'login').")
			return false
		}
		a.navigate(ctx, d.Target)
		return false
	default:
		return true
	}
}

// requireAuth evaluates the authenticated guard for a navigation target.
func (a *App) requireAuth(ctx context.Context, route string) bool {
	return a.applyDecision(ctx, guard.Authenticated(a.store.Snapshot(), route))
}

// requireAdmin evaluates the admin guard for a navigation target.
func (a *App) requireAdmin(ctx context.Context, route string) bool {
	return a.applyDecision(ctx, a.adminGuard.Evaluate(a.store.Snapshot(), route))
}
