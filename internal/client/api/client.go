package api

import (
	"context"

	"github.com/dmitrijs2005/snipshare/internal/client/models"
)

// Client is the full snipserve API surface used by the application.
//
// Contract:
//   - WhoAmI: resolve the cookie-session identity; any failure means anonymous.
//   - CurrentAPIKey: fetch the key for the current session without rotating it.
//   - Login/Register: credential exchanges returning a fresh API key.
//   - RegenerateAPIKey: rotation; the previous key stops working server-side.
//   - Paste and admin calls surface *APIError with the server message verbatim.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	WhoAmI(ctx context.Context) (*models.Identity, error)
	CurrentAPIKey(ctx context.Context) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password, inviteCode string) (string, error)
	Logout(ctx context.Context) error
	RegenerateAPIKey(ctx context.Context) (string, error)

	CreatePaste(ctx context.Context, req *models.PasteRequest) (*models.Paste, error)
	GetPaste(ctx context.Context, id string) (*models.Paste, error)
	UpdatePaste(ctx context.Context, id string, req *models.PasteRequest) (*models.Paste, error)
	DeletePaste(ctx context.Context, id string) error
	MyPastes(ctx context.Context) ([]*models.Paste, error)
	IncrementViews(ctx context.Context, id string) (int64, error)

	Users(ctx context.Context) ([]*models.User, error)
	User(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, username string) error
	AllPastes(ctx context.Context) ([]*models.Paste, error)
	PasteAnalytics(ctx context.Context) ([]*models.PasteAnalytics, error)
	PasteAnalyticsFor(ctx context.Context, id string) (*models.PasteAnalytics, error)
}
