package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/snipshare/internal/client/api"
	"github.com/dmitrijs2005/snipshare/internal/client/models"
	"github.com/dmitrijs2005/snipshare/internal/client/session"
	"github.com/dmitrijs2005/snipshare/internal/logging"
)

// fakeClient implements the slice of api.Client the auth service touches.
// Unexpected calls panic via the embedded nil interface.
type fakeClient struct {
	api.Client

	LoginRet string
	LoginErr error

	RegisterRet string
	RegisterErr error

	LogoutErr error

	RegenerateRet string
	RegenerateErr error

	WhoAmIRet *models.Identity
	WhoAmIErr error
	KeyRet    string
	KeyErr    error

	LastLoginUser     string
	LastLoginPassword string
	LastRegisterUser  string
	LastInviteCode    string
	LoginCalls        int
	LogoutCalls       int
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (string, error) {
	f.LoginCalls++
	f.LastLoginUser = username
	f.LastLoginPassword = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, username, password, inviteCode string) (string, error) {
	f.LastRegisterUser = username
	f.LastInviteCode = inviteCode
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeClient) RegenerateAPIKey(ctx context.Context) (string, error) {
	return f.RegenerateRet, f.RegenerateErr
}

func (f *fakeClient) WhoAmI(ctx context.Context) (*models.Identity, error) {
	return f.WhoAmIRet, f.WhoAmIErr
}

func (f *fakeClient) CurrentAPIKey(ctx context.Context) (string, error) {
	return f.KeyRet, f.KeyErr
}

func newAuthFixture(fake *fakeClient) (AuthService, *session.Store) {
	store := session.NewStore()
	resolver := session.NewResolver(fake, store, logging.Nop())
	return NewAuthService(fake, store, resolver, logging.Nop()), store
}

func TestLoginSuccessStoresKeyAndResolvesIdentity(t *testing.T) {
	fake := &fakeClient{
		LoginRet:  "key-1",
		WhoAmIRet: &models.Identity{ID: 1, Username: "alice"},
		KeyRet:    "key-1",
	}
	svc, store := newAuthFixture(fake)

	err := svc.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	require.Equal(t, "alice", fake.LastLoginUser)
	require.Equal(t, session.StateAuthenticated, store.State())
	require.Equal(t, "alice", store.Identity().Username)
	require.Equal(t, "key-1", store.APIKey())
}

func TestLoginRejectedSurfacesServerMessageVerbatim(t *testing.T) {
	fake := &fakeClient{
		LoginErr: &api.APIError{Status: 401, Message: "invalid credentials"},
	}
	svc, store := newAuthFixture(fake)

	err := svc.Login(context.Background(), "alice", "wrongpass")

	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Equal(t, "invalid credentials", err.Error())

	// Store untouched: still resolving, no identity, no key.
	require.Equal(t, session.StateResolving, store.State())
	require.Nil(t, store.Identity())
	require.Empty(t, store.APIKey())
}

func TestLoginTransportFailureIsNotAnAuthError(t *testing.T) {
	fake := &fakeClient{LoginErr: api.ErrUnavailable}
	svc, _ := newAuthFixture(fake)

	err := svc.Login(context.Background(), "alice", "secret123")

	require.ErrorIs(t, err, api.ErrUnavailable)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginValidationShortCircuits(t *testing.T) {
	fake := &fakeClient{}
	svc, _ := newAuthFixture(fake)

	var vErr *ValidationError

	err := svc.Login(context.Background(), "", "secret123")
	require.ErrorAs(t, err, &vErr)

	err = svc.Login(context.Background(), "alice", "")
	require.ErrorAs(t, err, &vErr)

	// no request was sent
	require.Zero(t, fake.LoginCalls)
}

func TestRegisterReturnsKeyForOneTimeDisplay(t *testing.T) {
	fake := &fakeClient{
		RegisterRet: "fresh-key",
		WhoAmIRet:   &models.Identity{ID: 7, Username: "carol"},
		KeyRet:      "fresh-key",
	}
	svc, store := newAuthFixture(fake)

	key, err := svc.Register(context.Background(), "carol", "secret123", "secret123", "invite-42")
	require.NoError(t, err)
	require.Equal(t, "fresh-key", key)
	require.Equal(t, "invite-42", fake.LastInviteCode)
	require.Equal(t, session.StateAuthenticated, store.State())
}

func TestRegisterValidation(t *testing.T) {
	fake := &fakeClient{}
	svc, _ := newAuthFixture(fake)
	ctx := context.Background()

	var vErr *ValidationError

	_, err := svc.Register(ctx, "carol", "short", "short", "invite")
	require.ErrorAs(t, err, &vErr)

	_, err = svc.Register(ctx, "carol", "secret123", "different", "invite")
	require.ErrorAs(t, err, &vErr)

	_, err = svc.Register(ctx, "carol", "secret123", "secret123", "")
	require.ErrorAs(t, err, &vErr)
}

func TestRegisterRejectedDistinguishedByMessageOnly(t *testing.T) {
	fake := &fakeClient{
		RegisterErr: &api.APIError{Status: 403, Message: "Invalid invite code"},
	}
	svc, _ := newAuthFixture(fake)

	_, err := svc.Register(context.Background(), "carol", "secret123", "secret123", "nope")
	require.ErrorIs(t, err, ErrRegistration)
	require.Equal(t, "Invalid invite code", err.Error())
}

// Logout is fail-open: the credentials are gone locally even when the
// request fails in transport.
func TestLogoutFailOpen(t *testing.T) {
	fake := &fakeClient{
		LogoutErr: api.ErrUnavailable,
		WhoAmIRet: &models.Identity{ID: 1, Username: "alice"},
		KeyRet:    "key-1",
	}
	svc, store := newAuthFixture(fake)

	store.SetResolved(&models.Identity{ID: 1, Username: "alice"}, "key-1", true)

	err := svc.Logout(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, fake.LogoutCalls)
	require.Nil(t, store.Identity())
	require.Empty(t, store.APIKey())
	require.Equal(t, session.StateAnonymous, store.State())
}

func TestRefreshAPIKeyRotates(t *testing.T) {
	fake := &fakeClient{RegenerateRet: "key-2"}
	svc, store := newAuthFixture(fake)
	ident := &models.Identity{ID: 1, Username: "alice"}
	store.SetResolved(ident, "key-1", true)

	key, err := svc.RefreshAPIKey(context.Background())
	require.NoError(t, err)
	require.Equal(t, "key-2", key)

	// old key replaced, identity unaffected
	require.Equal(t, "key-2", store.APIKey())
	require.Equal(t, ident, store.Identity())
	require.Equal(t, session.StateAuthenticated, store.State())
}

func TestRefreshAPIKeyRequiresAuthentication(t *testing.T) {
	fake := &fakeClient{}
	svc, _ := newAuthFixture(fake)

	_, err := svc.RefreshAPIKey(context.Background())
	require.ErrorIs(t, err, ErrKeyRefresh)
}

func TestRefreshAPIKeyTransportFailure(t *testing.T) {
	fake := &fakeClient{RegenerateErr: api.ErrUnavailable}
	svc, store := newAuthFixture(fake)
	store.SetResolved(&models.Identity{ID: 1}, "key-1", true)

	_, err := svc.RefreshAPIKey(context.Background())
	require.ErrorIs(t, err, ErrKeyRefresh)

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	require.Equal(t, "key-1", store.APIKey())
}
