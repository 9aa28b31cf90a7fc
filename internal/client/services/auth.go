// Package services contains application services for the SnipShare client.
// This file defines the authentication service: login, registration,
// logout, and API key rotation, all of which mutate the session store.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/snipshare/internal/client/api"
	"github.com/dmitrijs2005/snipshare/internal/client/session"
	"github.com/dmitrijs2005/snipshare/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate; on success the store holds the new key and a
//     resolver pass has confirmed the identity.
//   - Register: create an account; returns the issued API key so it can be
//     shown to the user exactly once.
//   - Logout: invalidate the server session; the store is cleared even if
//     the request fails.
//   - RefreshAPIKey: rotate the key; the previous key becomes invalid.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, username, password, confirm, inviteCode string) (string, error)
	Logout(ctx context.Context) error
	RefreshAPIKey(ctx context.Context) (string, error)
}

type authService struct {
	api      api.Client
	store    *session.Store
	resolver *session.Resolver
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client,
// session store, and resolver.
func NewAuthService(apiClient api.Client, store *session.Store, resolver *session.Resolver, log logging.Logger) AuthService {
	return &authService{api: apiClient, store: store, resolver: resolver, log: log}
}

// Login performs the credential exchange. The returned key is stored
// immediately, then a resolver pass populates the identity: the server's
// who-am-i answer is authoritative over the login response body.
//
// A rejected attempt returns an *AuthError of kind ErrInvalidCredentials
// carrying the server message verbatim; the store is left untouched.
// Transport failures are returned as-is.
func (a *authService) Login(ctx context.Context, username, password string) error {
	if err := validateLogin(username, password); err != nil {
		return err
	}

	key, err := a.api.Login(ctx, username, password)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			return &AuthError{Kind: ErrInvalidCredentials, Message: apiErr.Error()}
		}
		return err
	}

	a.store.SetAPIKey(key)
	a.resolver.Resolve(ctx)
	a.log.Info(ctx, "logged in", "username", username)
	return nil
}

// Register creates an account gated by a one-time invite code and returns
// the newly issued API key for one-time display. Invalid invite code,
// duplicate username, and weak password are distinguishable only by the
// server's message text.
func (a *authService) Register(ctx context.Context, username, password, confirm, inviteCode string) (string, error) {
	if err := validateRegistration(username, password, confirm); err != nil {
		return "", err
	}
	if inviteCode == "" {
		return "", &ValidationError{Reason: "invite code is required"}
	}

	key, err := a.api.Register(ctx, username, password, inviteCode)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			return "", &AuthError{Kind: ErrRegistration, Message: apiErr.Error()}
		}
		return "", err
	}

	a.store.SetAPIKey(key)
	a.resolver.Resolve(ctx)
	a.log.Info(ctx, "registered", "username", username)
	return key, nil
}

// Logout is fail-open: the store is cleared no matter what the network
// does, so a dropped request can never leave the user looking signed in.
func (a *authService) Logout(ctx context.Context) error {
	err := a.api.Logout(ctx)
	a.store.Clear()
	if err != nil {
		a.log.Warn(ctx, "logout request failed, session cleared locally", "error", err.Error())
	}
	return nil
}

// RefreshAPIKey rotates the key. In-flight requests that already attached
// the old key are not retried. Fails with kind ErrKeyRefresh when not
// authenticated or when the exchange fails.
func (a *authService) RefreshAPIKey(ctx context.Context) (string, error) {
	if !a.store.IsAuthenticated() {
		return "", &AuthError{Kind: ErrKeyRefresh, Message: "not authenticated"}
	}

	key, err := a.api.RegenerateAPIKey(ctx)
	if err != nil {
		return "", &AuthError{Kind: ErrKeyRefresh, Message: err.Error()}
	}

	a.store.SetAPIKey(key)
	a.log.Info(ctx, "api key rotated")
	return key, nil
}
