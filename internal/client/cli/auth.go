package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. A rejected attempt
// prints the server's message; a success returns the user to the route
// that originally bounced to login, if any.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.Login(ctx, username, password); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Logged in as", username)

	if a.pendingRoute != "" {
		route := a.pendingRoute
		a.pendingRoute = ""
		a.navigate(ctx, route)
	}
	return nil
}

// Register prompts for a username, password (twice), and the invite code,
// creates the account, and displays the issued API key exactly once.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}

	inviteCode, err := getSimpleText(a.reader, "Enter invite code", os.Stdout)
	if err != nil {
		return err
	}

	key, err := a.authService.Register(ctx, username, password, confirm, inviteCode)
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Account created. Your API key (shown only once):")
	printlnFn("  " + key)
	return nil
}

// Logout ends the session. The local credentials are gone even when the
// server could not be reached.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the resolved identity.
func (a *App) Whoami(ctx context.Context) error {
	ident := a.store.Identity()
	if ident == nil {
		printlnFn("Not logged in.")
		return nil
	}
	role := "user"
	if ident.IsAdmin {
		role = "admin"
	}
	printlnFn(fmt.Sprintf("%s (id %d, %s)", ident.Username, ident.ID, role))
	return nil
}

// Account shows whether an API key is cached and how requests are
// authenticated.
func (a *App) Account(ctx context.Context) error {
	if !a.requireAuth(ctx, routeAccount) {
		return nil
	}
	if key := a.store.APIKey(); key != "" {
		printlnFn("API key cached; requests carry it alongside the session cookie.")
	} else {
		printlnFn("No API key cached; requests use the session cookie.")
		printlnFn("Use 'refreshkey' to issue a new key.")
	}
	return nil
}

// RefreshKey rotates the API key and displays the replacement.
func (a *App) RefreshKey(ctx context.Context) error {
	if !a.requireAuth(ctx, routeAccount) {
		return nil
	}
	key, err := a.authService.RefreshAPIKey(ctx)
	if err != nil {
		printlnFn("Key refresh failed:", err.Error())
		return err
	}
	printlnFn("New API key (the old one no longer works):")
	printlnFn("  " + key)
	return nil
}
