package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/snipshare/internal/client/models"
)

// AdminUsers lists all accounts.
func (a *App) AdminUsers(ctx context.Context) error {
	if !a.requireAdmin(ctx, routeAdminUsers) {
		return nil
	}
	users, err := a.adminService.Users(ctx)
	if err != nil {
		printlnFn("Could not load users:", err.Error())
		return err
	}
	for _, u := range users {
		role := ""
		if u.IsAdmin {
			role = "  [admin]"
		}
		printlnFn(fmt.Sprintf("%4d  %-20s  joined %s%s",
			u.ID, u.Username, u.CreatedAt.Format(time.DateOnly), role))
	}
	return nil
}

// AdminAddUser creates an account without the invite-code flow.
func (a *App) AdminAddUser(ctx context.Context) error {
	if !a.requireAdmin(ctx, routeAdminUsers) {
		return nil
	}

	username, err := getSimpleText(a.reader, "New username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}
	isAdmin, err := GetYesNo(a.reader, "Grant admin?", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.adminService.CreateUser(ctx, &models.CreateUserRequest{
		Username: username,
		Password: password,
		IsAdmin:  isAdmin,
	})
	if err != nil {
		printlnFn("Could not create user:", err.Error())
		return err
	}
	printlnFn("Created user", user.Username)
	return nil
}

// AdminEditUser updates username, password, or the admin flag; empty
// answers leave a field unchanged.
func (a *App) AdminEditUser(ctx context.Context, username string) error {
	if !a.requireAdmin(ctx, routeAdminUsers) {
		return nil
	}

	user, err := a.adminService.User(ctx, username)
	if err != nil {
		printlnFn("Could not load user:", err.Error())
		return err
	}

	req := &models.UpdateUserRequest{}

	newName, err := getSimpleText(a.reader, "New username (empty to keep '"+user.Username+"')", os.Stdout)
	if err != nil {
		return err
	}
	if newName != "" && newName != user.Username {
		req.Username = &newName
	}

	newPassword, err := getPassword("New password (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if newPassword != "" {
		req.Password = &newPassword
	}

	makeAdmin, err := GetYesNo(a.reader, "Admin?", os.Stdout)
	if err != nil {
		return err
	}
	if makeAdmin != user.IsAdmin {
		req.IsAdmin = &makeAdmin
	}

	if req.Username == nil && req.Password == nil && req.IsAdmin == nil {
		printlnFn("Nothing to change.")
		return nil
	}

	if _, err := a.adminService.UpdateUser(ctx, username, req); err != nil {
		printlnFn("Could not update user:", err.Error())
		return err
	}
	printlnFn("Updated user", username)
	return nil
}

func (a *App) AdminDeleteUser(ctx context.Context, username string) error {
	if !a.requireAdmin(ctx, routeAdminUsers) {
		return nil
	}

	ok, err := GetYesNo(a.reader, "Delete user '"+username+"' and their pastes?", os.Stdout)
	if err != nil || !ok {
		return err
	}

	if err := a.adminService.DeleteUser(ctx, username); err != nil {
		printlnFn("Could not delete user:", err.Error())
		return err
	}
	printlnFn("Deleted user", username)
	return nil
}

// AdminPastes lists every paste on the server, hidden ones included.
func (a *App) AdminPastes(ctx context.Context) error {
	if !a.requireAdmin(ctx, routeAdminPastes) {
		return nil
	}
	pastes, err := a.adminService.AllPastes(ctx)
	if err != nil {
		printlnFn("Could not load pastes:", err.Error())
		return err
	}
	for _, p := range pastes {
		printlnFn(formatPasteLine(p) + "  by " + p.Username)
	}
	return nil
}

// AdminAnalytics prints per-paste view statistics.
func (a *App) AdminAnalytics(ctx context.Context) error {
	if !a.requireAdmin(ctx, routeAdminAnalytic) {
		return nil
	}
	stats, err := a.adminService.Analytics(ctx)
	if err != nil {
		printlnFn("Could not load analytics:", err.Error())
		return err
	}
	for _, s := range stats {
		printlnFn(fmt.Sprintf("%s  %-30s  views=%d unique=%d authed=%d recent=%d",
			s.PasteID, s.Title, s.TotalViews, s.UniqueIPs, s.AuthenticatedViews, s.RecentViews))
	}
	return nil
}
