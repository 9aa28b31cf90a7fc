package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Account(ctx context.Context) error
	RefreshKey(ctx context.Context) error
	Dashboard(ctx context.Context) error
	ShowPaste(ctx context.Context, id string) error
	CreatePaste(ctx context.Context) error
	EditPaste(ctx context.Context, id string) error
	DeletePaste(ctx context.Context, id string) error
	DraftList(ctx context.Context) error
	DraftNew(ctx context.Context) error
	DraftDelete(ctx context.Context, id string) error
	DraftPublish(ctx context.Context, id string) error
	AdminUsers(ctx context.Context) error
	AdminAddUser(ctx context.Context) error
	AdminEditUser(ctx context.Context, username string) error
	AdminDeleteUser(ctx context.Context, username string) error
	AdminPastes(ctx context.Context) error
	AdminAnalytics(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the SnipShare CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("snip %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		arg := func() string {
			if len(args) == 0 {
				return ""
			}
			return args[0]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: list, show <id>, create, edit <id>, delete <id>,")
				printlnFn("  drafts, draft, publish <id>, rmdraft <id>, account, refreshkey,")
				printlnFn("  whoami, users, adduser, edituser <name>, deluser <name>, pastes,")
				printlnFn("  analytics, logout, exit")
			} else {
				printlnFn("Available commands: login, register, show <id>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "account":
			_ = a.Account(ctx)

		case "refreshkey":
			_ = a.RefreshKey(ctx)

		case "l", "list":
			_ = a.Dashboard(ctx)

		case "show":
			if arg() == "" {
				printlnFn("Usage: show <paste id>")
				continue
			}
			_ = a.ShowPaste(ctx, arg())

		case "create":
			_ = a.CreatePaste(ctx)

		case "edit":
			if arg() == "" {
				printlnFn("Usage: edit <paste id>")
				continue
			}
			_ = a.EditPaste(ctx, arg())

		case "delete":
			if arg() == "" {
				printlnFn("Usage: delete <paste id>")
				continue
			}
			_ = a.DeletePaste(ctx, arg())

		case "drafts":
			_ = a.DraftList(ctx)

		case "draft":
			_ = a.DraftNew(ctx)

		case "rmdraft":
			if arg() == "" {
				printlnFn("Usage: rmdraft <draft id>")
				continue
			}
			_ = a.DraftDelete(ctx, arg())

		case "publish":
			if arg() == "" {
				printlnFn("Usage: publish <draft id>")
				continue
			}
			_ = a.DraftPublish(ctx, arg())

		case "users":
			_ = a.AdminUsers(ctx)

		case "adduser":
			_ = a.AdminAddUser(ctx)

		case "edituser":
			if arg() == "" {
				printlnFn("Usage: edituser <username>")
				continue
			}
			_ = a.AdminEditUser(ctx, arg())

		case "deluser":
			if arg() == "" {
				printlnFn("Usage: deluser <username>")
				continue
			}
			_ = a.AdminDeleteUser(ctx, arg())

		case "pastes":
			_ = a.AdminPastes(ctx)

		case "analytics":
			_ = a.AdminAnalytics(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
