// Package cli provides the interactive SnipShare command-line client.
//
// It wires configuration, the session store and resolver, local draft
// storage, API services, and an interactive REPL gated by route guards.
// Typical flow: resolve the current session from the server cookie, then
// execute user commands.
//
// Key features:
//   - Login / Register / Logout, API key rotation
//   - Create / edit / delete pastes, view tracking
//   - Local drafts with publish-to-server
//   - Admin views: users, all pastes, analytics
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL, and the guard package for details.
package cli
