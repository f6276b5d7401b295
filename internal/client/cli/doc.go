// Package cli provides the interactive userdeck command-line client.
//
// It wires configuration, the local session store, the backend API client and
// an interactive REPL. Typical flow: restore a previously persisted session,
// greet the operator, and execute directory commands until exit.
//
// Key features:
//   - Login / Logout with a durable session that survives restarts
//   - Register with per-field validation and an optional profile picture
//   - List / View / Update / Delete directory records
//   - Whoami with token expiry display
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
