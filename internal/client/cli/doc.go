// Package cli provides the interactive Drezzle command-line client.
//
// It wires configuration, local storage, the HTTP API services, and an
// interactive REPL that supports online/offline operation. Typical flow:
// restore the previous session from local storage, start a background
// connectivity watcher, and execute user commands.
//
// Key features:
//   - Login / Register / Logout with persisted sessions
//   - Browse the feed, like, save, and comment on contents
//   - Upload audio or video (creator, expert and label accounts)
//   - Expert badge and label status requests
//   - Admin dashboard with verification decisions
//   - Interface language switching (it, es, de, en, en-US)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
