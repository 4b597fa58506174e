// Package cli provides the interactive link-storage terminal client.
//
// It wires configuration, the local session database, the API client,
// services, state stores, and an interactive REPL that mirrors the web
// client's pages. Every command navigates a route through the navigation
// guard first, so redirects behave exactly like the browser client: an
// anonymous user asking for the dashboard lands on the login page, a
// non-admin asking for /admin lands on the dashboard.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
