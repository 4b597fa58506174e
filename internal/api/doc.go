// Package api contains the client-side building blocks for talking to the
// link-storage backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the auth endpoints (register, activate, login, profile, refresh) and
//     the link-group CRUD endpoints.
//  2. A concrete HTTP implementation (see HTTPClient) that prefixes every
//     path with /api/v1, injects a bearer access token from a TokenSource,
//     applies a fixed per-request timeout, and normalizes markup responses
//     into the canonical error envelope before callers see them.
//
// # Error Handling
//
// Server-reported failures surface as *Error carrying the envelope fields
// (type, message, code, details). Transport-level failures (timeouts,
// refused connections) wrap the sentinel ErrUnavailable and can be matched
// with errors.Is.
package api
