// Package api contains the client-side contract for the user-account
// backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (the Client interface) covering the
//     backend's operations: Login, Register, ListUsers, Profile, UpdateUser,
//     DeleteUser.
//  2. A concrete JSON/REST implementation (HTTPClient) rooted at the
//     /api/auth base path. It injects the current bearer token via a
//     TokenSource, stamps every request with an X-Request-Id, and maps HTTP
//     statuses to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed through sentinels in the common package and
// matched with errors.Is: ErrUnavailable (transport failure),
// ErrInvalidCredentials (rejected login), ErrUnauthorized (missing/expired
// token), ErrNotFound, ErrInternal. The client performs no retries and
// imposes no timeouts of its own; cancellation comes from the caller's
// context.
//
// # Authorization
//
// A missing token does not pre-empt a call. The request is sent without the
// Authorization header and the server's rejection is surfaced unchanged.
package api
