// Package client is the HTTP client for the Boot_Lang REST backend.
//
// # Overview
//
// Client wraps net/http with a RoundTripper that asks a HeaderSource for the
// bearer header on every request, tags each request with an X-Request-ID,
// and logs the outcome. Calls are fire-once: there is no retry or backoff,
// and the timeout comes from configuration.
//
// # Error Handling
//
// Responses are mapped to sentinel errors that callers match with errors.Is:
// ErrUnauthorized (401, 403), ErrNotFound (404, or a 200 body with an
// "error" field from the tenant routes), ErrUnavailable (transport failure,
// 502, 503, 504). Every mapped error is an *APIError that keeps the status
// and the backend's "detail" text; ErrorMessage picks the text a view shows.
//
// See Also
//
//   - Base URL:  ResolveBaseURL
//   - Errors:    ErrUnauthorized, ErrNotFound, ErrUnavailable, APIError
//   - Endpoints: auth.go, admin.go, account.go, poc.go, tasks.go
package client
