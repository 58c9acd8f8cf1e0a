// Package common contains shared constants and small helpers used across
// the Boot_Lang client packages.
package common

const (
	// AuthorizationHeaderName is the HTTP header that carries the bearer token.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the opaque token in the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName tags every outbound request for log correlation.
	RequestIDHeaderName = "X-Request-ID"
)
