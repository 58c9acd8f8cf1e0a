// Package session holds the client's authentication state.
//
// Store persists the session pair (bearer token and user record) in a slot
// repository. Auth is the in-memory holder of the same pair that the rest of
// the client reads; it is hydrated from the Store on start and written back
// on every change. The pair is always written and read as a unit: a token
// without a user, or a user without a token, is a logged-out state.
package session
