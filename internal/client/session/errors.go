package session

import "errors"

var (
	ErrIncompleteSession = errors.New("session requires both token and user")
	ErrNotAuthenticated  = errors.New("not authenticated")
)
