package session

import "context"

type authKey struct{}

// WithAuth returns a context that carries a.
func WithAuth(ctx context.Context, a *Auth) context.Context {
	return context.WithValue(ctx, authKey{}, a)
}

// FromContext returns the Auth stored by WithAuth. It panics when there is
// none: a view reached without an auth scope is a wiring bug.
func FromContext(ctx context.Context) *Auth {
	a, ok := ctx.Value(authKey{}).(*Auth)
	if !ok || a == nil {
		panic("session: no Auth in context, wrap it with session.WithAuth")
	}
	return a
}
