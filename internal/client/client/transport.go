package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/bootlang/internal/common"
	"github.com/dmitrijs2005/bootlang/internal/logging"
	"github.com/google/uuid"
)

// HeaderSource supplies the auth header for outgoing requests. An empty
// header means the request goes out unauthenticated.
type HeaderSource interface {
	AuthHeader(ctx context.Context) (http.Header, error)
}

// headerError marks a failure of the HeaderSource so it is not reported as
// an unreachable server.
type headerError struct{ err error }

func (e *headerError) Error() string { return e.err.Error() }
func (e *headerError) Unwrap() error { return e.err }

type authTransport struct {
	base    http.RoundTripper
	headers HeaderSource
	log     logging.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	r := req.Clone(ctx)

	if t.headers != nil {
		h, err := t.headers.AuthHeader(ctx)
		if err != nil {
			return nil, &headerError{err: fmt.Errorf("auth header: %w", err)}
		}
		for k, vs := range h {
			for _, v := range vs {
				r.Header.Set(k, v)
			}
		}
	}

	id := r.Header.Get(common.RequestIDHeaderName)
	if id == "" {
		id = uuid.NewString()
		r.Header.Set(common.RequestIDHeaderName, id)
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(r)
	log := t.log.With("request_id", id, "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return nil, err
	}
	log.Debug(ctx, "request finished", "status", resp.StatusCode)
	return resp, nil
}
