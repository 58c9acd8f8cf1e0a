package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticHeaders struct {
	token string
	err   error
}

func (s staticHeaders) AuthHeader(context.Context) (http.Header, error) {
	if s.err != nil {
		return nil, s.err
	}
	h := make(http.Header)
	if s.token != "" {
		h.Set("Authorization", "Bearer "+s.token)
	}
	return h, nil
}

func newTestClient(t *testing.T, token string, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL, Headers: staticHeaders{token: token}}), srv
}
