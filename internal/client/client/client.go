package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/bootlang/internal/logging"
)

const (
	DefaultTenantPrefix = "/api/tenant_1/poc_idea_1"
	DefaultTimeout      = 30 * time.Second

	maxErrorBody = 64 << 10
)

type Options struct {
	BaseURL      string
	TenantPrefix string
	Timeout      time.Duration
	Headers      HeaderSource
	Logger       logging.Logger
	// Transport is the underlying round tripper; http.DefaultTransport when nil.
	Transport http.RoundTripper
}

type Client struct {
	baseURL      string
	tenantPrefix string
	httpClient   *http.Client
	log          logging.Logger
}

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.TenantPrefix == "" {
		opts.TenantPrefix = DefaultTenantPrefix
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Transport == nil {
		opts.Transport = http.DefaultTransport
	}

	return &Client{
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		tenantPrefix: "/" + strings.Trim(opts.TenantPrefix, "/"),
		httpClient: &http.Client{
			Timeout: opts.Timeout,
			Transport: &authTransport{
				base:    opts.Transport,
				headers: opts.Headers,
				log:     opts.Logger,
			},
		},
		log: opts.Logger,
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

// do sends the request and returns the response for 2xx statuses. Any other
// status is drained and mapped to an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		var he *headerError
		if errors.As(err, &he) {
			return nil, he.err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, mapStatus(resp.StatusCode, b)
	}
	return resp, nil
}

// doJSON encodes in (when not nil) as the request body and decodes the
// response into out (when not nil).
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("error marshaling request body: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// Result is the {success, message} envelope of most mutating endpoints.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
