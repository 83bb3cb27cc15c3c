// Package api implements the authenticated HTTP client for the
// store-management backend. Credentials travel as cookies held in the
// client's jar; on a 401 the client coordinates a single shared refresh
// exchange across all concurrent in-flight requests, then retries the
// failed request exactly once.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/sync/singleflight"

	"github.com/yameogo/gestock/internal/common"
	"github.com/yameogo/gestock/internal/logging"
)

const defaultTimeout = 15 * time.Second

// refreshKey is the singleflight key for the refresh exchange. The jar
// holds one credential pair per client, so a single key suffices.
const refreshKey = "jwt-refresh"

// Client issues JSON requests against the backend REST API.
type Client struct {
	baseURL *url.URL
	httpc   *http.Client
	refresh singleflight.Group
	log     logging.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger replaces the default no-op logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithTimeout bounds every request, the refresh exchange included.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpc.Timeout = d }
}

// New builds a Client for the given base URL. The base URL is treated
// as a directory, so relative endpoint paths like "products/" resolve
// underneath it.
func New(baseURL string, opts ...Option) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	c := &Client{
		baseURL: u,
		httpc:   &http.Client{Jar: jar, Timeout: defaultTimeout},
		log:     logging.NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do sends one request and decodes the response into out (when non-nil).
//
// A 401 on a not-yet-retried request triggers the refresh protocol:
// the caller joins the shared refresh exchange (starting one only if
// none is in flight), waits for it to settle, and re-issues the request
// once with whatever credentials are now in the jar. A second 401 is
// permanent. Transport errors bypass the refresh logic entirely.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}

	retried := false
	for {
		resp, err := c.send(ctx, method, path, query, payload)
		if err != nil {
			return fmt.Errorf("%s %s: %w", method, path, err)
		}

		if resp.StatusCode == http.StatusUnauthorized && !retried {
			retried = true
			drain(resp)
			c.awaitRefresh(ctx)
			continue
		}

		return c.handleResponse(resp, out)
	}
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Patch issues a partial update.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Download fetches a binary payload (e.g. an invoice PDF) verbatim.
func (c *Client) Download(ctx context.Context, path string) ([]byte, error) {
	var data []byte
	if err := c.Do(ctx, http.MethodGet, path, nil, nil, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// Cookie returns the named credential cookie currently held for the
// backend, if any.
func (c *Client) Cookie(name string) (*http.Cookie, bool) {
	if c.httpc.Jar == nil {
		return nil, false
	}
	for _, ck := range c.httpc.Jar.Cookies(c.baseURL) {
		if ck.Name == name {
			return ck, true
		}
	}
	return nil, false
}

// awaitRefresh joins the shared refresh exchange. At most one exchange
// is in flight at a time; every caller resumes once it settles. A
// failed exchange is absorbed here: the retried request will surface
// its own resulting error.
func (c *Client) awaitRefresh(ctx context.Context) {
	_, err, shared := c.refresh.Do(refreshKey, func() (any, error) {
		return nil, c.doRefresh(ctx)
	})
	if err != nil {
		c.log.Warn(ctx, "refresh exchange failed, retrying with current credentials",
			"error", err, "shared", shared)
	}
}

func (c *Client) doRefresh(ctx context.Context) error {
	resp, err := c.send(ctx, http.MethodPost, common.RefreshPath, nil, nil)
	if err != nil {
		return err
	}
	defer drain(resp)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("refresh endpoint returned %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte) (*http.Response, error) {
	u, err := c.baseURL.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var rd io.Reader
	if payload != nil {
		rd = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path,
			"request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrUnavailable, err)
	}

	c.log.Debug(ctx, "request finished", "method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start), "request_id", requestID)
	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(data) == 0 || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if raw, ok := out.(*[]byte); ok {
			*raw = data
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		return nil
	}

	return decodeError(resp.StatusCode, data)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
