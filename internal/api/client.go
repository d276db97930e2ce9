// Package api wraps the platform gateway's REST resources (auth, orders,
// payments, restaurants, checkout sessions) in typed clients. Every protected
// call attaches the session credential as a bearer token; authorization
// failures are surfaced to the caller, never retried.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"foodctl/internal/session"
)

var (
	ErrUnauthorized = errors.New("not authorized (missing or rejected credential)")
	ErrNotFound     = errors.New("not found")
)

// ValidationError reports malformed caller input detected before anything is
// sent over the wire.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotJSONError means the backend (or a proxy in front of it) answered with
// something other than JSON. The raw body is carried for diagnosis; it is a
// misconfiguration signal, not a payment failure.
type NotJSONError struct {
	ContentType string
	Body        string
}

func (e *NotJSONError) Error() string {
	return fmt.Sprintf("backend did not return JSON (content-type %q): %s", e.ContentType, e.Body)
}

type Client struct {
	httpc   *http.Client
	base    string
	session *session.Store

	mu           sync.Mutex
	checkoutKeys map[int64]string
}

func New(baseURL string, sess *session.Store) *Client {
	return &Client{
		httpc:        &http.Client{Timeout: 5 * time.Second},
		base:         strings.TrimRight(baseURL, "/"),
		session:      sess,
		checkoutKeys: make(map[int64]string),
	}
}

// do performs an authorized JSON round trip. A missing credential fails
// before the request leaves the process.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	credential, ok := c.session.Get()
	if !ok {
		return ErrUnauthorized
	}
	req.Header.Set("Authorization", "Bearer "+credential)

	res, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case res.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case res.StatusCode >= 300:
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("%s %s: %s: %s", method, path, res.Status, bytes.TrimSpace(snippet))
	}
	if out != nil {
		return json.NewDecoder(res.Body).Decode(out)
	}
	return nil
}
