// Package api is the HTTP client for the issuetrack server.
//
// Response interpretation is a two-step contract: the status class is
// checked first, then the body is decoded — a success record for 2xx, a
// typed *Error for anything else. Network-level failures surface as plain
// errors and are never confused with server-reported ones.
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
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/trailhead-labs/issuetrack/internal/types"
)

// duplicateIDMessage is the literal message the client routes to the ID
// field. Matching by message text mirrors the server contract.
const duplicateIDMessage = "ID already exists"

// Error is a failure the server reported with a JSON {message} body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server: %s (status %d)", e.Message, e.Status)
}

// IsDuplicateID reports whether err is the server's duplicate-ID rejection.
func IsDuplicateID(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Message == duplicateIDMessage
}

// IsNotFound reports whether err is a server-reported 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client talks to one issuetrack server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// List fetches the full issue collection in stored order.
func (c *Client) List(ctx context.Context) ([]types.Issue, error) {
	var issues []types.Issue
	if err := c.do(ctx, http.MethodGet, "/issues", nil, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// ListWithRetry fetches the collection, retrying transport failures with
// exponential backoff. Used for the startup fetch, when the server may not
// be accepting connections yet. Server-reported errors are not retried.
func (c *Client) ListWithRetry(ctx context.Context, maxElapsed time.Duration) ([]types.Issue, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	bo.MaxElapsedTime = maxElapsed

	var issues []types.Issue
	operation := func() error {
		var err error
		issues, err = c.List(ctx)
		if err == nil {
			return nil
		}
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return backoff.Permanent(err)
		}
		return err
	}
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}
	return issues, nil
}

// Create submits a new issue and returns the server's stored record.
func (c *Client) Create(ctx context.Context, issue types.Issue) (types.Issue, error) {
	var created types.Issue
	if err := c.do(ctx, http.MethodPost, "/issues", issue, &created); err != nil {
		return types.Issue{}, err
	}
	return created, nil
}

// Update replaces the title and description of an existing issue.
func (c *Client) Update(ctx context.Context, id int, title, description string) (types.Issue, error) {
	body := map[string]string{"title": title, "description": description}
	var updated types.Issue
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/issues/%d", id), body, &updated); err != nil {
		return types.Issue{}, err
	}
	return updated, nil
}

// Delete removes an issue. A 204 success carries no body.
func (c *Client) Delete(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/issues/%d", id), nil, nil)
}

// do performs one request. The status class decides how the body is read:
// 2xx decodes into out (when non-nil), anything else decodes the {message}
// error shape into a *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		return &Error{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return &Error{Status: resp.StatusCode, Message: body.Message}
}
