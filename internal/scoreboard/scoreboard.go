// Package scoreboard posts completed letters to an optional HTTP endpoint.
package scoreboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// DefaultTimeout bounds a single submission.
const DefaultTimeout = 5 * time.Second

// Entry is one completed letter.
type Entry struct {
	Child       string    `json:"child,omitempty"`
	Letter      string    `json:"letter"`
	Lang        string    `json:"lang"`
	Difficulty  string    `json:"difficulty"`
	DurationMs  int64     `json:"duration_ms"`
	CompletedAt time.Time `json:"completed_at"`
}

// Validate checks that the entry names a letter.
func (e *Entry) Validate() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.Letter, validation.Required),
		validation.Field(&e.Lang, validation.Required),
		validation.Field(&e.DurationMs, validation.Min(int64(0))),
	)
}

// Client submits entries with a JSON POST.
type Client struct {
	url        string
	httpClient *http.Client
}

// New creates a client for url. A nil httpClient uses one with DefaultTimeout.
func New(url string, httpClient *http.Client) (*Client, error) {
	if err := validation.Validate(url, validation.Required, is.URL); err != nil {
		return nil, fmt.Errorf("invalid scoreboard url: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{url: url, httpClient: httpClient}, nil
}

// Submit posts entry. Any non-2xx response is an error.
func (c *Client) Submit(ctx context.Context, entry Entry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("invalid scoreboard entry: %w", err)
	}
	body, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode scoreboard entry: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build scoreboard request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post scoreboard entry: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		if cerr := resp.Body.Close(); cerr != nil {
			// Best-effort body close.
			_ = cerr
		}
	}()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("scoreboard responded %s", resp.Status)
	}
	return nil
}
