// Package scripture implements the scripture-text fetch collaborator over an
// HTTP JSON API. It is deliberately failure-silent: the engine's contract is
// that a slow, broken, or misconfigured fetch degrades to empty output, so
// every error path here collapses to ("", false) and the reason is never
// surfaced.
package scripture

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-sermons/pkg/model"
)

const defaultTimeout = 5 * time.Second

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithAPIKey sends the key as a bearer token on every request.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// Client fetches formatted passage markup from a remote text API.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

// New constructs a Client for the given API base URL.
func New(baseURL string, options ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		baseURL: baseURL,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

type passageResponse struct {
	Text     string   `json:"text"`
	Passages []string `json:"passages"`
}

// Fetch implements store.ScriptureFetcher. The second return is false on any
// failure: transport error, non-200 status, undecodable body, or empty text.
func (c *Client) Fetch(ctx context.Context, start, end model.Reference, translation string) (string, bool) {
	if c.baseURL == "" || start.Book == "" {
		return "", false
	}

	q := url.Values{}
	q.Set("book", start.Book)
	q.Set("chapter", strconv.Itoa(start.Chapter))
	q.Set("verse", strconv.Itoa(start.Verse))
	q.Set("end_book", end.Book)
	q.Set("end_chapter", strconv.Itoa(end.Chapter))
	q.Set("end_verse", strconv.Itoa(end.Verse))
	q.Set("translation", translation)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", false
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	var payload passageResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", false
	}

	text := payload.Text
	if text == "" {
		text = strings.Join(payload.Passages, "\n")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	return text, true
}
