// Package buildings resolves campus building codes to display names using a
// remotely published JSON mapping. The mapping is fetched lazily once per
// process and cached read-only; a failed fetch or an unknown code degrades to
// returning the code unchanged.
package buildings

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/umleo/schedview/pkg/constants"
	"github.com/umleo/schedview/pkg/errors"
	"github.com/umleo/schedview/pkg/logging"
)

// Client fetches and caches the building code to display name mapping.
type Client struct {
	url  string
	http *http.Client

	once     sync.Once
	mapping  map[string]string
	fetchErr error
}

// Option configures a Client.
type Option func(*Client)

// WithURL overrides the mapping URL.
func WithURL(url string) Option {
	return func(c *Client) { c.url = url }
}

// WithHTTPClient overrides the HTTP client used for the fetch.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a building lookup client with the default URL and timeout.
func New(opts ...Option) *Client {
	c := &Client{
		url:  constants.BuildingsURL,
		http: &http.Client{Timeout: constants.DefaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup returns the display name for a building code, or the code itself
// when the mapping has no entry or could not be fetched.
func (c *Client) Lookup(ctx context.Context, code string) string {
	mapping, err := c.load(ctx)
	if err != nil {
		return code
	}
	if name, ok := mapping[code]; ok && name != "" {
		return name
	}
	return code
}

// LookupFunc returns Lookup bound to a context, in the shape the campus
// normalizers consume.
func (c *Client) LookupFunc(ctx context.Context) func(code string) string {
	return func(code string) string {
		return c.Lookup(ctx, code)
	}
}

// load fetches the mapping on first use. The fetch result, success or
// failure, is cached for the life of the process.
func (c *Client) load(ctx context.Context) (map[string]string, error) {
	c.once.Do(func() {
		c.mapping, c.fetchErr = c.fetch(ctx)
		if c.fetchErr != nil {
			logging.Warn().
				Err(c.fetchErr).
				Str("url", c.url).
				Msg("Building lookup unavailable, falling back to raw codes")
		}
	})
	return c.mapping, c.fetchErr
}

func (c *Client) fetch(ctx context.Context) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+c.url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapIO("fetch", c.url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewResourceError("fetch", "buildings", c.url,
			errors.New(resp.Status))
	}

	var mapping map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&mapping); err != nil {
		return nil, errors.WrapParse("json", c.url, err)
	}
	return mapping, nil
}
