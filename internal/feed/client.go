// Package feed downloads the product catalog export over HTTP and caches
// the parsed table for a fixed time-to-live.
package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gempundit/gemreport/internal/catalog"
	gocache "github.com/patrickmn/go-cache"
)

// DefaultUserAgent is sent with every feed request. The export endpoint sits
// behind a frontend that rejects non-browser agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"

// Options configures a feed Client.
type Options struct {
	// URL of the CSV export.
	URL string

	// Username and Password for HTTP basic auth. Both empty disables auth.
	Username string
	Password string

	// UserAgent overrides DefaultUserAgent when non-empty.
	UserAgent string

	// Timeout bounds a single fetch, DNS to last body byte.
	Timeout time.Duration

	// CacheTTL is how long a fetched table stays valid.
	CacheTTL time.Duration

	// MaxBodySize caps the response body in bytes. Zero means 256MB.
	MaxBodySize int64
}

// Client fetches and caches the catalog export. Safe for concurrent use.
type Client struct {
	opts  Options
	http  *http.Client
	cache *gocache.Cache
}

// New creates a feed client with a TTL cache keyed by URL.
func New(opts Options) *Client {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 2 * time.Minute
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = time.Hour
	}
	if opts.MaxBodySize <= 0 {
		opts.MaxBodySize = 256 << 20
	}
	return &Client{
		opts:  opts,
		http:  &http.Client{Timeout: opts.Timeout},
		cache: gocache.New(opts.CacheTTL, opts.CacheTTL),
	}
}

// Load returns the parsed catalog table, fetching it only when the cached
// copy has expired or was invalidated. Transport errors, non-2xx responses
// and malformed CSV all surface as an error; the caller degrades to a
// "no data available" view and never crashes.
func (c *Client) Load(ctx context.Context) (*catalog.Table, error) {
	if v, ok := c.cache.Get(c.opts.URL); ok {
		return v.(*catalog.Table), nil
	}

	t, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(c.opts.URL, t, gocache.DefaultExpiration)
	return t, nil
}

// Refresh drops every cached table so the next Load hits the network.
func (c *Client) Refresh() {
	c.cache.Flush()
}

func (c *Client) fetch(ctx context.Context) (*catalog.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("feed: build request: %w", err)
	}
	if c.opts.Username != "" || c.opts.Password != "" {
		req.SetBasicAuth(c.opts.Username, c.opts.Password)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed: fetch %s: %w", c.opts.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("feed: fetch %s: unexpected status %s", c.opts.URL, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.opts.MaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("feed: read body: %w", err)
	}

	t, err := catalog.ReadCSV(bytes.NewReader(sanitize(body)))
	if err != nil {
		return nil, fmt.Errorf("feed: parse: %w", err)
	}
	return t, nil
}
