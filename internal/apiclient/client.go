package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	defaultTimeout   = 5 * time.Second
	defaultUserAgent = "autoprobe"

	maxRedirects = 10
)

// Client issues autocomplete queries over a single reused connection.
type Client struct {
	http      *fasthttp.Client
	baseURL   string
	userAgent string
	timeout   time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a Client for the service rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: defaultUserAgent,
		timeout:   defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	// One in-flight request at a time, so one connection is enough.
	c.http = &fasthttp.Client{
		ReadTimeout:              c.timeout,
		WriteTimeout:             c.timeout,
		MaxConnsPerHost:          1,
		MaxConnWaitTimeout:       c.timeout,
		MaxIdleConnDuration:      90 * time.Second,
		NoDefaultUserAgentHeader: true,
		DisablePathNormalizing:   true,
	}
	return c
}

// URL builds the request URL for an endpoint path and query prefix.
func (c *Client) URL(endpoint, query string) string {
	return c.baseURL + endpoint + "?" + url.Values{"query": {query}}.Encode()
}

// Query performs one GET request, following redirects. It never retries.
func (c *Client) Query(ctx context.Context, endpoint, query string) Result {
	if err := ctx.Err(); err != nil {
		return Result{Kind: KindFailure, Err: err}
	}

	uri := c.URL(endpoint, query)

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(uri)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if c.userAgent != "" {
		req.Header.SetUserAgent(c.userAgent)
	}

	// The timeout covers each hop of a redirect chain.
	req.SetTimeout(c.timeout)
	if err := c.http.DoRedirects(req, resp, maxRedirects); err != nil {
		return Result{Kind: KindFailure, Err: fmt.Errorf("GET %s: %w", uri, err)}
	}

	return Classify(resp.StatusCode(), resp.Body())
}

// Close drops idle connections.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}
