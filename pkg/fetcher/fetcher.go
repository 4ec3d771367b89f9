package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds a single outbound retrieval. Unbounded waits are
// forbidden: one slow target site must not starve the handler pool.
const DefaultTimeout = 10 * time.Second

// defaultUserAgent is a conventional browser identification string; plenty of
// sites reject requests carrying obvious non-browser agents.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// Client retrieves documents from caller-supplied URLs.
// A single GET per Fetch call, no retries; redirects follow the transport's
// default limit.
type Client struct {
	http *resty.Client
}

// Option configures a Client.
type Option func(*options)

type options struct {
	timeout   time.Duration
	userAgent string
}

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithUserAgent overrides the identification header sent with every fetch.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}

// New returns a Client ready for concurrent use.
func New(opts ...Option) *Client {
	o := &options{
		timeout:   DefaultTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(o)
	}

	client := resty.New()
	client.SetHeader("User-Agent", o.userAgent)
	client.SetTimeout(o.timeout)

	return &Client{http: client}
}

// Fetch retrieves the document at url with a single GET request.
// Connection failures, DNS failures, timeouts, and non-2xx statuses are all
// reported as *TransportError: the target's failure is attributable to the
// caller-supplied URL, not to this service.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", &TransportError{URL: url, Detail: err.Error()}
	}

	if !resp.IsSuccess() {
		return "", &TransportError{URL: url, Detail: fmt.Sprintf("unexpected status %s", resp.Status())}
	}

	return resp.String(), nil
}
