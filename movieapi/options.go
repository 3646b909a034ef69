package movieapi

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout    time.Duration
	cacheTTL   time.Duration
	httpClient *http.Client
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithCacheTTL sets how long responses (successes and failures alike) are
// served from the cache. Zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *clientOptions) {
		o.cacheTTL = ttl
	}
}

// WithHTTPClient replaces the underlying HTTP client. The timeout option is
// ignored when a custom client is supplied.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}
