package movieapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const (
	defaultTimeout  = 25 * time.Second
	defaultCacheTTL = 30 * time.Second
)

// Client represents a client for the hosted movie recommender API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
	cache      *responseCache
	flight     singleflight.Group
}

// NewClient creates a new recommender API client
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	if u, err := url.Parse(baseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: base URL must be absolute, got %q", ErrInvalidConfig, baseURL)
	}

	// Ensure baseURL doesn't have trailing slash
	if baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}

	options := clientOptions{
		timeout:  defaultTimeout,
		cacheTTL: defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
		cache:      newResponseCache(options.cacheTTL),
	}, nil
}

// get performs a GET request through the response cache. Concurrent callers
// asking for the same path+params while no fresh entry exists share a single
// upstream request.
func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values) ([]byte, error) {
	key := cacheKey(path, params)

	if body, err, ok := c.cache.get(key); ok {
		cacheHits.Inc()
		c.logger.Debug().Str("endpoint", endpoint).Str("key", key).Msg("Cache hit")
		return body, err
	}
	cacheMisses.Inc()

	v, err, _ := c.flight.Do(key, func() (interface{}, error) {
		body, err := c.fetch(ctx, endpoint, path, params)
		c.cache.put(key, body, err)
		return body, err
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// fetch issues the actual HTTP request
func (c *Client) fetch(ctx context.Context, endpoint, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		requestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if resp.StatusCode >= 400 {
		requestsTotal.WithLabelValues(endpoint, "http_error").Inc()
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Msg("Upstream returned an error status")
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       truncateBody(body),
		}
	}

	requestsTotal.WithLabelValues(endpoint, "success").Inc()
	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("Upstream request completed")

	return body, nil
}

// Ping checks that the upstream API is reachable
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.HomeFeed(ctx, "trending", 1)
	return err
}

// Search queries the upstream search index by movie title
func (c *Client) Search(ctx context.Context, query string) ([]Movie, error) {
	params := url.Values{}
	params.Set("query", query)

	body, err := c.get(ctx, "search", "/tmdb/search", params)
	if err != nil {
		return nil, err
	}
	return decodeMovieList(body)
}

// HomeFeed retrieves the curated feed for a category
func (c *Client) HomeFeed(ctx context.Context, category string, limit int) ([]Movie, error) {
	params := url.Values{}
	params.Set("category", category)
	params.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, "home", "/home", params)
	if err != nil {
		return nil, err
	}
	return decodeMovieList(body)
}

// MovieDetail retrieves full metadata for a single movie
func (c *Client) MovieDetail(ctx context.Context, tmdbID int64) (*Detail, error) {
	body, err := c.get(ctx, "movie", fmt.Sprintf("/movie/id/%d", tmdbID), nil)
	if err != nil {
		return nil, err
	}

	var detail Detail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if detail.ID == 0 && detail.TmdbID == 0 && detail.Title == "" {
		return nil, ErrEmptyResult
	}
	return &detail, nil
}

// RecommendByGenre retrieves genre-based recommendations for a movie
func (c *Client) RecommendByGenre(ctx context.Context, tmdbID int64, limit int) ([]Movie, error) {
	params := url.Values{}
	params.Set("tmdb_id", strconv.FormatInt(tmdbID, 10))
	params.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, "recommend", "/recommend/genre", params)
	if err != nil {
		return nil, err
	}
	return decodeMovieList(body)
}

// decodeMovieList parses either {"results": [...]} or a bare array, the two
// record framings the upstream endpoints use.
func decodeMovieList(body []byte) ([]Movie, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapped struct {
			Results []Movie `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("failed to parse response: %w", err)
		}
		return wrapped.Results, nil
	}

	var list []Movie
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return list, nil
}

// truncateBody clips an error body excerpt to a readable length
func truncateBody(body []byte) string {
	const maxExcerpt = 300
	s := string(body)
	if len(s) > maxExcerpt {
		return s[:maxExcerpt]
	}
	return s
}
