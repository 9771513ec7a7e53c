package webcams

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client represents a webcams.travel API client. Its configuration is
// fixed at construction, so a Client is safe for concurrent use.
type Client struct {
	devID    string
	baseURL  string
	executor Executor
	logger   zerolog.Logger
}

// NewClient creates a new webcams.travel client for the given developer ID
func NewClient(devID string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(devID) == "" {
		return nil, ErrMissingDevID
	}

	options := defaultClientOptions()
	for _, opt := range opts {
		opt(&options)
	}

	baseURL := strings.TrimRight(options.baseURL, "/")
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" || u.RawQuery != "" || u.Fragment != "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, options.baseURL)
	}

	executor := options.executor
	if executor == nil {
		httpClient := options.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: options.timeout}
		}
		executor = NewHTTPExecutor(httpClient, options.userAgent, logger)
	}

	return &Client{
		devID:    devID,
		baseURL:  baseURL,
		executor: executor,
		logger:   logger,
	}, nil
}

// DevID returns the configured developer ID
func (c *Client) DevID() string {
	return c.devID
}

// BaseURL returns the REST endpoint requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BuildQuery renders the query string for method using the client's
// developer ID.
func (c *Client) BuildQuery(method string, params *Params) string {
	return BuildQuery(c.devID, method, params)
}

// URL returns the full request URL for method without performing it
func (c *Client) URL(method string, params *Params) string {
	return c.baseURL + "?" + c.BuildQuery(method, params)
}

// Call performs method with params and returns the decoded payload.
func (c *Client) Call(ctx context.Context, method string, params *Params) (Payload, error) {
	start := time.Now()

	payload, err := c.executor.Execute(ctx, c.URL(method, params))
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("method", method).
			Msg("webcams.travel API call failed")
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	c.logger.Debug().
		Str("method", method).
		Int("params", params.Len()).
		Dur("duration", time.Since(start)).
		Msg("webcams.travel API call completed")

	return payload, nil
}

// invoke applies opts over defaults and performs the call
func (c *Client) invoke(ctx context.Context, method string, defaults *Params, opts []CallOption) (Payload, error) {
	params := defaults
	if params == nil {
		params = NewParams()
	}
	for _, opt := range opts {
		opt(params)
	}
	return c.Call(ctx, method, params)
}
