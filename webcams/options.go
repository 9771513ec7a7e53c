package webcams

import (
	"net/http"
	"time"
)

// DefaultBaseURL is the webcams.travel REST endpoint
const DefaultBaseURL = "http://api.webcams.travel/rest"

// DefaultUserAgent is sent when no other user agent is configured
const DefaultUserAgent = "wct-go"

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	executor   Executor
}

func defaultClientOptions() clientOptions {
	return clientOptions{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
	}
}

// WithBaseURL overrides the REST endpoint.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for requests. WithTimeout does
// not modify a client supplied this way.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithTimeout sets the timeout of the default HTTP client. Zero, the
// default, means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout >= 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithExecutor replaces the request executor. The HTTP client options are
// ignored when an executor is supplied.
func WithExecutor(executor Executor) Option {
	return func(o *clientOptions) {
		o.executor = executor
	}
}

// CallOption adjusts the parameters of a single call. Options run after
// the operation's defaults, so they override them.
type CallOption func(*Params)

// WithParam sets any query parameter, including format, devid and method.
func WithParam(key string, value any) CallOption {
	return func(p *Params) {
		p.Set(key, value)
	}
}

// PerPage sets the number of results per page.
func PerPage(n int) CallOption {
	return WithParam("per_page", n)
}

// Page sets the page of results to return.
func Page(n int) CallOption {
	return WithParam("page", n)
}

// Radius sets the search radius for ListNearby.
func Radius(radius float64) CallOption {
	return WithParam("radius", radius)
}

// RadiusUnit sets the radius unit for ListNearby ("deg", "km" or "mi").
func RadiusUnit(unit string) CallOption {
	return WithParam("unit", unit)
}

// Limit sets the number of webcams returned by ListRandom.
func Limit(n int) CallOption {
	return WithParam("limit", n)
}

// RandomType sets the webcam type filter for ListRandom.
func RandomType(kind string) CallOption {
	return WithParam("type", kind)
}

// MapAPI sets the map provider for MapBBox.
func MapAPI(provider string) CallOption {
	return WithParam("mapapi", provider)
}
