package webcams

import (
	"context"
)

// API defines the interface for webcams.travel operations
type API interface {
	// Call performs any method identifier with explicit parameters
	Call(ctx context.Context, method string, params *Params) (Payload, error)

	// URL returns the request URL without performing it
	URL(method string, params *Params) string

	// Users
	GetProfile(ctx context.Context, userID string, opts ...CallOption) (Payload, error)
	ListFavoriteWebcams(ctx context.Context, userID string, opts ...CallOption) (Payload, error)

	// Webcams
	GetDetails(ctx context.Context, webcamID string, opts ...CallOption) (Payload, error)
	GetDetailsMultiple(ctx context.Context, webcamIDs string, opts ...CallOption) (Payload, error)
	ListComments(ctx context.Context, webcamID string, opts ...CallOption) (Payload, error)
	ListNearby(ctx context.Context, lat, lng float64, opts ...CallOption) (Payload, error)
	ListByTag(ctx context.Context, tag string, opts ...CallOption) (Payload, error)
	ListByUser(ctx context.Context, userID string, opts ...CallOption) (Payload, error)
	ListByContinent(ctx context.Context, continent string, opts ...CallOption) (Payload, error)
	ListByCountry(ctx context.Context, country string, opts ...CallOption) (Payload, error)
	ListNew(ctx context.Context, opts ...CallOption) (Payload, error)
	ListRecent(ctx context.Context, opts ...CallOption) (Payload, error)
	ListPopular(ctx context.Context, opts ...CallOption) (Payload, error)
	ListTimelapse(ctx context.Context, opts ...CallOption) (Payload, error)
	ListRandom(ctx context.Context, opts ...CallOption) (Payload, error)

	// Search
	SearchWebcams(ctx context.Context, query string, opts ...CallOption) (Payload, error)
	SearchUsers(ctx context.Context, query string, opts ...CallOption) (Payload, error)
	SearchTags(ctx context.Context, query string, opts ...CallOption) (Payload, error)

	// Maps and countries
	MapBBox(ctx context.Context, box BBox, zoom int, opts ...CallOption) (Payload, error)
	ListCountries(ctx context.Context, opts ...CallOption) (Payload, error)
}

var _ API = (*Client)(nil)
