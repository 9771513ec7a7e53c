package webcams

import "context"

// BBox is a map viewport given by its south-west and north-east corners
type BBox struct {
	SWLat float64
	SWLng float64
	NELat float64
	NELng float64
}

// MapBBox lists the webcams inside a bounding box at the given zoom level.
func (c *Client) MapBBox(ctx context.Context, box BBox, zoom int, opts ...CallOption) (Payload, error) {
	params := NewParams().
		Set("sw_lat", box.SWLat).
		Set("sw_lng", box.SWLng).
		Set("ne_lat", box.NELat).
		Set("ne_lng", box.NELng).
		Set("zoom", zoom).
		Set("mapapi", DefaultMapAPI)
	return c.invoke(ctx, MethodMapBBox, params, opts)
}

// ListCountries lists the countries known to the service.
func (c *Client) ListCountries(ctx context.Context, opts ...CallOption) (Payload, error) {
	return c.invoke(ctx, MethodListCountries, nil, opts)
}
