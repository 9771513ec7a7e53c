package webcams

import "context"

// GetDetails gets the details of a webcam.
func (c *Client) GetDetails(ctx context.Context, webcamID string, opts ...CallOption) (Payload, error) {
	return c.invoke(ctx, MethodGetDetails, NewParams().Set("webcamid", webcamID), opts)
}

// GetDetailsMultiple gets the details of several webcams. webcamIDs is a
// comma-separated list and is forwarded unchanged; the service accepts up
// to 25 IDs.
func (c *Client) GetDetailsMultiple(ctx context.Context, webcamIDs string, opts ...CallOption) (Payload, error) {
	return c.invoke(ctx, MethodGetDetailsMultiple, NewParams().Set("webcamids", webcamIDs), opts)
}

// ListComments gets the comments on a webcam.
func (c *Client) ListComments(ctx context.Context, webcamID string, opts ...CallOption) (Payload, error) {
	return c.invoke(ctx, MethodListComments, paged(NewParams().Set("webcamid", webcamID)), opts)
}

// ListNearby lists the webcams close to a coordinate. Radius defaults to
// 0.2 degrees; the service caps it at 250 km.
func (c *Client) ListNearby(ctx context.Context, lat, lng float64, opts ...CallOption) (Payload, error) {
	params := NewParams().
		Set("lat", lat).
		Set("lng", lng).
		Set("radius", DefaultRadius).
		Set("unit", DefaultRadiusUnit)
	return c.invoke(ctx, MethodListNearby, paged(params), opts)
}

// ListByTag lists the webcams carrying a tag.
func (c *Client) ListByTag(ctx context.Context, tag string, opts ...CallOption) (Payload, error) {
	return c.invoke(ctx, MethodListByTag, paged(NewParams().Set("tag", tag)), opts)
}

// ListByUser lists the webcams of a user.
func (c *Client) ListByUser(ctx context.Context, userID string, opts ...CallOption) (Payload, error) {
	return c.invoke(ctx, MethodListByUser, paged(NewParams().Set("userid", userID)), opts)
}

// ListByContinent lists the webcams on a continent, given by its code
// (AF, AN, AS, EU, NA, OC, SA).
func (c *Client) ListByContinent(ctx context.Context, continent string, opts ...CallOption) (Payload, error) {
	return c.invoke(ctx, MethodListByContinent, paged(NewParams().Set("continent", continent)), opts)
}

// ListByCountry lists the webcams in a country, given by its ISO 3166-1
// alpha-2 code.
func (c *Client) ListByCountry(ctx context.Context, country string, opts ...CallOption) (Payload, error) {
	return c.invoke(ctx, MethodListByCountry, paged(NewParams().Set("country", country)), opts)
}

// ListNew lists the newest webcams.
func (c *Client) ListNew(ctx context.Context, opts ...CallOption) (Payload, error) {
	return c.invoke(ctx, MethodListNew, paged(NewParams()), opts)
}

// ListRecent lists the most recently updated webcams.
func (c *Client) ListRecent(ctx context.Context, opts ...CallOption) (Payload, error) {
	return c.invoke(ctx, MethodListRecent, paged(NewParams()), opts)
}

// ListPopular lists the most popular webcams.
func (c *Client) ListPopular(ctx context.Context, opts ...CallOption) (Payload, error) {
	return c.invoke(ctx, MethodListPopular, paged(NewParams()), opts)
}

// ListTimelapse lists webcams with a timelapse.
func (c *Client) ListTimelapse(ctx context.Context, opts ...CallOption) (Payload, error) {
	return c.invoke(ctx, MethodListTimelapse, paged(NewParams()), opts)
}

// ListRandom returns random webcams.
func (c *Client) ListRandom(ctx context.Context, opts ...CallOption) (Payload, error) {
	params := NewParams().
		Set("limit", DefaultLimit).
		Set("type", DefaultRandomType)
	return c.invoke(ctx, MethodListRandom, params, opts)
}
