package webcams

import "context"

// GetProfile gets the profile of a user.
func (c *Client) GetProfile(ctx context.Context, userID string, opts ...CallOption) (Payload, error) {
	return c.invoke(ctx, MethodGetProfile, NewParams().Set("userid", userID), opts)
}

// ListFavoriteWebcams gets the favorite webcams of a user.
// The service allows at most 50 per page; larger values are sent as is.
func (c *Client) ListFavoriteWebcams(ctx context.Context, userID string, opts ...CallOption) (Payload, error) {
	return c.invoke(ctx, MethodListFavoriteWebcams, paged(NewParams().Set("userid", userID)), opts)
}
