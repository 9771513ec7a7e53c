package webcams

import "context"

// SearchWebcams searches webcams by free text.
func (c *Client) SearchWebcams(ctx context.Context, query string, opts ...CallOption) (Payload, error) {
	return c.invoke(ctx, MethodSearchWebcams, paged(NewParams().Set("query", query)), opts)
}

// SearchUsers searches users by free text.
func (c *Client) SearchUsers(ctx context.Context, query string, opts ...CallOption) (Payload, error) {
	return c.invoke(ctx, MethodSearchUsers, paged(NewParams().Set("query", query)), opts)
}

// SearchTags searches tags by free text.
func (c *Client) SearchTags(ctx context.Context, query string, opts ...CallOption) (Payload, error) {
	return c.invoke(ctx, MethodSearchTags, paged(NewParams().Set("query", query)), opts)
}
