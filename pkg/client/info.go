package client

import (
	"context"

	"github.com/frankyi-gh/aplcheck/internal/api"
	"github.com/frankyi-gh/aplcheck/internal/buildinfo"
)

// About fetches the server's build information.
func (c *Client) About(ctx context.Context) (*buildinfo.Info, error) {
	var info buildinfo.Info
	if _, err := c.get(ctx, c.baseURL+api.AboutRoute, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
