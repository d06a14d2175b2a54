package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/frankyi-gh/aplcheck/internal/api"
)

// ListRuns returns the most recent stored check runs, newest first.
// Requires an admin token.
func (c *Client) ListRuns(ctx context.Context, limit int) ([]api.RunResponse, error) {
	url := c.baseURL + api.ListRunsRoute
	if limit > 0 {
		url += "?limit=" + strconv.Itoa(limit)
	}

	var runs []api.RunResponse
	if _, err := c.get(ctx, url, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetRun returns a single stored check run by id. Requires an admin token.
func (c *Client) GetRun(ctx context.Context, id string) (*api.RunResponse, error) {
	url := c.baseURL + strings.Replace(api.GetRunRoute, "{id}", id, 1)

	var run api.RunResponse
	if _, err := c.get(ctx, url, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// UpdateAPL pushes an APL definition in its authored YAML form and makes it
// the active APL. Requires an admin token.
func (c *Client) UpdateAPL(ctx context.Context, definition []byte) error {
	req, err := http.NewRequestWithContext(ctx, "PUT", c.baseURL+api.UpdateAPLRoute, bytes.NewReader(definition))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/yaml")

	_, err = c.do(req, nil)
	return err
}
