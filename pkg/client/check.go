package client

import (
	"context"

	"github.com/frankyi-gh/aplcheck/internal/api"
	"github.com/frankyi-gh/aplcheck/internal/core"
)

// Check evaluates the given event stream against the server's active APL
// and returns the stored run.
func (c *Client) Check(ctx context.Context, events []core.Event, playerID int) (*api.RunResponse, error) {
	payload := api.CheckPayload{
		Events:   events,
		PlayerID: playerID,
	}

	var run api.RunResponse
	if _, err := c.post(ctx, c.baseURL+api.CheckRoute, payload, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// Explain evaluates the given event stream in trace mode.
func (c *Client) Explain(ctx context.Context, events []core.Event, playerID int) (*core.CheckTrace, error) {
	payload := api.CheckPayload{
		Events:   events,
		PlayerID: playerID,
	}

	var trace core.CheckTrace
	if _, err := c.post(ctx, c.baseURL+api.ExplainRoute, payload, &trace); err != nil {
		return nil, err
	}
	return &trace, nil
}
