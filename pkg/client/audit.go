package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/frankyi-gh/aplcheck/internal/api"
	"github.com/frankyi-gh/aplcheck/internal/core"
)

type ListAuditsOpts struct {
	Limit int

	Action   string
	RunID    string
	PlayerID int
}

// ListAudits retrieves the latest audit entries from the server. Requires
// an admin token and a server configured with a queryable auditor.
func (c *Client) ListAudits(ctx context.Context, opts ListAuditsOpts) ([]core.AuditEntry, error) {
	q := url.Values{}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Action != "" {
		q.Set("action", opts.Action)
	}
	if opts.RunID != "" {
		q.Set("run_id", opts.RunID)
	}
	if opts.PlayerID != 0 {
		q.Set("player_id", strconv.Itoa(opts.PlayerID))
	}

	reqURL := c.baseURL + api.ListAuditsRoute
	if encoded := q.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	var entries []core.AuditEntry
	if _, err := c.get(ctx, reqURL, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
