package client

import "context"

// TriggerCycle asks the server to start a refresh cycle. The server
// rejects the trigger with a conflict when a cycle is already running.
func (c *Client) TriggerCycle(ctx context.Context) error {
	return c.post(ctx, "/api/v1/cycles", nil, nil)
}
