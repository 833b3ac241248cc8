package mcp

import (
	"context"
	"time"
)

// HealthPingTimeout is the per-server deadline for a health probe.
const HealthPingTimeout = 5 * time.Second

// HealthStatus captures the health probe result for a single MCP server.
type HealthStatus struct {
	ServerID  string    `json:"server_id"`
	Healthy   bool      `json:"healthy"`
	LastCheck time.Time `json:"last_check"`
	Error     string    `json:"error,omitempty"`
	ToolCount int       `json:"tool_count"`
}

// CheckHealth probes every registered server with a ListTools call and
// returns one status per server. Probes bypass the tool cache so a dead
// session is actually detected.
func (c *Client) CheckHealth(ctx context.Context) []HealthStatus {
	ids := c.registry.IDs()
	statuses := make([]HealthStatus, 0, len(ids))

	for _, id := range ids {
		status := HealthStatus{ServerID: id, LastCheck: time.Now()}

		c.InvalidateToolCache(id)
		pingCtx, cancel := context.WithTimeout(ctx, HealthPingTimeout)
		tools, err := c.ListTools(pingCtx, id)
		cancel()

		if err != nil {
			status.Error = err.Error()
		} else {
			status.Healthy = true
			status.ToolCount = len(tools)
		}
		statuses = append(statuses, status)
	}
	return statuses
}
