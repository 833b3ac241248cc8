package memory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openconvo/gateway/pkg/config"
	"github.com/openconvo/gateway/pkg/graph"
)

// decayStep maps a maximum age to its retention factor.
type decayStep struct {
	maxAge time.Duration
	factor float64
}

var decayCurve = []decayStep{
	{24 * time.Hour, 1.0},
	{7 * 24 * time.Hour, 0.9},
	{30 * 24 * time.Hour, 0.7},
	{90 * 24 * time.Hour, 0.5},
	{365 * 24 * time.Hour, 0.3},
}

const decayFloor = 0.2

// DecayFactor returns the stepwise retention factor for a node age.
func DecayFactor(age time.Duration) float64 {
	for _, step := range decayCurve {
		if age <= step.maxAge {
			return step.factor
		}
	}
	return decayFloor
}

// accessBoost converts an access count into the reinforcement added on
// top of decayed importance: +0.05 per 10 accesses, capped at +0.2.
func accessBoost(accessCount int) float64 {
	boost := float64(accessCount/10) * 0.05
	if boost > 0.2 {
		boost = 0.2
	}
	return boost
}

// Forgetting applies time decay and removes nodes that have faded below
// the forget threshold.
type Forgetting struct {
	store  graph.Store
	cfg    config.MemoryMaintenanceConfig
	logger *slog.Logger

	// now is a hook for tests.
	now func() time.Time
}

// NewForgetting returns a forgetting manager.
func NewForgetting(store graph.Store, cfg config.MemoryMaintenanceConfig, logger *slog.Logger) *Forgetting {
	return &Forgetting{store: store, cfg: cfg, logger: logger, now: time.Now}
}

// ApplyDecay recomputes importance for the session's layer-0 and
// layer-1 nodes. Returns the number of nodes updated.
func (f *Forgetting) ApplyDecay(ctx context.Context, scoped string) (int, error) {
	now := f.now()
	updates := make(map[string]float64)

	for _, layer := range []int{graph.LayerHot, graph.LayerWarm} {
		l := layer
		nodes, err := f.store.ListNodes(ctx, graph.NodeQuery{SessionID: scoped, Layer: &l})
		if err != nil {
			return 0, fmt.Errorf("failed to load layer %d nodes: %w", layer, err)
		}
		for _, n := range nodes {
			if n.CreatedAt.IsZero() {
				continue
			}
			factor := DecayFactor(now.Sub(n.CreatedAt))
			next := n.Importance*factor + accessBoost(n.AccessCount)
			if next > 1.0 {
				next = 1.0
			}
			updates[n.ID] = next
		}
	}

	if len(updates) == 0 {
		return 0, nil
	}
	if err := f.store.UpdateImportance(ctx, updates); err != nil {
		return 0, fmt.Errorf("failed to apply decay: %w", err)
	}
	f.logger.Info("time-decay sweep complete", "session_id", scoped, "updated", len(updates))
	return len(updates), nil
}

// Cleanup detach-deletes forgotten layer-0 nodes, keeping Messages.
// Returns the number of nodes removed.
func (f *Forgetting) Cleanup(ctx context.Context, scoped string) (int, error) {
	deleted, err := f.store.DeleteBelow(ctx, scoped, f.cfg.MinImportance,
		[]graph.NodeType{graph.NodeEntity, graph.NodeAction, graph.NodeTime, graph.NodeLocation},
		f.cfg.CleanupBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up forgotten nodes: %w", err)
	}
	if deleted > 0 {
		f.logger.Info("forgotten-node cleanup complete", "session_id", scoped, "deleted", deleted)
	}
	return deleted, nil
}
