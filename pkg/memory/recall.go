package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/openconvo/gateway/pkg/graph"
)

// recallParams are the adaptive limits for one recall pass.
type recallParams struct {
	MaxTokens     int
	ItemsPerLayer int
	RecentDays    int
}

var recallPresets = map[string]recallParams{
	"simple":  {MaxTokens: 800, ItemsPerLayer: 2, RecentDays: 3},
	"normal":  {MaxTokens: 1500, ItemsPerLayer: 3, RecentDays: 7},
	"complex": {MaxTokens: 2500, ItemsPerLayer: 5, RecentDays: 14},
}

// reminiscenceMarkers widen the recall window when the user is
// explicitly referring back to earlier conversation.
var reminiscenceMarkers = []string{
	"before", "just now", "last time", "remember", "said",
	"之前", "刚才", "上次", "记得", "说过",
}

// recallItem is one recalled memory with its layer label.
type recallItem struct {
	Content    string
	Importance float64
	Time       time.Time
	Via        string
}

// RecallEngine merges summaries, concepts, entity-matched messages,
// two-hop related messages and recent dialog into one context block.
type RecallEngine struct {
	store     graph.Store
	extractor Extractor
	logger    *slog.Logger
}

// NewRecallEngine returns a recall engine over the given store.
func NewRecallEngine(store graph.Store, extractor Extractor, logger *slog.Logger) *RecallEngine {
	return &RecallEngine{store: store, extractor: extractor, logger: logger}
}

// Recall returns formatted memory context for a query, or "" when
// nothing relevant is stored. Never returns an error to callers: recall
// is best-effort and an empty context is always a valid answer.
func (r *RecallEngine) Recall(ctx context.Context, query, sessionID, userID string) string {
	entities := r.queryEntities(ctx, query)
	params := calculateRecallParams(query, entities)
	scoped := graph.ScopedSessionID(userID, sessionID)

	layers := []struct {
		header string
		items  []recallItem
	}{
		{"[Long-term summaries]", r.summaries(ctx, userID, scoped)},
		{"[Topic concepts]", r.concepts(ctx, userID, scoped)},
		{"[Direct memories]", r.directMatches(ctx, userID, scoped, entities)},
		{"[Related knowledge]", r.relatedMatches(ctx, userID, scoped, entities)},
		{"[Recent dialog]", r.recentMessages(ctx, scoped, params.RecentDays)},
	}

	return formatRecall(layers, params)
}

func (r *RecallEngine) queryEntities(ctx context.Context, query string) []string {
	extraction, err := r.extractor.Extract(ctx, "user", query)
	if err != nil {
		r.logger.Warn("recall entity extraction failed", "error", err)
		return nil
	}
	return extraction.Entities
}

// calculateRecallParams sizes the recall by query complexity, widened
// when the query reminisces about earlier conversation.
func calculateRecallParams(query string, entities []string) recallParams {
	entityCount := len(entities)
	queryLength := len([]rune(query))

	level := "simple"
	switch {
	case entityCount >= 3 || queryLength > 80:
		level = "complex"
	case entityCount >= 1 || queryLength > 20:
		level = "normal"
	}
	params := recallPresets[level]

	lowered := strings.ToLower(query)
	for _, marker := range reminiscenceMarkers {
		if strings.Contains(lowered, marker) {
			params.ItemsPerLayer++
			params.RecentDays += 3
			break
		}
	}
	return params
}

func (r *RecallEngine) summaries(ctx context.Context, userID, currentScoped string) []recallItem {
	nodes, err := r.store.ListNodes(ctx, graph.NodeQuery{
		UserID: userID,
		Types:  []graph.NodeType{graph.NodeSummary},
	})
	if err != nil {
		r.logger.Warn("summary recall failed", "error", err)
		return nil
	}
	return toRecallItems(nodes, currentScoped)
}

func (r *RecallEngine) concepts(ctx context.Context, userID, currentScoped string) []recallItem {
	nodes, err := r.store.ListNodes(ctx, graph.NodeQuery{
		UserID: userID,
		Types:  []graph.NodeType{graph.NodeConcept},
	})
	if err != nil {
		r.logger.Warn("concept recall failed", "error", err)
		return nil
	}
	return toRecallItems(nodes, currentScoped)
}

// directMatches resolves query entities to their source messages across
// the user's other sessions.
func (r *RecallEngine) directMatches(ctx context.Context, userID, currentScoped string, entities []string) []recallItem {
	var items []recallItem
	var hitIDs []string
	for _, entity := range entities {
		node, err := r.store.FindNodeByContent(ctx, graph.NodeEntity, entity, graph.NodeQuery{UserID: userID})
		if err != nil || node == nil {
			continue
		}
		hitIDs = append(hitIDs, node.ID)
		messages, err := r.store.Neighbors(ctx, node.ID, graph.RelFromMessage, graph.DirOut)
		if err != nil {
			continue
		}
		for _, m := range messages {
			if m.Type == graph.NodeMessage && m.SessionID != currentScoped {
				items = append(items, recallItem{Content: m.Content, Importance: m.Importance, Time: m.CreatedAt})
			}
		}
	}
	if len(hitIDs) > 0 {
		if err := r.store.IncrementAccess(ctx, hitIDs); err != nil {
			r.logger.Warn("failed to bump entity access counts", "error", err)
		}
	}
	return items
}

// relatedMatches walks entity -> action -> entity two-hop paths and
// collects the messages behind the far entities.
func (r *RecallEngine) relatedMatches(ctx context.Context, userID, currentScoped string, entities []string) []recallItem {
	var items []recallItem
	for _, entity := range entities {
		node, err := r.store.FindNodeByContent(ctx, graph.NodeEntity, entity, graph.NodeQuery{UserID: userID})
		if err != nil || node == nil {
			continue
		}
		actions := r.factNeighbors(ctx, node.ID)
		for _, action := range actions {
			if action.Type != graph.NodeAction {
				continue
			}
			related := r.factNeighbors(ctx, action.ID)
			for _, far := range related {
				if far.Type != graph.NodeEntity || far.ID == node.ID {
					continue
				}
				messages, err := r.store.Neighbors(ctx, far.ID, graph.RelFromMessage, graph.DirOut)
				if err != nil {
					continue
				}
				for _, m := range messages {
					if m.Type == graph.NodeMessage && m.SessionID != currentScoped {
						items = append(items, recallItem{
							Content:    m.Content,
							Importance: m.Importance,
							Time:       m.CreatedAt,
							Via:        far.Content,
						})
					}
				}
			}
		}
	}
	return items
}

// factNeighbors follows SUBJECT_OF and OBJECT_OF in both directions.
func (r *RecallEngine) factNeighbors(ctx context.Context, id string) []*graph.Node {
	var out []*graph.Node
	for _, rel := range []graph.Relation{graph.RelSubjectOf, graph.RelObjectOf} {
		nodes, err := r.store.Neighbors(ctx, id, rel, graph.DirBoth)
		if err != nil {
			continue
		}
		out = append(out, nodes...)
	}
	return out
}

// recentMessages is the only layer scoped to the current session.
func (r *RecallEngine) recentMessages(ctx context.Context, scoped string, days int) []recallItem {
	nodes, err := r.store.ListNodes(ctx, graph.NodeQuery{
		SessionID: scoped,
		Types:     []graph.NodeType{graph.NodeMessage},
		Since:     time.Now().AddDate(0, 0, -days),
	})
	if err != nil {
		r.logger.Warn("recent message recall failed", "error", err)
		return nil
	}
	var items []recallItem
	for _, n := range nodes {
		items = append(items, recallItem{Content: n.Content, Importance: n.Importance, Time: n.CreatedAt})
	}
	return items
}

func toRecallItems(nodes []*graph.Node, excludeScoped string) []recallItem {
	var items []recallItem
	for _, n := range nodes {
		if n.SessionID == excludeScoped {
			continue
		}
		items = append(items, recallItem{Content: n.Content, Importance: n.Importance, Time: n.CreatedAt})
	}
	return items
}

// formatRecall renders the layered items, highest-value layers first,
// under a rough token budget of len/1.5 per item.
func formatRecall(layers []struct {
	header string
	items  []recallItem
}, params recallParams) string {
	var lines []string
	tokenCount := 0

	for _, layer := range layers {
		if len(layer.items) == 0 {
			continue
		}
		sorted := append([]recallItem(nil), layer.items...)
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Importance != sorted[j].Importance {
				return sorted[i].Importance > sorted[j].Importance
			}
			return sorted[i].Time.After(sorted[j].Time)
		})

		layerLines := []string{layer.header}
		for i, item := range sorted {
			if i >= params.ItemsPerLayer {
				break
			}
			if item.Content == "" {
				continue
			}
			estTokens := len(item.Content) * 2 / 3
			if tokenCount+estTokens > params.MaxTokens {
				break
			}

			content := item.Content
			if runes := []rune(content); len(runes) > 100 {
				content = string(runes[:100]) + "..."
			}
			var timeStr string
			if !item.Time.IsZero() {
				timeStr = item.Time.Format("01-02")
			}
			line := fmt.Sprintf("- [%s] %s", timeStr, content)
			if item.Via != "" {
				line += fmt.Sprintf(" (via: %s)", item.Via)
			}
			layerLines = append(layerLines, line)
			tokenCount += estTokens
		}

		if len(layerLines) > 1 {
			lines = append(lines, layerLines...)
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}
