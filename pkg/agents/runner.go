// Package agents runs named agent handoffs: prompts delegated to a
// configured agent definition and executed as their own chat-loop turn.
package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/openconvo/gateway/pkg/llm"
)

// definitionsFile is the optional agent definition file inside the
// configuration directory.
const definitionsFile = "agents.json"

// defaultMaxConcurrent bounds simultaneously running agent handoffs.
const defaultMaxConcurrent = 5

// Definition describes one named agent.
type Definition struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	SystemPrompt string `json:"system_prompt"`
	Model        string `json:"model,omitempty"`
	MaxTokens    int    `json:"max_tokens,omitempty"`
}

// LoadDefinitions reads agents.json from the configuration directory.
// A missing file means no agents are configured and is not an error.
func LoadDefinitions(configDir string) ([]Definition, error) {
	path := filepath.Join(configDir, definitionsFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading agent definitions: %w", err)
	}

	var defs []Definition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", definitionsFile, err)
	}
	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("agent definition requires a name")
		}
		if def.SystemPrompt == "" {
			return nil, fmt.Errorf("agent %q requires a system_prompt", def.Name)
		}
	}
	return defs, nil
}

// Runner executes agent handoffs. Each run is a standalone chat-loop
// turn under the agent's system prompt; the executor (may be nil) gives
// agents access to the tool surface.
type Runner struct {
	client   llm.Client
	base     *llm.ModelConfig
	executor llm.ToolExecutor
	logger   *slog.Logger

	mu            sync.Mutex
	defs          map[string]Definition
	active        int
	maxConcurrent int
}

// NewRunner creates a runner over the given definitions.
func NewRunner(client llm.Client, base *llm.ModelConfig, executor llm.ToolExecutor, defs []Definition, logger *slog.Logger) *Runner {
	byName := make(map[string]Definition, len(defs))
	for _, def := range defs {
		byName[def.Name] = def
	}
	return &Runner{
		client:        client,
		base:          base,
		executor:      executor,
		logger:        logger,
		defs:          byName,
		maxConcurrent: defaultMaxConcurrent,
	}
}

// Names returns the configured agent names, sorted.
func (r *Runner) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunAgent executes one handoff and returns the agent's final text.
func (r *Runner) RunAgent(ctx context.Context, agentName, prompt, sessionID string) (string, error) {
	r.mu.Lock()
	def, ok := r.defs[agentName]
	if !ok {
		r.mu.Unlock()
		return "", fmt.Errorf("agent %q is not defined", agentName)
	}
	if r.active >= r.maxConcurrent {
		r.mu.Unlock()
		return "", fmt.Errorf("agent concurrency limit reached (limit %d)", r.maxConcurrent)
	}
	r.active++
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.active--
		r.mu.Unlock()
	}()

	model := *r.base
	if def.Model != "" {
		model.Model = def.Model
	}
	if def.MaxTokens > 0 {
		model.MaxTokens = def.MaxTokens
	}

	turnID := uuid.NewString()
	r.logger.Info("Running agent handoff",
		"agent", agentName, "session_id", sessionID, "turn_id", turnID)

	loop := llm.NewChatLoop(r.client, &model, r.logger)
	messages := []llm.ConversationMessage{
		{Role: "system", Content: def.SystemPrompt},
		{Role: "user", Content: prompt},
	}
	result, err := loop.Run(ctx, messages, sessionID, turnID, r.executor)
	if err != nil {
		return "", fmt.Errorf("agent %s failed: %w", agentName, err)
	}
	if result.Status == llm.StatusNeedsConfirmation {
		// Handoff turns have no confirmation surface; high-risk tool
		// calls from agents are refused rather than held pending.
		return "", fmt.Errorf("agent %s requested a high-risk tool call that requires confirmation", agentName)
	}
	return result.Content, nil
}
