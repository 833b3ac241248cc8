package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
)

const recallClassifierSystem = `You decide whether answering the user's message benefits from recalling ` +
	`long-term memory about them. Respond with JSON only: {"recall": true} or {"recall": false}. ` +
	`Recall helps for questions about the user, their preferences, past conversations, or ongoing projects. ` +
	`It does not help for greetings, general knowledge, or self-contained requests.`

// RecallClassifier asks a small model whether a turn needs memory recall.
type RecallClassifier struct {
	client Client
	model  *ModelConfig
	logger *slog.Logger
}

// NewRecallClassifier returns a classifier over the given client and model.
func NewRecallClassifier(client Client, model *ModelConfig, logger *slog.Logger) *RecallClassifier {
	return &RecallClassifier{client: client, model: model, logger: logger}
}

// NeedsRecall returns whether memory should be consulted for the message.
// Any model or parse failure is treated as "no recall".
func (r *RecallClassifier) NeedsRecall(ctx context.Context, message string) bool {
	cfg := *r.model
	cfg.Temperature = 0
	cfg.MaxTokens = 50

	ch, err := r.client.Generate(ctx, &GenerateInput{
		Messages: []ConversationMessage{
			{Role: "system", Content: recallClassifierSystem},
			{Role: "user", Content: message},
		},
		Config: &cfg,
	})
	if err != nil {
		r.logger.Warn("recall classifier call failed", "error", err)
		return false
	}

	var text strings.Builder
	for chunk := range ch {
		if c, ok := chunk.(*TextChunk); ok {
			text.WriteString(c.Content)
		}
	}
	return parseRecallDecision(text.String())
}

// parseRecallDecision extracts {"recall": bool} from the model output,
// tolerating surrounding prose by carving the outermost braces.
func parseRecallDecision(text string) bool {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return false
	}
	var resp struct {
		Recall bool `json:"recall"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &resp); err != nil {
		return false
	}
	return resp.Recall
}
