package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openconvo/gateway/pkg/memory"
)

// ModelCompleter adapts a streaming Client into the non-streaming
// completion interface the memory layer consumes.
type ModelCompleter struct {
	client Client
	model  *ModelConfig
}

// NewModelCompleter returns a completer over the given client and model.
func NewModelCompleter(client Client, model *ModelConfig) *ModelCompleter {
	return &ModelCompleter{client: client, model: model}
}

// Complete runs a single system+user exchange and collects the streamed
// text into one string.
func (m *ModelCompleter) Complete(ctx context.Context, req memory.CompleteRequest) (string, error) {
	cfg := *m.model
	cfg.Temperature = req.Temperature
	if req.MaxTokens > 0 {
		cfg.MaxTokens = req.MaxTokens
	}

	messages := []ConversationMessage{}
	if req.System != "" {
		messages = append(messages, ConversationMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, ConversationMessage{Role: "user", Content: req.User})

	ch, err := m.client.Generate(ctx, &GenerateInput{
		Messages: messages,
		Config:   &cfg,
	})
	if err != nil {
		return "", err
	}

	var text strings.Builder
	for chunk := range ch {
		switch c := chunk.(type) {
		case *TextChunk:
			text.WriteString(c.Content)
		case *ErrorChunk:
			return "", fmt.Errorf("completion failed (%s): %s", c.Code, c.Message)
		}
	}
	return text.String(), nil
}

// Embeddings adapts a Client's embedding endpoint to the memory layer's
// batch embedder, pinning the model per call site.
type Embeddings struct {
	client Client
	model  string
}

// NewEmbeddings returns an embedder using the given embedding model.
func NewEmbeddings(client Client, model string) *Embeddings {
	return &Embeddings{client: client, model: model}
}

func (e *Embeddings) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	return e.client.Embed(ctx, e.model, texts)
}
