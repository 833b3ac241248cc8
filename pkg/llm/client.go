// Package llm wraps the external model-serving service: a chunk-streaming
// client, the tool-calling chat loop, and the small single-shot helpers
// (completion, embeddings, the recall classifier) built on top of it.
package llm

//go:generate protoc --go_out=.. --go-grpc_out=.. --go_opt=module=github.com/openconvo/gateway --go-grpc_opt=module=github.com/openconvo/gateway ../proto/llm.proto

import (
	"context"

	"github.com/openconvo/gateway/pkg/config"
)

// Client is the interface for calling the LLM service. It wraps the gRPC
// connection and provides a channel-based streaming API.
type Client interface {
	// Generate sends a conversation to the LLM and returns a stream of
	// chunks. The channel is closed when the stream completes; errors are
	// delivered as ErrorChunk values.
	Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error)

	// Embed computes embedding vectors for a batch of texts.
	Embed(ctx context.Context, model string, texts []string) ([][]float64, error)

	// Close releases the underlying connection.
	Close() error
}

// GenerateInput is one Generate request.
type GenerateInput struct {
	SessionID string
	TurnID    string
	Messages  []ConversationMessage
	Config    *ModelConfig
	Tools     []ToolDefinition // nil = no tools
}

// ModelConfig selects and tunes the model for one call. The API key is
// resolved by the serving side from APIKeyEnv; it never rides the wire.
type ModelConfig struct {
	Model       string
	APIKeyEnv   string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	TimeoutS    int
}

// MainModelConfig maps the gateway's primary API settings.
func MainModelConfig(cfg config.APIConfig) *ModelConfig {
	return &ModelConfig{
		Model:       cfg.Model,
		APIKeyEnv:   cfg.APIKeyEnv,
		BaseURL:     cfg.BaseURL,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		TimeoutS:    cfg.TimeoutS,
	}
}

// MemoryModelConfig maps the memory classifier/summary settings, falling
// back to the main API when use_main_api is set.
func MemoryModelConfig(memCfg config.MemoryAPIConfig, mainCfg config.APIConfig) *ModelConfig {
	if memCfg.UseMainAPI {
		return MainModelConfig(mainCfg)
	}
	return &ModelConfig{
		Model:     memCfg.Model,
		APIKeyEnv: memCfg.APIKeyEnv,
		BaseURL:   memCfg.BaseURL,
	}
}

// ConversationMessage is one entry of the model conversation.
type ConversationMessage struct {
	Role       string // "system", "user", "assistant", "tool"
	Content    string
	ToolCalls  []ToolCall // assistant messages
	ToolCallID string     // tool result messages
	ToolName   string     // tool result messages
}

// ToolDefinition describes a tool offered to the model.
type ToolDefinition struct {
	Name             string
	Description      string
	ParametersSchema string // JSON Schema
}

// ToolCall is the model's request to invoke a tool.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // JSON
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText     ChunkType = "text"
	ChunkTypeThinking ChunkType = "thinking"
	ChunkTypeToolCall ChunkType = "tool_call"
	ChunkTypeUsage    ChunkType = "usage"
	ChunkTypeError    ChunkType = "error"
)

// TextChunk is a piece of the model's text response.
type TextChunk struct{ Content string }

// ThinkingChunk is a piece of the model's internal reasoning.
type ThinkingChunk struct{ Content string }

// ToolCallChunk signals the model wants to call a tool.
type ToolCallChunk struct{ CallID, Name, Arguments string }

// UsageChunk reports token consumption for this call.
type UsageChunk struct{ InputTokens, OutputTokens, TotalTokens int32 }

// ErrorChunk signals an error from the model provider.
type ErrorChunk struct {
	Message   string
	Code      string
	Retryable bool
}

func (c *TextChunk) chunkType() ChunkType     { return ChunkTypeText }
func (c *ThinkingChunk) chunkType() ChunkType { return ChunkTypeThinking }
func (c *ToolCallChunk) chunkType() ChunkType { return ChunkTypeToolCall }
func (c *UsageChunk) chunkType() ChunkType    { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType    { return ChunkTypeError }
