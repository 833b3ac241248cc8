package llm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconvo/gateway/pkg/memory"
)

func TestParseRecallDecision(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain true", `{"recall": true}`, true},
		{"plain false", `{"recall": false}`, false},
		{"prose wrapped", `Sure, here is my answer: {"recall": true} hope that helps`, true},
		{"no json", "recall yes", false},
		{"malformed", `{"recall": "maybe"}`, false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecallDecision(tt.text))
		})
	}
}

func TestNeedsRecall(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := &scriptedClient{turns: [][]Chunk{
		{&TextChunk{Content: `{"recall": true}`}},
	}}
	rc := NewRecallClassifier(client, testModel(), logger)

	assert.True(t, rc.NeedsRecall(context.Background(), "what did I say about the deploy?"))

	// Classifier calls run deterministic and tightly bounded.
	cfg := client.inputs[0].Config
	assert.Zero(t, cfg.Temperature)
	assert.Equal(t, 50, cfg.MaxTokens)
}

func TestNeedsRecall_FailuresMeanNo(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rc := NewRecallClassifier(&scriptedClient{err: errors.New("unavailable")}, testModel(), logger)
	assert.False(t, rc.NeedsRecall(context.Background(), "hello"))

	rc = NewRecallClassifier(&scriptedClient{turns: [][]Chunk{
		{&TextChunk{Content: "I think so"}},
	}}, testModel(), logger)
	assert.False(t, rc.NeedsRecall(context.Background(), "hello"))
}

func TestModelCompleter(t *testing.T) {
	client := &scriptedClient{turns: [][]Chunk{
		{&TextChunk{Content: "summary "}, &TextChunk{Content: "text"}},
	}}
	c := NewModelCompleter(client, testModel())

	out, err := c.Complete(context.Background(), memory.CompleteRequest{
		System:      "summarize",
		User:        "a long conversation",
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	require.NoError(t, err)
	assert.Equal(t, "summary text", out)

	in := client.inputs[0]
	require.Len(t, in.Messages, 2)
	assert.Equal(t, "system", in.Messages[0].Role)
	assert.Equal(t, "user", in.Messages[1].Role)
	assert.InDelta(t, 0.3, in.Config.Temperature, 1e-9)
	assert.Equal(t, 1000, in.Config.MaxTokens)
	// The shared model config must not be mutated per request.
	assert.InDelta(t, 0.7, c.model.Temperature, 1e-9)
}

func TestModelCompleter_ErrorChunk(t *testing.T) {
	client := &scriptedClient{turns: [][]Chunk{
		{&ErrorChunk{Message: "context too long", Code: "400"}},
	}}
	c := NewModelCompleter(client, testModel())

	_, err := c.Complete(context.Background(), memory.CompleteRequest{User: "hi"})
	assert.ErrorContains(t, err, "context too long")
}

func TestEmbeddings(t *testing.T) {
	e := NewEmbeddings(&scriptedClient{}, "text-embedding-3-small")

	vecs, err := e.Embed(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, vecs, 2)
	assert.Equal(t, []float64{1, 1}, vecs[1])
}
