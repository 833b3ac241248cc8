package agents

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconvo/gateway/pkg/llm"
)

// scriptedClient replays one chunk slice per Generate call, in order.
type scriptedClient struct {
	turns  [][]llm.Chunk
	inputs []*llm.GenerateInput
}

func (s *scriptedClient) Generate(_ context.Context, in *llm.GenerateInput) (<-chan llm.Chunk, error) {
	s.inputs = append(s.inputs, in)
	i := len(s.inputs) - 1
	if i >= len(s.turns) {
		i = len(s.turns) - 1
	}
	ch := make(chan llm.Chunk, len(s.turns[i]))
	for _, c := range s.turns[i] {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (s *scriptedClient) Embed(_ context.Context, _ string, texts []string) ([][]float64, error) {
	return make([][]float64, len(texts)), nil
}

func (s *scriptedClient) Close() error { return nil }

func testDefs() []Definition {
	return []Definition{
		{Name: "researcher", SystemPrompt: "You research things.", Model: "small-model"},
		{Name: "summarizer", SystemPrompt: "You summarize.", MaxTokens: 256},
	}
}

func TestRunner_RunAgent(t *testing.T) {
	client := &scriptedClient{turns: [][]llm.Chunk{
		{&llm.TextChunk{Content: "research findings"}},
	}}
	base := &llm.ModelConfig{Model: "main-model", MaxTokens: 1024}
	runner := NewRunner(client, base, nil, testDefs(), slog.Default())

	out, err := runner.RunAgent(context.Background(), "researcher", "look into X", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "research findings", out)

	require.Len(t, client.inputs, 1)
	in := client.inputs[0]
	assert.Equal(t, "small-model", in.Config.Model)
	assert.Equal(t, "sess-1", in.SessionID)
	require.Len(t, in.Messages, 2)
	assert.Equal(t, "system", in.Messages[0].Role)
	assert.Equal(t, "You research things.", in.Messages[0].Content)
	assert.Equal(t, "look into X", in.Messages[1].Content)
}

func TestRunner_DefinitionOverrides(t *testing.T) {
	client := &scriptedClient{turns: [][]llm.Chunk{
		{&llm.TextChunk{Content: "short"}},
	}}
	base := &llm.ModelConfig{Model: "main-model", MaxTokens: 1024}
	runner := NewRunner(client, base, nil, testDefs(), slog.Default())

	_, err := runner.RunAgent(context.Background(), "summarizer", "tl;dr", "sess-1")
	require.NoError(t, err)

	in := client.inputs[0]
	assert.Equal(t, "main-model", in.Config.Model)
	assert.Equal(t, 256, in.Config.MaxTokens)
}

func TestRunner_UnknownAgent(t *testing.T) {
	runner := NewRunner(&scriptedClient{}, &llm.ModelConfig{}, nil, testDefs(), slog.Default())
	_, err := runner.RunAgent(context.Background(), "nope", "hi", "sess-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `agent "nope" is not defined`)
}

func TestRunner_Names(t *testing.T) {
	runner := NewRunner(&scriptedClient{}, &llm.ModelConfig{}, nil, testDefs(), slog.Default())
	assert.Equal(t, []string{"researcher", "summarizer"}, runner.Names())
}

func TestLoadDefinitions(t *testing.T) {
	dir := t.TempDir()

	defs, err := LoadDefinitions(dir)
	require.NoError(t, err)
	assert.Nil(t, defs)

	data, err := json.Marshal(testDefs())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, definitionsFile), data, 0o644))

	defs, err = LoadDefinitions(dir)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "researcher", defs[0].Name)
}

func TestLoadDefinitions_Invalid(t *testing.T) {
	dir := t.TempDir()
	write := func(content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, definitionsFile), []byte(content), 0o644))
	}

	write("{not json")
	_, err := LoadDefinitions(dir)
	require.Error(t, err)

	write(`[{"system_prompt":"x"}]`)
	_, err = LoadDefinitions(dir)
	require.ErrorContains(t, err, "requires a name")

	write(`[{"name":"x"}]`)
	_, err = LoadDefinitions(dir)
	require.ErrorContains(t, err, "requires a system_prompt")
}
