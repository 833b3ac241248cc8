package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqCompleter replays responses in order, repeating the last one.
type seqCompleter struct {
	responses []string
	requests  []CompleteRequest
}

func (s *seqCompleter) Complete(_ context.Context, req CompleteRequest) (string, error) {
	s.requests = append(s.requests, req)
	i := len(s.requests) - 1
	if i >= len(s.responses) {
		i = len(s.responses) - 1
	}
	return s.responses[i], nil
}

const sampleExtraction = `{
	"facts": [{"subject": "alice", "predicate": "works at", "object": "acme", "time": "", "location": "berlin", "confidence": 0}],
	"emotion": {"primary": "excited", "intensity": 0.8},
	"intent": "statement",
	"entities": ["acme"],
	"time_expressions": ["today"],
	"locations": ["berlin"],
	"keywords": ["job"]
}`

func TestParseExtraction(t *testing.T) {
	result := parseExtraction(sampleExtraction)
	require.Len(t, result.Tuples, 1)
	fact := result.Tuples[0]
	assert.Equal(t, "alice", fact.Subject)
	assert.Equal(t, "works at", fact.Predicate)
	assert.Equal(t, "acme", fact.Object)
	assert.Equal(t, "berlin", fact.Location)
	// Missing confidence falls back to the default.
	assert.Equal(t, 0.8, fact.Confidence)
	assert.Equal(t, "statement", result.Intent)
	assert.Equal(t, "excited", result.EmotionPrimary)
	assert.Equal(t, []string{"acme"}, result.Entities)
}

func TestParseExtraction_Garbage(t *testing.T) {
	result := parseExtraction("sorry, I cannot help with that")
	assert.True(t, result.isEmpty())
	assert.Equal(t, "unknown", result.Intent)
	assert.Equal(t, "neutral", result.EmotionPrimary)
}

func TestCarveJSON(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, carveJSON(`{"a": 1}`))
	assert.Equal(t, `{"a": 1}`, carveJSON("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": {"b": 2}}`, carveJSON(`Here you go: {"a": {"b": 2}} hope that helps`))
}

func TestLLMExtractor_RetriesOnEmptyResult(t *testing.T) {
	completer := &seqCompleter{responses: []string{"no structured data found", sampleExtraction}}
	extractor := NewLLMExtractor(completer, testLogger())

	result, err := extractor.Extract(context.Background(), "user", "I just started at acme in berlin")
	require.NoError(t, err)
	require.Len(t, completer.requests, 2)
	assert.Equal(t, 0.3, completer.requests[0].Temperature)
	assert.Zero(t, completer.requests[1].Temperature)
	assert.Equal(t, []string{"acme"}, result.Entities)
}

func TestLLMExtractor_NoRetryWhenFirstParses(t *testing.T) {
	completer := &seqCompleter{responses: []string{sampleExtraction}}
	extractor := NewLLMExtractor(completer, testLogger())

	_, err := extractor.Extract(context.Background(), "user", "I just started at acme")
	require.NoError(t, err)
	assert.Len(t, completer.requests, 1)
}
