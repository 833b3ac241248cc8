package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// Completer is the minimal LLM surface the memory subsystem needs: one
// prompt in, one text response out.
type Completer interface {
	Complete(ctx context.Context, req CompleteRequest) (string, error)
}

// CompleteRequest is a single non-streaming model call.
type CompleteRequest struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Embedder computes embedding vectors for a batch of texts.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// FactTuple is one subject-predicate-object fact pulled from a message.
type FactTuple struct {
	Subject    string  `json:"subject"`
	Predicate  string  `json:"predicate"`
	Object     string  `json:"object"`
	Time       string  `json:"time,omitempty"`
	Location   string  `json:"location,omitempty"`
	Confidence float64 `json:"confidence"`
}

// ExtractionResult is the structured view of one message.
type ExtractionResult struct {
	Tuples          []FactTuple
	Entities        []string
	TimeExpressions []string
	Locations       []string
	Intent          string
	EmotionPrimary  string
	Keywords        []string
}

// Extractor turns raw message text into an ExtractionResult.
type Extractor interface {
	Extract(ctx context.Context, role, content string) (*ExtractionResult, error)
}

const extractionSystemPrompt = "You are an information extraction assistant. " +
	"You pull structured facts out of conversation messages. Output must be strict JSON."

const extractionPrompt = `Extract structured information from the message below.

Rules:
1. Extract every meaningful fact triple (subject-predicate-object).
2. Identify time expressions (such as "today", "next month", "January 2024").
3. Identify locations (cities, buildings, "home", "the office").
4. Identify the speaker intent (question, statement, request, complaint).
5. Extract key entities (people, organizations, products).

Return JSON of exactly this shape:
{
    "facts": [{"subject": "...", "predicate": "...", "object": "...", "time": "", "location": "", "confidence": 0.9}],
    "emotion": {"primary": "...", "intensity": 0.5},
    "intent": "...",
    "entities": ["..."],
    "time_expressions": ["..."],
    "locations": ["..."],
    "keywords": ["..."]
}

Message:
role: %s
content: %s

Return only the JSON, no surrounding text.`

// LLMExtractor extracts facts with a model call, retrying once at
// temperature 0 when the first parse comes back empty.
type LLMExtractor struct {
	completer   Completer
	temperature float64
	logger      *slog.Logger
}

// NewLLMExtractor wires an extractor onto a completer. Extraction runs
// at a low temperature by default.
func NewLLMExtractor(completer Completer, logger *slog.Logger) *LLMExtractor {
	return &LLMExtractor{
		completer:   completer,
		temperature: 0.3,
		logger:      logger,
	}
}

func (e *LLMExtractor) Extract(ctx context.Context, role, content string) (*ExtractionResult, error) {
	prompt := fmt.Sprintf(extractionPrompt, role, content)

	text, err := e.completer.Complete(ctx, CompleteRequest{
		System:      extractionSystemPrompt,
		User:        prompt,
		Temperature: e.temperature,
		MaxTokens:   1000,
	})
	if err != nil {
		return nil, fmt.Errorf("extraction call failed: %w", err)
	}

	result := parseExtraction(text)
	if result.isEmpty() {
		// One forced retry at zero temperature before giving up.
		text, err = e.completer.Complete(ctx, CompleteRequest{
			System:      extractionSystemPrompt,
			User:        prompt,
			Temperature: 0,
			MaxTokens:   1000,
		})
		if err != nil {
			e.logger.Warn("extraction retry failed, keeping first result", "error", err)
			return result, nil
		}
		if retried := parseExtraction(text); !retried.isEmpty() {
			result = retried
		}
	}
	return result, nil
}

func (r *ExtractionResult) isEmpty() bool {
	return len(r.Tuples) == 0 && len(r.Entities) == 0 &&
		len(r.TimeExpressions) == 0 && len(r.Locations) == 0
}

type rawExtraction struct {
	Facts []struct {
		Subject    string  `json:"subject"`
		Predicate  string  `json:"predicate"`
		Object     string  `json:"object"`
		Time       string  `json:"time"`
		Location   string  `json:"location"`
		Confidence float64 `json:"confidence"`
	} `json:"facts"`
	Emotion struct {
		Primary string `json:"primary"`
	} `json:"emotion"`
	Intent          string   `json:"intent"`
	Entities        []string `json:"entities"`
	TimeExpressions []string `json:"time_expressions"`
	Locations       []string `json:"locations"`
	Keywords        []string `json:"keywords"`
}

func parseExtraction(text string) *ExtractionResult {
	result := &ExtractionResult{Intent: "unknown", EmotionPrimary: "neutral"}

	var raw rawExtraction
	if err := json.Unmarshal([]byte(carveJSON(text)), &raw); err != nil {
		return result
	}

	for _, f := range raw.Facts {
		confidence := f.Confidence
		if confidence == 0 {
			confidence = 0.8
		}
		result.Tuples = append(result.Tuples, FactTuple{
			Subject:    f.Subject,
			Predicate:  f.Predicate,
			Object:     f.Object,
			Time:       f.Time,
			Location:   f.Location,
			Confidence: confidence,
		})
	}
	result.Entities = raw.Entities
	result.TimeExpressions = raw.TimeExpressions
	result.Locations = raw.Locations
	result.Keywords = raw.Keywords
	if raw.Intent != "" {
		result.Intent = raw.Intent
	}
	if raw.Emotion.Primary != "" {
		result.EmotionPrimary = raw.Emotion.Primary
	}
	return result
}

// carveJSON strips markdown code fences and returns the outermost JSON
// object in the text, tolerating prose around it.
func carveJSON(text string) string {
	s := strings.TrimSpace(text)
	if idx := strings.Index(s, "```json"); idx >= 0 {
		s = s[idx+len("```json"):]
		if end := strings.Index(s, "```"); end >= 0 {
			s = s[:end]
		}
	} else if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[idx+3:]
		if end := strings.Index(s, "```"); end >= 0 {
			s = s[:end]
		}
	}
	s = strings.TrimSpace(s)
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
