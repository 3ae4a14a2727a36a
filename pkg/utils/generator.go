package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// TripGeneratorInterface wraps a single synchronous call to an external
// text-generation model. One request, one response; no retry, no streaming.
type TripGeneratorInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}

// EmbeddingClientInterface turns free text into a vector for the
// destination similarity search.
type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

// NewTripGenerator selects the generation backend. A missing API key is not
// an error here: the clients report it per invocation so the server still
// boots and the caller gets a configuration error instead of a dead process.
func NewTripGenerator(provider, apiKey, model string) (TripGeneratorInterface, error) {
	switch strings.ToLower(provider) {
	case "gemini":
		return NewGeminiTripGenerator(apiKey, model), nil
	case "openai":
		return NewOpenAITripGenerator(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'gemini' or 'openai'", provider)
	}
}
