package utils

import (
	"context"
	"hash/fnv"
	"math"
	"strings"

	"github.com/pgvector/pgvector-go"
)

const embeddingDimensions = 1536

// LocalEmbeddingClient is a hash-based fallback used when no embedding API
// key is configured. Vectors are stable per input but carry no semantics
// beyond crude word overlap; good enough for the inspire search to degrade
// gracefully instead of failing.
type LocalEmbeddingClient struct{}

func NewLocalEmbeddingClient() *LocalEmbeddingClient {
	return &LocalEmbeddingClient{}
}

func (c *LocalEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return c.textToVector(text), nil
}

func (c *LocalEmbeddingClient) textToVector(text string) pgvector.Vector {
	text = strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(text)

	vector := make([]float32, embeddingDimensions)

	for _, word := range words {
		hash := hashWord(word)
		for i := 0; i < embeddingDimensions; i++ {
			influence := math.Sin(float64(hash+uint32(i))) * 0.1
			vector[i] += float32(influence)
		}
	}

	var magnitude float32
	for _, val := range vector {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))

	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}

	return pgvector.NewVector(vector)
}

func hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}

// NewEmbeddingClient prefers the OpenAI backend when a key is present and
// falls back to the local hash embedding otherwise.
func NewEmbeddingClient(apiKey string) EmbeddingClientInterface {
	if apiKey == "" {
		return NewLocalEmbeddingClient()
	}
	return NewOpenAIEmbeddingClient(apiKey)
}
