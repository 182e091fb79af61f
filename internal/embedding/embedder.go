// Package embedding provides text embedding and similarity scoring for the
// resume-vs-job match score.
package embedding

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// TextEmbedder converts texts into fixed-size dense vectors. Implementations
// must be deterministic and safe for concurrent use; the configured embedder
// is created once at startup and shared across requests.
type TextEmbedder interface {
	EmbedStrings(ctx context.Context, texts []string) ([][]float64, error)
	Dimensions() int
}

// DefaultDimensions is the vector size used by the hashed embedder.
const DefaultDimensions = 256

// HashedEmbedder is a local, deterministic TextEmbedder. It hashes lowercase
// word tokens into a fixed-size term-frequency vector and L2-normalizes it.
// It has no model weights to load, so startup cannot fail, and identical
// input always produces identical vectors.
type HashedEmbedder struct {
	dims int
}

// NewHashedEmbedder creates a HashedEmbedder. Non-positive dims falls back
// to DefaultDimensions.
func NewHashedEmbedder(dims int) *HashedEmbedder {
	if dims <= 0 {
		dims = DefaultDimensions
	}
	return &HashedEmbedder{dims: dims}
}

// Dimensions returns the embedding vector size.
func (e *HashedEmbedder) Dimensions() int {
	return e.dims
}

// EmbedStrings embeds each text independently. Empty text embeds to the zero
// vector rather than returning an error.
func (e *HashedEmbedder) EmbedStrings(ctx context.Context, texts []string) ([][]float64, error) {
	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("embedding canceled: %w", err)
		}
		vectors[i] = e.embed(text)
	}
	return vectors, nil
}

func (e *HashedEmbedder) embed(text string) []float64 {
	vec := make([]float64, e.dims)
	for _, token := range tokenize(text) {
		h := fnv.New32a()
		h.Write([]byte(token))
		vec[int(h.Sum32())%e.dims]++
	}
	normalize(vec)
	return vec
}

// tokenize splits text into lowercase word tokens, keeping letters, digits,
// and the characters that appear inside skill names (+, #, ., /).
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
		switch r {
		case '+', '#', '.', '/':
			return false
		}
		return true
	})
}

// normalize scales vec to unit length in place. The zero vector stays zero.
func normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}
