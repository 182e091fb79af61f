package embedding

import (
	"context"
	"fmt"
	"math"
)

// SimilarityScorer scores the semantic similarity of two texts on a 0-100
// scale using an embedding model and cosine similarity.
type SimilarityScorer struct {
	embedder TextEmbedder
}

// NewSimilarityScorer creates a SimilarityScorer backed by the given embedder.
func NewSimilarityScorer(embedder TextEmbedder) (*SimilarityScorer, error) {
	if embedder == nil {
		return nil, fmt.Errorf("embedder cannot be nil")
	}
	return &SimilarityScorer{embedder: embedder}, nil
}

// Score embeds both texts and returns cosine similarity scaled to a
// percentage, rounded to 2 decimals. It is a pure function of its inputs
// for a fixed embedder. Empty strings embed to the zero vector and score 0.
func (s *SimilarityScorer) Score(ctx context.Context, a, b string) (float64, error) {
	vectors, err := s.embedder.EmbedStrings(ctx, []string{a, b})
	if err != nil {
		return 0, fmt.Errorf("embedding texts failed: %w", err)
	}
	if len(vectors) != 2 {
		return 0, fmt.Errorf("embedding count mismatch: expected 2, got %d", len(vectors))
	}

	similarity := CosineSimilarity(vectors[0], vectors[1])
	if similarity < 0 {
		similarity = 0
	}
	return math.Round(similarity*100*100) / 100, nil
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths or zero vectors yield 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
