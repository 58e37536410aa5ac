package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreWeightsSemanticAndExperience(t *testing.T) {
	scorer := NewSimilarityScorer(&stubEmbedder{fallback: []float32{1, 0}}, 5.0)

	bundle, err := scorer.Score(context.Background(), ScoreInput{
		JobEmbedding:       []float32{1, 0},
		CVEmbedding:        []float32{1, 0},
		ExperienceYears:    2,
		RequiredExperience: 4,
		SemanticWeight:     0.8,
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, bundle.SemanticScore)
	assert.Equal(t, 0.5, bundle.ExperienceScore)
	// 1.0*0.8 + 0.5*0.2
	assert.Equal(t, 0.9, bundle.FinalScore)
	assert.Equal(t, 2.0, bundle.ExtractedExperience)
	assert.Nil(t, bundle.RiskFlag)
}

func TestScoreExperienceCappedAtTarget(t *testing.T) {
	scorer := NewSimilarityScorer(&stubEmbedder{fallback: []float32{1, 0}}, 5.0)

	bundle, err := scorer.Score(context.Background(), ScoreInput{
		JobEmbedding:       []float32{1, 0},
		CVEmbedding:        []float32{1, 0},
		ExperienceYears:    12,
		RequiredExperience: 4,
		SemanticWeight:     0.5,
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, bundle.ExperienceScore)
}

func TestScoreUsesDefaultTargetWhenUnspecified(t *testing.T) {
	scorer := NewSimilarityScorer(&stubEmbedder{fallback: []float32{1, 0}}, 5.0)

	bundle, err := scorer.Score(context.Background(), ScoreInput{
		JobEmbedding:    []float32{1, 0},
		CVEmbedding:     []float32{1, 0},
		ExperienceYears: 2.5,
		SemanticWeight:  0.5,
	})
	require.NoError(t, err)

	// 2.5 years against the 5-year default target.
	assert.Equal(t, 0.5, bundle.ExperienceScore)
}

func TestScoreNegativeSimilarityClampsToZero(t *testing.T) {
	scorer := NewSimilarityScorer(&stubEmbedder{fallback: []float32{1, 0}}, 5.0)

	bundle, err := scorer.Score(context.Background(), ScoreInput{
		JobEmbedding:   []float32{1, 0},
		CVEmbedding:    []float32{-1, 0},
		SemanticWeight: 1.0,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, bundle.SemanticScore)
	assert.Equal(t, 0.0, bundle.FinalScore)
}

func TestScoreFlagsKeywordStuffing(t *testing.T) {
	// The experience section embeds orthogonally to the job while the full
	// document matches it almost perfectly.
	embedder := &stubEmbedder{
		vectors:  map[string][]float32{"buzzword wall": {0, 1}},
		fallback: []float32{1, 0},
	}
	scorer := NewSimilarityScorer(embedder, 5.0)

	bundle, err := scorer.Score(context.Background(), ScoreInput{
		JobEmbedding:      []float32{1, 0},
		CVEmbedding:       []float32{1, 0},
		SemanticWeight:    0.8,
		ExperienceSection: "buzzword wall",
	})
	require.NoError(t, err)

	require.NotNil(t, bundle.RiskFlag)
	assert.Equal(t, RiskFlagKeywordStuffing, *bundle.RiskFlag)
}

func TestScoreNoFlagWhenSectionAgrees(t *testing.T) {
	scorer := NewSimilarityScorer(&stubEmbedder{fallback: []float32{1, 0}}, 5.0)

	bundle, err := scorer.Score(context.Background(), ScoreInput{
		JobEmbedding:      []float32{1, 0},
		CVEmbedding:       []float32{1, 0},
		SemanticWeight:    0.8,
		ExperienceSection: "genuine narrative",
	})
	require.NoError(t, err)

	assert.Nil(t, bundle.RiskFlag)
}

func TestScoreSkipsStuffingCheckWithoutSection(t *testing.T) {
	embedder := &stubEmbedder{fallback: []float32{1, 0}}
	scorer := NewSimilarityScorer(embedder, 5.0)

	bundle, err := scorer.Score(context.Background(), ScoreInput{
		JobEmbedding:   []float32{1, 0},
		CVEmbedding:    []float32{1, 0},
		SemanticWeight: 0.8,
	})
	require.NoError(t, err)

	assert.Nil(t, bundle.RiskFlag)
	assert.Equal(t, 0, embedder.calls)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 2, 3}, []float32{2, 4, 6}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)

	// Degenerate inputs.
	assert.Equal(t, 0.0, cosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1}, []float32{1, 2}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}
