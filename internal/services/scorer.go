package services

import (
	"context"
	"fmt"
	"math"
)

// RiskFlagKeywordStuffing is raised when a CV matches the job almost
// perfectly overall while its experience narrative barely relates to it.
const RiskFlagKeywordStuffing = "Potential Keyword Stuffing Detected"

const (
	// highSimilarityThreshold is the full-document similarity above which the
	// anti-gaming check engages.
	highSimilarityThreshold = 0.95
	// lowSectionSimilarity is the experience-section similarity below which
	// a high overall match is considered suspicious.
	lowSectionSimilarity = 0.5
)

// ScoreInput carries everything the scorer needs for one (job, candidate)
// pair. ExperienceSection is optional; when empty the anti-gaming check is
// skipped.
type ScoreInput struct {
	JobEmbedding       []float32
	CVEmbedding        []float32
	ExperienceYears    float64
	RequiredExperience float64 // 0 means unspecified
	SemanticWeight     float64 // fraction of the final score from similarity
	ExperienceSection  string
}

// ScoreBundle is the scorer's output; all score fields lie in [0,1] and are
// rounded to 4 decimals.
type ScoreBundle struct {
	SemanticScore       float64
	ExperienceScore     float64
	FinalScore          float64
	ExtractedExperience float64
	RiskFlag            *string
}

type SimilarityScorer interface {
	Score(ctx context.Context, in ScoreInput) (*ScoreBundle, error)
}

type similarityScorer struct {
	embedder      EmbeddingService
	defaultTarget float64
}

// NewSimilarityScorer builds a scorer. defaultTarget is the experience figure
// used for normalization when a job does not state a required one.
func NewSimilarityScorer(embedder EmbeddingService, defaultTarget float64) SimilarityScorer {
	return &similarityScorer{
		embedder:      embedder,
		defaultTarget: defaultTarget,
	}
}

// Score implements SimilarityScorer.
func (s *similarityScorer) Score(ctx context.Context, in ScoreInput) (*ScoreBundle, error) {
	semantic := round4(clamp01(cosineSimilarity(in.JobEmbedding, in.CVEmbedding)))

	target := in.RequiredExperience
	if target <= 0 {
		target = s.defaultTarget
	}
	experience := round4(math.Min(in.ExperienceYears/target, 1.0))

	weight := clamp01(in.SemanticWeight)
	final := round4(semantic*weight + experience*(1-weight))

	bundle := &ScoreBundle{
		SemanticScore:       semantic,
		ExperienceScore:     experience,
		FinalScore:          final,
		ExtractedExperience: in.ExperienceYears,
	}

	if in.ExperienceSection != "" {
		sectionEmbedding, err := s.embedder.GenerateEmbedding(ctx, in.ExperienceSection)
		if err != nil {
			return nil, fmt.Errorf("failed to embed experience section: %w", err)
		}
		sectionSimilarity := clamp01(cosineSimilarity(in.JobEmbedding, sectionEmbedding))
		if semantic > highSimilarityThreshold && sectionSimilarity < lowSectionSimilarity {
			flag := RiskFlagKeywordStuffing
			bundle.RiskFlag = &flag
		}
	}

	return bundle, nil
}

// cosineSimilarity returns the cosine of the angle between two vectors, or 0
// when either has zero norm or the lengths differ.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
