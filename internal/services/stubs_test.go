package services

import (
	"context"
)

// stubRecognizer returns a fixed entity list or error.
type stubRecognizer struct {
	entities []Entity
	err      error
}

func (s *stubRecognizer) RecognizeEntities(ctx context.Context, text string) ([]Entity, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entities, nil
}

// stubEmbedder returns canned vectors keyed by input text, falling back to a
// default vector for anything unlisted.
type stubEmbedder struct {
	vectors  map[string][]float32
	fallback []float32
	err      error
	calls    int
}

func (s *stubEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if v, ok := s.vectors[text]; ok {
		return v, nil
	}
	return s.fallback, nil
}
