package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent-match/internal/config"
)

func newTestSkillExtractor(recognizer EntityRecognizer) SkillExtractor {
	return NewSkillExtractor(config.DefaultTaxonomy(), recognizer)
}

func TestExtractSkillsKeywordMatches(t *testing.T) {
	s := newTestSkillExtractor(&stubRecognizer{})

	skills, err := s.ExtractSkills(context.Background(), "Expert in Python, Go and PostgreSQL; set up CI/CD and node.js services")
	require.NoError(t, err)

	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "go")
	assert.Contains(t, skills, "postgresql")
	assert.Contains(t, skills, "ci/cd")
	assert.Contains(t, skills, "node.js")
}

func TestExtractSkillsMultiWordKeyword(t *testing.T) {
	s := newTestSkillExtractor(&stubRecognizer{})

	skills, err := s.ExtractSkills(context.Background(), "applied machine learning to search ranking")
	require.NoError(t, err)

	assert.Contains(t, skills, "machine learning")
}

func TestExtractSkillsNoSubstringFalsePositives(t *testing.T) {
	s := newTestSkillExtractor(&stubRecognizer{})

	// "go" must match as a whole token, not inside "category" or "golang".
	skills, err := s.ExtractSkills(context.Background(), "categorized goverment golang records")
	require.NoError(t, err)

	assert.NotContains(t, skills, "go")
	assert.Contains(t, skills, "golang")
}

func TestExtractSkillsMergesRecognizerEntities(t *testing.T) {
	recognizer := &stubRecognizer{entities: []Entity{
		{Text: "Terraform", Label: "PRODUCT"},
		{Text: "Kafka", Label: "ORG"},
		{Text: "Jane Doe", Label: "PERSON"},
	}}
	s := newTestSkillExtractor(recognizer)

	skills, err := s.ExtractSkills(context.Background(), "worked on streaming")
	require.NoError(t, err)

	assert.Contains(t, skills, "terraform")
	assert.Contains(t, skills, "kafka")
	assert.NotContains(t, skills, "jane doe")
}

func TestExtractSkillsDeduplicatedAndSorted(t *testing.T) {
	recognizer := &stubRecognizer{entities: []Entity{{Text: "Python", Label: "PRODUCT"}}}
	s := newTestSkillExtractor(recognizer)

	skills, err := s.ExtractSkills(context.Background(), "python python PYTHON docker")
	require.NoError(t, err)

	assert.Equal(t, []string{"docker", "python"}, skills)
}

func TestExtractSkillsPropagatesRecognizerError(t *testing.T) {
	s := newTestSkillExtractor(&stubRecognizer{err: errors.New("quota exceeded")})

	_, err := s.ExtractSkills(context.Background(), "python")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entity recognition failed")
}

func TestExtractSkillsEmptyText(t *testing.T) {
	s := newTestSkillExtractor(&stubRecognizer{})

	skills, err := s.ExtractSkills(context.Background(), "")
	require.NoError(t, err)

	assert.Empty(t, skills)
}
