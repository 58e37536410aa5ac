package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent-match/internal/config"
)

func newTestRedactor(recognizer EntityRecognizer) PrivacyRedactor {
	return NewPrivacyRedactor(config.DefaultTaxonomy(), recognizer)
}

func TestRedactMasksPersonNames(t *testing.T) {
	recognizer := &stubRecognizer{entities: []Entity{{Text: "Jane Doe", Label: "PERSON"}}}
	r := newTestRedactor(recognizer)

	out, err := r.Redact(context.Background(), "Jane Doe is a senior engineer. Jane led the team.")
	require.NoError(t, err)

	assert.Equal(t, "[Candidate Name] [Candidate Name] is a senior engineer. [Candidate Name] led the team.", out)
}

func TestRedactMasksEmails(t *testing.T) {
	r := newTestRedactor(&stubRecognizer{})

	out, err := r.Redact(context.Background(), "Contact: jane.doe@example.com for details")
	require.NoError(t, err)

	assert.Equal(t, "Contact: [Email Masked] for details", out)
}

func TestRedactNeutralizesGenderedTerms(t *testing.T) {
	r := newTestRedactor(&stubRecognizer{})

	out, err := r.Redact(context.Background(), "She led her team as chairwoman.")
	require.NoError(t, err)

	assert.Equal(t, "They led them team as chairperson.", out)
}

func TestRedactPreservesPunctuationAndCase(t *testing.T) {
	r := newTestRedactor(&stubRecognizer{})

	out, err := r.Redact(context.Background(), "(His) work, her work")
	require.NoError(t, err)

	assert.Equal(t, "(Their) work, them work", out)
}

func TestRedactPreservesWhitespace(t *testing.T) {
	r := newTestRedactor(&stubRecognizer{})

	out, err := r.Redact(context.Background(), "  she  \n\n\tworked  ")
	require.NoError(t, err)

	assert.Equal(t, "  they  \n\n\tworked  ", out)
}

func TestRedactLeavesOrdinaryTextAlone(t *testing.T) {
	r := newTestRedactor(&stubRecognizer{})

	text := "Senior engineer, 8 years of Go and PostgreSQL."
	out, err := r.Redact(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, text, out)
}

func TestRedactIgnoresNonPersonEntities(t *testing.T) {
	recognizer := &stubRecognizer{entities: []Entity{{Text: "Acme", Label: "ORG"}}}
	r := newTestRedactor(recognizer)

	out, err := r.Redact(context.Background(), "Worked at Acme")
	require.NoError(t, err)

	assert.Equal(t, "Worked at Acme", out)
}

func TestRedactPropagatesRecognizerError(t *testing.T) {
	r := newTestRedactor(&stubRecognizer{err: errors.New("model unavailable")})

	_, err := r.Redact(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entity recognition failed")
}
