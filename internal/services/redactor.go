package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"talent-match/internal/config"
)

const (
	// MaskedName replaces any token belonging to a recognized person name.
	MaskedName = "[Candidate Name]"
	// MaskedEmail replaces any token that looks like an email address.
	MaskedEmail = "[Email Masked]"
)

// PrivacyRedactor rewrites text for blind screening: person names and email
// addresses are masked, gendered terms are neutralized. The token sequence
// and all inter-token whitespace are preserved exactly.
type PrivacyRedactor interface {
	Redact(ctx context.Context, text string) (string, error)
}

type privacyRedactor struct {
	neutral    map[string]string
	recognizer EntityRecognizer
}

func NewPrivacyRedactor(taxonomy *config.Taxonomy, recognizer EntityRecognizer) PrivacyRedactor {
	return &privacyRedactor{
		neutral:    taxonomy.GenderNeutral,
		recognizer: recognizer,
	}
}

var tokenPattern = regexp.MustCompile(`\S+`)

// Redact implements PrivacyRedactor.
func (r *privacyRedactor) Redact(ctx context.Context, text string) (string, error) {
	entities, err := r.recognizer.RecognizeEntities(ctx, text)
	if err != nil {
		return "", fmt.Errorf("entity recognition failed: %w", err)
	}

	// Every token of every person span is maskable, as is the full span.
	personTokens := make(map[string]bool)
	for _, ent := range entities {
		if ent.Label != "PERSON" {
			continue
		}
		lowered := strings.ToLower(ent.Text)
		personTokens[lowered] = true
		for _, part := range strings.Fields(lowered) {
			personTokens[trimTokenPunct(part)] = true
		}
	}

	var sb strings.Builder
	last := 0
	for _, span := range tokenPattern.FindAllStringIndex(text, -1) {
		sb.WriteString(text[last:span[0]]) // original whitespace, untouched
		sb.WriteString(r.redactToken(text[span[0]:span[1]], personTokens))
		last = span[1]
	}
	sb.WriteString(text[last:])
	return sb.String(), nil
}

func (r *privacyRedactor) redactToken(token string, personTokens map[string]bool) string {
	if strings.Contains(token, "@") && strings.Contains(token, ".") {
		return MaskedEmail
	}

	core := trimTokenPunct(strings.ToLower(token))
	if core == "" {
		return token
	}

	if personTokens[core] {
		return MaskedName
	}

	if neutral, ok := r.neutral[core]; ok {
		prefix, suffix := surroundingPunct(token)
		if startsUpper(token[len(prefix):]) {
			neutral = strings.ToUpper(neutral[:1]) + neutral[1:]
		}
		return prefix + neutral + suffix
	}

	return token
}

// trimTokenPunct strips leading/trailing punctuation so "her," and "(His)"
// still hit the lexical maps.
func trimTokenPunct(token string) string {
	return strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func surroundingPunct(token string) (prefix, suffix string) {
	trimmed := strings.TrimLeftFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	prefix = token[:len(token)-len(trimmed)]
	core := strings.TrimRightFunc(trimmed, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	suffix = trimmed[len(core):]
	return prefix, suffix
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
