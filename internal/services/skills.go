package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"talent-match/internal/config"
)

// SkillExtractor identifies skill/technology mentions in text. Two sources
// are unioned: vocabulary keyword matches and recognizer entities labeled as
// organizations or products. No confidence filtering is applied.
type SkillExtractor interface {
	ExtractSkills(ctx context.Context, text string) ([]string, error)
}

type skillExtractor struct {
	keywords   []string
	recognizer EntityRecognizer
}

func NewSkillExtractor(taxonomy *config.Taxonomy, recognizer EntityRecognizer) SkillExtractor {
	keywords := make([]string, 0, len(taxonomy.TechKeywords))
	for _, kw := range taxonomy.TechKeywords {
		keywords = append(keywords, strings.ToLower(kw))
	}
	return &skillExtractor{
		keywords:   keywords,
		recognizer: recognizer,
	}
}

// Tokens keep the characters technology names use: "node.js", "ci/cd", "c++".
var skillTokenPattern = regexp.MustCompile(`[a-z0-9][a-z0-9.+#/-]*`)

// ExtractSkills implements SkillExtractor. Output is lowercase, deduplicated
// and sorted for determinism.
func (s *skillExtractor) ExtractSkills(ctx context.Context, text string) ([]string, error) {
	skills := make(map[string]bool)

	lower := strings.ToLower(text)
	tokens := make(map[string]bool)
	for _, tok := range skillTokenPattern.FindAllString(lower, -1) {
		tokens[tok] = true
	}
	for _, kw := range s.keywords {
		if tokens[kw] || (strings.Contains(kw, " ") && strings.Contains(lower, kw)) {
			skills[kw] = true
		}
	}

	entities, err := s.recognizer.RecognizeEntities(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("entity recognition failed: %w", err)
	}
	for _, ent := range entities {
		switch ent.Label {
		case "ORG", "ORGANIZATION", "PRODUCT":
			name := strings.ToLower(strings.TrimSpace(ent.Text))
			if name != "" {
				skills[name] = true
			}
		}
	}

	out := make([]string, 0, len(skills))
	for name := range skills {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}
