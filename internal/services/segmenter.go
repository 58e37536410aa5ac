package services

import (
	"strings"

	"talent-match/internal/config"
)

// Section labels produced by the segmenter. SectionOther collects every line
// that appears before the first recognized header.
const (
	SectionExperience = "experience"
	SectionSkills     = "skills"
	SectionEducation  = "education"
	SectionSummary    = "summary"
	SectionOther      = "other"
)

// SectionSegmenter splits raw CV text into labeled sections by detecting
// header lines.
type SectionSegmenter interface {
	Segment(text string) map[string]string
}

type sectionSegmenter struct {
	headers map[string][]string
	order   []string
}

func NewSectionSegmenter(taxonomy *config.Taxonomy) SectionSegmenter {
	return &sectionSegmenter{
		headers: taxonomy.SectionHeaders,
		order:   taxonomy.SectionOrder,
	}
}

// Segment implements SectionSegmenter. Header lines switch the current
// section and are themselves discarded; blank lines are skipped; every other
// line is appended, newline-terminated, to the section currently open.
func (s *sectionSegmenter) Segment(text string) map[string]string {
	sections := map[string]*strings.Builder{
		SectionExperience: {},
		SectionSkills:     {},
		SectionEducation:  {},
		SectionSummary:    {},
		SectionOther:      {},
	}

	current := SectionOther
	for _, line := range strings.Split(text, "\n") {
		clean := strings.ToLower(strings.TrimSpace(line))
		if clean == "" {
			continue
		}

		if label, ok := s.matchHeader(clean); ok {
			current = label
			continue
		}

		sections[current].WriteString(line)
		sections[current].WriteString("\n")
	}

	out := make(map[string]string, len(sections))
	for label, sb := range sections {
		out[label] = sb.String()
	}
	return out
}

// matchHeader checks a trimmed, lower-cased line against the header keyword
// sets. Categories are tried in a fixed order so a line that could match
// several always resolves to the first.
func (s *sectionSegmenter) matchHeader(clean string) (string, bool) {
	for _, label := range s.order {
		for _, keyword := range s.headers[label] {
			if clean == keyword || strings.HasPrefix(clean, keyword+":") {
				return label, true
			}
		}
	}
	return "", false
}
