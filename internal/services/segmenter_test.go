package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"talent-match/internal/config"
)

func newTestSegmenter() SectionSegmenter {
	return NewSectionSegmenter(config.DefaultTaxonomy())
}

func TestSegmentSplitsOnHeaders(t *testing.T) {
	text := "Jane Doe\n" +
		"Senior Backend Engineer\n" +
		"\n" +
		"Work Experience\n" +
		"Backend developer at Acme Corp\n" +
		"Led the payments team\n" +
		"\n" +
		"Skills\n" +
		"Go, Python, PostgreSQL\n" +
		"\n" +
		"Education\n" +
		"BSc Computer Science\n"

	sections := newTestSegmenter().Segment(text)

	assert.Equal(t, "Jane Doe\nSenior Backend Engineer\n", sections[SectionOther])
	assert.Equal(t, "Backend developer at Acme Corp\nLed the payments team\n", sections[SectionExperience])
	assert.Equal(t, "Go, Python, PostgreSQL\n", sections[SectionSkills])
	assert.Equal(t, "BSc Computer Science\n", sections[SectionEducation])
	assert.Equal(t, "", sections[SectionSummary])
}

func TestSegmentHeaderLinesAreDiscarded(t *testing.T) {
	sections := newTestSegmenter().Segment("Technical Skills\nDocker\n")

	assert.NotContains(t, sections[SectionSkills], "Technical Skills")
	assert.Equal(t, "Docker\n", sections[SectionSkills])
}

func TestSegmentHeaderMatchingIsCaseInsensitive(t *testing.T) {
	sections := newTestSegmenter().Segment("WORK EXPERIENCE\nsomething\n")

	assert.Equal(t, "something\n", sections[SectionExperience])
}

func TestSegmentHeaderWithColon(t *testing.T) {
	sections := newTestSegmenter().Segment("Skills: \nGo\n")

	// "skills:" still counts as a header even with a trailing colon.
	assert.Equal(t, "Go\n", sections[SectionSkills])
}

func TestSegmentHeaderEmbeddedInSentenceIsNotAHeader(t *testing.T) {
	sections := newTestSegmenter().Segment("I have broad experience in distributed systems\n")

	// The line mentions "experience" but is not a header line.
	assert.Equal(t, "", sections[SectionExperience])
	assert.Equal(t, "I have broad experience in distributed systems\n", sections[SectionOther])
}

func TestSegmentTextWithoutHeadersGoesToOther(t *testing.T) {
	text := "line one\nline two\n"
	sections := newTestSegmenter().Segment(text)

	assert.Equal(t, text, sections[SectionOther])
}

func TestSegmentSkipsBlankLines(t *testing.T) {
	sections := newTestSegmenter().Segment("Work Experience\n\n  \nfirst\n\nsecond\n")

	assert.Equal(t, "first\nsecond\n", sections[SectionExperience])
}

func TestSegmentAllLabelsAlwaysPresent(t *testing.T) {
	sections := newTestSegmenter().Segment("")

	for _, label := range []string{SectionExperience, SectionSkills, SectionEducation, SectionSummary, SectionOther} {
		_, ok := sections[label]
		assert.True(t, ok, "missing label %q", label)
	}
}
