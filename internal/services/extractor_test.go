package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sidebarPage builds a synthetic two-column page: a 15-word skills sidebar
// on the left and a 12-word narrative on the right, interleaved the way a
// PDF content stream usually is.
func sidebarPage(width float64) []textFragment {
	var frags []textFragment
	for i := 0; i < 15; i++ {
		y := 720.0 - float64(i)*20
		frags = append(frags, textFragment{X: 40, Y: y, W: 60, S: fmt.Sprintf("left%d", i)})
		if i < 12 {
			frags = append(frags, textFragment{X: 300, Y: y, W: 120, S: fmt.Sprintf("right%d", i)})
		}
	}
	return frags
}

func TestSplitColumnsDetectsTwoColumnPage(t *testing.T) {
	frags := sidebarPage(600)

	left, right, twoColumn := splitColumns(frags, 600)
	require.True(t, twoColumn)
	assert.Len(t, left, 15)
	assert.Len(t, right, 12)

	for _, f := range left {
		assert.True(t, strings.HasPrefix(f.S, "left"))
	}
	for _, f := range right {
		assert.True(t, strings.HasPrefix(f.S, "right"))
	}
}

func TestSplitColumnsNeedsEnoughWordsOnBothSides(t *testing.T) {
	// Ten words per side is not enough; the threshold is strict.
	var frags []textFragment
	for i := 0; i < 10; i++ {
		y := 700.0 - float64(i)*20
		frags = append(frags,
			textFragment{X: 40, Y: y, W: 60, S: "l"},
			textFragment{X: 300, Y: y, W: 60, S: "r"},
		)
	}

	_, _, twoColumn := splitColumns(frags, 600)
	assert.False(t, twoColumn)
}

func TestSplitColumnsSingleColumnPage(t *testing.T) {
	var frags []textFragment
	for i := 0; i < 30; i++ {
		frags = append(frags, textFragment{X: 40, Y: 700 - float64(i)*15, W: 400, S: "a wide paragraph line"})
	}

	_, _, twoColumn := splitColumns(frags, 600)
	assert.False(t, twoColumn)
}

func TestSplitColumnsZeroWidth(t *testing.T) {
	_, _, twoColumn := splitColumns(sidebarPage(600), 0)
	assert.False(t, twoColumn)
}

func TestExtractPageTextTwoColumnOrder(t *testing.T) {
	text := extractPageText(sidebarPage(600), 600)

	// The whole left column must come before any of the right column, so the
	// sidebar does not interleave with the narrative.
	lastLeft := strings.LastIndex(text, "left14")
	firstRight := strings.Index(text, "right0")
	require.NotEqual(t, -1, lastLeft)
	require.NotEqual(t, -1, firstRight)
	assert.Less(t, lastLeft, firstRight)
}

func TestExtractPageTextSingleColumnReadsRowMajor(t *testing.T) {
	frags := []textFragment{
		{X: 40, Y: 680, W: 60, S: "second"},
		{X: 106, Y: 700, W: 40, S: "line"},
		{X: 40, Y: 700, W: 60, S: "first"},
	}

	text := extractPageText(frags, 600)
	assert.Equal(t, "first line\nsecond", text)
}

func TestAssembleFragmentsJoinsGappedRuns(t *testing.T) {
	frags := []textFragment{
		{X: 0, Y: 700, W: 50, S: "Senior"},
		{X: 54, Y: 700, W: 70, S: "Engineer"},
	}

	assert.Equal(t, "Senior Engineer", assembleFragments(frags))
}

func TestAssembleFragmentsNoSpaceForAdjacentRuns(t *testing.T) {
	frags := []textFragment{
		{X: 0, Y: 700, W: 30, S: "Post"},
		{X: 30.5, Y: 700, W: 50, S: "greSQL"},
	}

	assert.Equal(t, "PostgreSQL", assembleFragments(frags))
}

func TestAssembleFragmentsToleratesBaselineJitter(t *testing.T) {
	// Sub- and superscripts sit within lineTolerance of the baseline and must
	// not start a new line.
	frags := []textFragment{
		{X: 0, Y: 700, W: 30, S: "H"},
		{X: 32, Y: 699, W: 10, S: "2"},
		{X: 44, Y: 700, W: 10, S: "O"},
	}

	assert.Equal(t, "H 2 O", assembleFragments(frags))
}

func TestAssembleFragmentsEmpty(t *testing.T) {
	assert.Equal(t, "", assembleFragments(nil))
}

func TestExtractTextPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text resume"), 0644))

	e := NewDocumentTextExtractor()
	assert.Equal(t, "plain text resume", e.ExtractText(path))
}

func TestExtractTextUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0644))

	e := NewDocumentTextExtractor()
	assert.Equal(t, "", e.ExtractText(path))
}

func TestExtractTextMissingFile(t *testing.T) {
	e := NewDocumentTextExtractor()
	assert.Equal(t, "", e.ExtractText("/nonexistent/cv.pdf"))
}
