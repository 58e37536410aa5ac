package services

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"

	"talent-match/internal/logger"
)

// DocumentTextExtractor converts a stored file into linear text. Extraction
// failures degrade to partial or empty text and are logged, never returned:
// the caller treats empty text as "skip this document".
type DocumentTextExtractor interface {
	ExtractText(filePath string) string
}

type documentTextExtractor struct{}

func NewDocumentTextExtractor() DocumentTextExtractor {
	return &documentTextExtractor{}
}

// ExtractText implements DocumentTextExtractor.
func (e *documentTextExtractor) ExtractText(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return e.extractPDF(filePath)
	case ".docx":
		return e.extractDOCX(filePath)
	case ".txt":
		data, err := os.ReadFile(filePath)
		if err != nil {
			logger.Error().Err(err).Str("file", filePath).Msg("failed to read text file")
			return ""
		}
		return string(data)
	default:
		logger.Warn().Str("file", filePath).Msg("unsupported file type, skipping extraction")
		return ""
	}
}

// columnSplitRatio is the fraction of the page width used as the column
// divider; résumé sidebars typically live left of it.
const columnSplitRatio = 0.4

// columnWordThreshold is the minimum number of words that must sit on each
// side of the divider before a page is treated as two columns.
const columnWordThreshold = 10

func (e *documentTextExtractor) extractPDF(filePath string) string {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		logger.Error().Err(err).Str("file", filePath).Msg("failed to open PDF")
		return ""
	}
	defer f.Close()

	var pages []string
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		frags := pageFragments(page)
		if len(frags) == 0 {
			continue
		}

		pageText := extractPageText(frags, pageWidth(page, frags))
		if pageText != "" {
			pages = append(pages, pageText)
		}
	}

	return strings.Join(pages, "\n")
}

func (e *documentTextExtractor) extractDOCX(filePath string) string {
	f, err := os.Open(filePath)
	if err != nil {
		logger.Error().Err(err).Str("file", filePath).Msg("failed to open DOCX")
		return ""
	}
	defer f.Close()

	// docconv joins paragraph texts in document order.
	body, _, err := docconv.ConvertDocx(f)
	if err != nil {
		logger.Error().Err(err).Str("file", filePath).Msg("failed to parse DOCX")
		return ""
	}
	return body
}

// textFragment is one positioned text run on a PDF page. Coordinates follow
// PDF conventions: x grows rightwards, y grows upwards.
type textFragment struct {
	X, Y, W float64
	S       string
}

func pageFragments(page pdf.Page) []textFragment {
	content := page.Content()
	frags := make([]textFragment, 0, len(content.Text))
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		frags = append(frags, textFragment{X: t.X, Y: t.Y, W: t.W, S: t.S})
	}
	return frags
}

func pageWidth(page pdf.Page, frags []textFragment) float64 {
	box := page.V.Key("MediaBox")
	if box.Kind() == pdf.Array && box.Len() == 4 {
		if w := box.Index(2).Float64() - box.Index(0).Float64(); w > 0 {
			return w
		}
	}
	// Fall back to the rightmost text edge.
	var w float64
	for _, f := range frags {
		if f.X+f.W > w {
			w = f.X + f.W
		}
	}
	return w
}

// extractPageText renders one page. A page with substantial text on both
// sides of the divider is read as two independent columns, left column in
// full before the right one, so a skills sidebar does not interleave with
// the main narrative row by row.
func extractPageText(frags []textFragment, width float64) string {
	left, right, twoColumn := splitColumns(frags, width)
	if !twoColumn {
		return assembleFragments(frags)
	}

	leftText := assembleFragments(left)
	rightText := assembleFragments(right)
	if leftText == "" {
		return rightText
	}
	if rightText == "" {
		return leftText
	}
	return leftText + "\n" + rightText
}

// splitColumns decides whether a page is two-column and partitions its
// fragments. The heuristic mirrors how résumés are laid out: more than
// columnWordThreshold words entirely left of the divider and more than that
// entirely right of it.
func splitColumns(frags []textFragment, width float64) (left, right []textFragment, twoColumn bool) {
	if width <= 0 {
		return nil, nil, false
	}
	divider := width * columnSplitRatio

	leftCount, rightCount := 0, 0
	for _, f := range frags {
		if f.X+f.W < divider {
			leftCount++
		}
		if f.X > divider {
			rightCount++
		}
	}
	if leftCount <= columnWordThreshold || rightCount <= columnWordThreshold {
		return nil, nil, false
	}

	for _, f := range frags {
		if f.X < divider {
			left = append(left, f)
		} else {
			right = append(right, f)
		}
	}
	return left, right, true
}

// lineTolerance groups fragments whose baselines differ by at most this many
// points onto the same output line.
const lineTolerance = 2.0

// assembleFragments orders fragments top-to-bottom, left-to-right and joins
// them into text, starting a new line whenever the baseline moves.
func assembleFragments(frags []textFragment) string {
	if len(frags) == 0 {
		return ""
	}

	sorted := make([]textFragment, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		if diff := sorted[i].Y - sorted[j].Y; diff > lineTolerance || diff < -lineTolerance {
			return sorted[i].Y > sorted[j].Y // PDF y grows upwards
		}
		return sorted[i].X < sorted[j].X
	})

	var sb strings.Builder
	lineY := sorted[0].Y
	prevEnd := 0.0
	for i, f := range sorted {
		switch {
		case i == 0:
		case lineY-f.Y > lineTolerance:
			sb.WriteString("\n")
			lineY = f.Y
		case f.X-prevEnd > 1.0 && !strings.HasSuffix(sb.String(), " ") && !strings.HasPrefix(f.S, " "):
			sb.WriteString(" ")
		}
		sb.WriteString(f.S)
		prevEnd = f.X + f.W
	}
	return strings.TrimRight(sb.String(), "\n")
}
