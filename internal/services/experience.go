package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ExperienceEstimator derives a total years-of-experience figure from free
// text, preferably the experience section of a CV.
type ExperienceEstimator interface {
	EstimateYears(text string) float64
}

type experienceEstimator struct {
	now func() time.Time
}

func NewExperienceEstimator() ExperienceEstimator {
	return &experienceEstimator{now: time.Now}
}

const monthAlt = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*`

var (
	// Date ranges like "Jan 2020 - Dec 2022", "2018–2021", "2015 to Present".
	dateRangePattern = regexp.MustCompile(
		`(?i)(` + monthAlt + `\s+\d{4}|\d{4})\s*(?:[-–—]|\bto\b)\s*(present|` + monthAlt + `\s+\d{4}|\d{4})`)
	// Fallback phrases like "5 years" or "10+ years".
	yearsPhrasePattern = regexp.MustCompile(`(?i)\b(\d+)\+?\s*years?\b`)
	bareYearPattern    = regexp.MustCompile(`\d{4}`)
)

// EstimateYears implements ExperienceEstimator. Every parseable date range
// contributes its positive span in days/365.25; a range that cannot be parsed
// is skipped on its own. When no range contributes, a standalone "<n> years"
// phrase is used instead. The result is non-negative, rounded to 1 decimal.
func (e *experienceEstimator) EstimateYears(text string) float64 {
	total := 0.0

	for _, m := range dateRangePattern.FindAllStringSubmatch(text, -1) {
		start, err := parseRangeEndpoint(m[1], false)
		if err != nil {
			continue
		}

		var end time.Time
		if strings.EqualFold(strings.TrimSpace(m[2]), "present") {
			end = e.now()
		} else {
			end, err = parseRangeEndpoint(m[2], true)
			if err != nil {
				continue
			}
		}

		years := end.Sub(start).Hours() / 24 / 365.25
		if years > 0 {
			total += years
		}
	}

	if total == 0 {
		if m := yearsPhrasePattern.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				total = float64(n)
			}
		}
	}

	if total < 0 {
		total = 0
	}
	return math.Round(total*10) / 10
}

// parseRangeEndpoint resolves one endpoint of a date range. Month+year forms
// are tried first: the start of the month for range starts, the end of the
// month for range ends, so an inclusive range like "Jan 2019 - Dec 2021"
// spans very nearly three full years. Bare years resolve to January 1st.
func parseRangeEndpoint(s string, isEnd bool) (time.Time, error) {
	s = strings.Join(strings.Fields(s), " ")

	if fields := strings.Fields(s); len(fields) == 2 {
		normalized := normalizeMonth(fields[0]) + " " + fields[1]
		for _, layout := range []string{"Jan 2006", "January 2006"} {
			t, err := time.Parse(layout, normalized)
			if err != nil {
				continue
			}
			if isEnd {
				return t.AddDate(0, 1, -1), nil
			}
			return t, nil
		}
	}

	if y := bareYearPattern.FindString(s); y != "" {
		year, err := strconv.Atoi(y)
		if err == nil {
			return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, &time.ParseError{Layout: "Jan 2006", Value: s}
}

func normalizeMonth(m string) string {
	if m == "" {
		return m
	}
	return strings.ToUpper(m[:1]) + strings.ToLower(m[1:])
}
