package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedNowEstimator(now time.Time) ExperienceEstimator {
	return &experienceEstimator{now: func() time.Time { return now }}
}

func TestEstimateYearsMonthRange(t *testing.T) {
	e := NewExperienceEstimator()

	// Inclusive range: Jan 2019 through the end of Dec 2021 is three years.
	assert.Equal(t, 3.0, e.EstimateYears("Backend Engineer, Jan 2019 - Dec 2021"))
}

func TestEstimateYearsBareYearRange(t *testing.T) {
	e := NewExperienceEstimator()

	assert.Equal(t, 3.0, e.EstimateYears("Acme Corp 2018 - 2021"))
}

func TestEstimateYearsEnDashAndToSeparators(t *testing.T) {
	e := NewExperienceEstimator()

	assert.Equal(t, 3.0, e.EstimateYears("2015–2018"))
	assert.Equal(t, 3.0, e.EstimateYears("2015 to 2018"))
}

func TestEstimateYearsPresent(t *testing.T) {
	e := fixedNowEstimator(time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 3.0, e.EstimateYears("Mar 2020 to Present"))
}

func TestEstimateYearsFullMonthNames(t *testing.T) {
	e := NewExperienceEstimator()

	assert.Equal(t, 3.0, e.EstimateYears("January 2019 - December 2021"))
}

func TestEstimateYearsSumsMultipleRanges(t *testing.T) {
	e := NewExperienceEstimator()

	text := "Acme 2016 - 2018\nGlobex 2019 - 2021"
	assert.Equal(t, 4.0, e.EstimateYears(text))
}

func TestEstimateYearsIgnoresInvertedRanges(t *testing.T) {
	e := NewExperienceEstimator()

	// An end before the start contributes nothing, and with no other signal
	// the total stays zero.
	assert.Equal(t, 0.0, e.EstimateYears("2022 - 2019"))
}

func TestEstimateYearsFallbackPhrase(t *testing.T) {
	e := NewExperienceEstimator()

	assert.Equal(t, 7.0, e.EstimateYears("Over 7 years of backend development"))
	assert.Equal(t, 10.0, e.EstimateYears("10+ years in infrastructure"))
}

func TestEstimateYearsRangesWinOverPhrase(t *testing.T) {
	e := NewExperienceEstimator()

	// The phrase is only a fallback; parseable ranges take precedence.
	text := "2019 - 2021, with 10 years of total experience"
	assert.Equal(t, 2.0, e.EstimateYears(text))
}

func TestEstimateYearsNoSignal(t *testing.T) {
	e := NewExperienceEstimator()

	assert.Equal(t, 0.0, e.EstimateYears("no dates here at all"))
	assert.Equal(t, 0.0, e.EstimateYears(""))
}
