package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/huangsam/workpulse/schema"
)

// officeShapeSummary builds an hourly histogram with a textbook office
// profile: morning rise, afternoon peak, evening decline, silent nights.
func officeShapeSummary(contributors int) *schema.ActivitySummary {
	hourly := schema.NewTimeBucketSeries(schema.Hourly24Domain)
	for h, n := range map[int]int{
		6: 2, 7: 2, 8: 2,
		9: 10, 10: 10, 11: 10,
		12: 8, 13: 8,
		14: 12, 15: 12, 16: 12, 17: 12,
		18: 4, 19: 2, 20: 2, 21: 1, 22: 1,
	} {
		hourly.Observe(h, n)
	}

	weekdays := schema.NewTimeBucketSeries(schema.Weekday7Domain)
	weekdays.Observe(2, 110) // all on Tuesdays

	return &schema.ActivitySummary{
		Hourly:       hourly,
		Weekdays:     weekdays,
		Contributors: contributors,
	}
}

func TestClassifyProjectOrganizationalShape(t *testing.T) {
	result := ClassifyProject(officeShapeSummary(4))

	assert.Equal(t, schema.OrganizationalProject, result.Category)
	assert.Equal(t, 100, result.Regularity)
	assert.Equal(t, 0.0, result.WeekendRatio)
	assert.Equal(t, 0, result.CommunityScore)
	assert.Equal(t, 80, result.Confidence)
}

func TestClassifyProjectManyContributorsShortCircuit(t *testing.T) {
	// 60 contributors forces the community verdict regardless of shape.
	result := ClassifyProject(officeShapeSummary(60))

	assert.Equal(t, schema.CommunityProject, result.Category)
	assert.Equal(t, 76, result.Confidence) // min(95, 70 + 60/10)
	assert.NotEmpty(t, result.Reasons)
}

func TestClassifyProjectLowRegularityShortCircuit(t *testing.T) {
	// A flat histogram has none of the office-hours structure.
	hourly := schema.NewTimeBucketSeries(schema.Hourly24Domain)
	for h := range 24 {
		hourly.Observe(h, 5)
	}
	weekdays := schema.NewTimeBucketSeries(schema.Weekday7Domain)
	for d := range 7 {
		weekdays.Observe(d, 17)
	}
	summary := &schema.ActivitySummary{
		Hourly:       hourly,
		Weekdays:     weekdays,
		Contributors: 3,
	}

	result := ClassifyProject(summary)

	assert.Equal(t, schema.CommunityProject, result.Category)
	assert.Equal(t, 90, result.Confidence)
	assert.LessOrEqual(t, result.Regularity, schema.CommunityRegularityMax)
}

func TestClassifyProjectWeightedFallbackCommunity(t *testing.T) {
	// Moderate regularity plus heavy weekend and evening shares accumulates
	// enough points for the community verdict without any short circuit.
	hourly := schema.NewTimeBucketSeries(schema.Hourly24Domain)
	for h := 10; h < 14; h++ {
		hourly.Observe(h, 5)
	}
	for h, n := range map[int]int{18: 20, 19: 20, 20: 20, 21: 10, 22: 10, 23: 10} {
		hourly.Observe(h, n)
	}
	weekdays := schema.NewTimeBucketSeries(schema.Weekday7Domain)
	weekdays.Observe(0, 30) // Sunday
	weekdays.Observe(3, 60)
	weekdays.Observe(6, 30) // Saturday
	summary := &schema.ActivitySummary{
		Hourly:       hourly,
		Weekdays:     weekdays,
		Contributors: 12,
	}

	result := ClassifyProject(summary)

	assert.Equal(t, schema.CommunityProject, result.Category)
	assert.GreaterOrEqual(t, result.CommunityScore, schema.CommunityScoreThreshold)
	assert.NotEmpty(t, result.Reasons)
}

func TestRegularityScoreEmptyHistogram(t *testing.T) {
	assert.Equal(t, 0, regularityScore(schema.NewTimeBucketSeries(schema.Hourly24Domain)))
	assert.Equal(t, 0, regularityScore(schema.TimeBucketSeries{}))
}
