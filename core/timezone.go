package core

import (
	"math"

	"github.com/huangsam/workpulse/schema"
)

// Confidence tiers by total sample size.
const (
	tzSamplesLow  = 50
	tzSamplesMid  = 200
	tzSamplesHigh = 500

	tzConfidenceLow     = 30
	tzConfidenceMid     = 50
	tzConfidenceHigh    = 70
	tzConfidenceHighest = 85
)

// AnalyzeTimezone runs both cross-timezone detection methods and combines
// them with a logical OR. Method A measures commit-offset diversity; method B
// measures activity inside the quietest 5-hour wrap-around window, which a
// single-timezone team leaves nearly silent.
func AnalyzeTimezone(summary *schema.ActivitySummary) schema.TimezoneAnalysis {
	result := schema.TimezoneAnalysis{SampleCount: summary.TotalEvents}

	// Method A: offset diversity.
	offsetTotal := 0
	for _, g := range summary.Offsets {
		offsetTotal += g.Count
	}
	if offsetTotal > 0 {
		dominant := summary.Offsets[0]
		result.DominantOffset = dominant.OffsetMinutes
		result.DominantShare = float64(dominant.Count) / float64(offsetTotal)
		result.DiversityRatio = 1 - result.DominantShare
		result.DiversityFlag = result.DiversityRatio >= schema.OffsetDiversityFlagRatio

		limit := min(len(summary.Offsets), schema.TopOffsetGroupLimit)
		result.TopGroups = make([]schema.OffsetGroup, 0, limit)
		for _, g := range summary.Offsets[:limit] {
			g.Share = float64(g.Count) / float64(offsetTotal)
			result.TopGroups = append(result.TopGroups, g)
		}
	}

	// Method B: sleep-window silence.
	if total := summary.Hourly.Total(); total > 0 {
		quietSum, quietStart := findQuietWindow(summary.Hourly)
		result.SleepRatio = float64(quietSum) / float64(total)
		result.SleepFlag = result.SleepRatio >= schema.SleepWindowFlagRatio
		result.SleepWindow = schema.HourRange{
			Start: float64(quietStart),
			End:   float64(quietStart + schema.SleepWindowHours),
		}
	}

	result.CrossTimezone = result.DiversityFlag || result.SleepFlag
	result.MethodsAgree = result.DiversityFlag && result.SleepFlag
	result.Confidence = timezoneConfidence(summary.TotalEvents, result.MethodsAgree)
	return result
}

// findQuietWindow slides a fixed 5-hour window across all 24 wrap-around
// rotations of the hourly histogram and returns the minimum-sum window.
func findQuietWindow(hourly schema.TimeBucketSeries) (sum, startHour int) {
	if len(hourly.Counts) < 24 {
		return 0, 0
	}
	best := math.MaxInt
	for start := range 24 {
		s := 0
		for i := range schema.SleepWindowHours {
			s += hourly.Counts[(start+i)%24]
		}
		if s < best {
			best = s
			startHour = start
		}
	}
	return best, startHour
}

// timezoneConfidence maps the sample size to a confidence tier, boosted when
// both detection methods agree.
func timezoneConfidence(samples int, agree bool) int {
	var confidence int
	switch {
	case samples < tzSamplesLow:
		confidence = tzConfidenceLow
	case samples < tzSamplesMid:
		confidence = tzConfidenceMid
	case samples < tzSamplesHigh:
		confidence = tzConfidenceHigh
	default:
		confidence = tzConfidenceHighest
	}
	if agree {
		confidence = min(confidence+schema.TimezoneAgreementBoost, schema.TimezoneConfidenceCap)
	}
	return confidence
}
