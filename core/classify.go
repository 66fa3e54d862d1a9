package core

import (
	"fmt"

	"github.com/huangsam/workpulse/schema"
)

// Weighted fallback point tables for the community score.
const (
	regularityVeryLowPts = 25 // regularity <= 40
	regularityLowPts     = 15 // regularity <= 55
	regularityMidPts     = 5  // regularity <= 70

	contribLargePts  = 25 // >= 30 contributors
	contribMediumPts = 20 // >= 20
	contribSmallPts  = 10 // >= 10
	contribTinyPts   = 5  // >= 5

	weekendVeryHighPts = 25 // weekend ratio >= 0.4
	weekendHighPts     = 20 // >= 0.3
	weekendMidPts      = 10 // >= 0.2
	weekendLowPts      = 5  // >= 0.1

	moonlightingPts = 20 // evening share >= 25%
)

// Reference windows for the regularity criteria, as hourly slot bounds.
const (
	morningWindowStart   = 6
	morningWindowMid     = 9
	morningWindowEnd     = 12
	afternoonWindowStart = 14
	afternoonWindowEnd   = 18
	eveningRefStart      = 19
	eveningRefEnd        = 22
	eveningWindowStart   = 18
	eveningWindowMid     = 21
	eveningWindowEnd     = 23
	nightWindowStart     = 22
	nightWindowEnd       = 6

	// Back-half evening activity above this multiple of the front half counts
	// as a significant rise.
	eveningRiseTolerance = 1.1
)

// classifierFacts are the four scored dimensions feeding the decision rules.
type classifierFacts struct {
	regularity     int
	weekendRatio   float64
	moonlightRatio float64
	contributors   int
}

// classifierRule inspects the facts and returns a verdict, or nil to fall
// through to the next rule.
type classifierRule func(f classifierFacts) *schema.ClassificationResult

// projectRules is the ordered short-circuit chain evaluated before the
// weighted fallback scorer.
var projectRules = []classifierRule{
	ruleManyContributors,
	ruleLowRegularity,
}

// ClassifyProject decides whether the activity pattern looks organizational
// or community-driven. The verdict gates how much the intensity metrics mean:
// a community project's irregular hours are not overtime.
func ClassifyProject(summary *schema.ActivitySummary) schema.ClassificationResult {
	facts := gatherClassifierFacts(summary)
	for _, rule := range projectRules {
		if verdict := rule(facts); verdict != nil {
			return *verdict
		}
	}
	return weightedFallback(facts)
}

// gatherClassifierFacts computes the four dimensions from the summary.
func gatherClassifierFacts(summary *schema.ActivitySummary) classifierFacts {
	facts := classifierFacts{
		regularity:   regularityScore(summary.Hourly),
		contributors: summary.Contributors,
	}

	if total := summary.Weekdays.Total(); total > 0 && len(summary.Weekdays.Counts) == 7 {
		weekend := summary.Weekdays.Counts[0] + summary.Weekdays.Counts[6] // Sunday + Saturday
		facts.weekendRatio = float64(weekend) / float64(total)
	}

	daytime := sumHourRange(summary.Hourly, 9, 18)
	evening := sumHourRange(summary.Hourly, eveningRefStart, 24)
	if daytime+evening > 0 {
		facts.moonlightRatio = float64(evening) / float64(daytime+evening)
	}
	return facts
}

// regularityScore awards 25 points for each satisfied criterion of a regular
// office-hours activity shape: a morning rise, an afternoon peak, no evening
// rebound, and a low night share.
func regularityScore(hourly schema.TimeBucketSeries) int {
	if len(hourly.Counts) < 24 || hourly.Total() == 0 {
		return 0
	}
	score := 0

	// Morning rise: the second half of the 06-12 window averages at least
	// 20% above the first half.
	earlyMorning := avgHourRange(hourly, morningWindowStart, morningWindowMid)
	lateMorning := avgHourRange(hourly, morningWindowMid, morningWindowEnd)
	if (earlyMorning == 0 && lateMorning > 0) || (earlyMorning > 0 && lateMorning >= earlyMorning*(1+schema.MorningRiseMinGain)) {
		score += schema.RegularityCriterionPoints
	}

	// Afternoon peak: the 14-18 average exceeds both reference windows.
	afternoon := avgHourRange(hourly, afternoonWindowStart, afternoonWindowEnd)
	eveningRef := avgHourRange(hourly, eveningRefStart, eveningRefEnd)
	if afternoon > lateMorning && afternoon > eveningRef {
		score += schema.RegularityCriterionPoints
	}

	// Evening decline: no significant rise in the back half of 18-23.
	eveningFront := avgHourRange(hourly, eveningWindowStart, eveningWindowMid)
	eveningBack := avgHourRange(hourly, eveningWindowMid, eveningWindowEnd)
	if eveningBack <= eveningFront*eveningRiseTolerance {
		score += schema.RegularityCriterionPoints
	}

	// Low night share: under 15% of events fall in 22:00-06:00.
	night := sumHourRange(hourly, nightWindowStart, 24) + sumHourRange(hourly, 0, nightWindowEnd)
	if float64(night)/float64(hourly.Total()) < schema.NightShareCeiling {
		score += schema.RegularityCriterionPoints
	}

	return score
}

// ruleManyContributors short-circuits to community for large contributor pools.
func ruleManyContributors(f classifierFacts) *schema.ClassificationResult {
	if f.contributors < schema.CommunityContributorCount {
		return nil
	}
	verdict := newResult(schema.CommunityProject, min(95, 70+f.contributors/10), f)
	verdict.Reasons = append(verdict.Reasons,
		fmt.Sprintf("%d contributors is far beyond a single team", f.contributors))
	return &verdict
}

// ruleLowRegularity short-circuits to community when the hourly shape has
// none of the office-hours structure.
func ruleLowRegularity(f classifierFacts) *schema.ClassificationResult {
	if f.regularity > schema.CommunityRegularityMax {
		return nil
	}
	verdict := newResult(schema.CommunityProject, 90, f)
	verdict.Reasons = append(verdict.Reasons,
		fmt.Sprintf("activity shape has no office-hours structure (regularity %d/100)", f.regularity))
	return &verdict
}

// weightedFallback accumulates a community score from tiered point tables and
// maps it to a verdict with the matching confidence formula.
func weightedFallback(f classifierFacts) schema.ClassificationResult {
	score := 0
	var reasons []string

	switch {
	case f.regularity <= 40:
		score += regularityVeryLowPts
		reasons = append(reasons, fmt.Sprintf("low regularity %d/100 suggests volunteer hours", f.regularity))
	case f.regularity <= 55:
		score += regularityLowPts
		reasons = append(reasons, fmt.Sprintf("mixed regularity %d/100", f.regularity))
	case f.regularity <= 70:
		score += regularityMidPts
		reasons = append(reasons, fmt.Sprintf("mostly regular hours (regularity %d/100)", f.regularity))
	default:
		reasons = append(reasons, fmt.Sprintf("strongly regular hours (regularity %d/100)", f.regularity))
	}

	switch {
	case f.contributors >= 30:
		score += contribLargePts
		reasons = append(reasons, fmt.Sprintf("%d contributors", f.contributors))
	case f.contributors >= 20:
		score += contribMediumPts
		reasons = append(reasons, fmt.Sprintf("%d contributors", f.contributors))
	case f.contributors >= 10:
		score += contribSmallPts
		reasons = append(reasons, fmt.Sprintf("%d contributors", f.contributors))
	case f.contributors >= 5:
		score += contribTinyPts
		reasons = append(reasons, fmt.Sprintf("%d contributors", f.contributors))
	}

	switch {
	case f.weekendRatio >= 0.4:
		score += weekendVeryHighPts
		reasons = append(reasons, fmt.Sprintf("%.0f%% of activity on weekends", f.weekendRatio*100))
	case f.weekendRatio >= 0.3:
		score += weekendHighPts
		reasons = append(reasons, fmt.Sprintf("%.0f%% of activity on weekends", f.weekendRatio*100))
	case f.weekendRatio >= 0.2:
		score += weekendMidPts
		reasons = append(reasons, fmt.Sprintf("%.0f%% of activity on weekends", f.weekendRatio*100))
	case f.weekendRatio >= 0.1:
		score += weekendLowPts
		reasons = append(reasons, fmt.Sprintf("%.0f%% of activity on weekends", f.weekendRatio*100))
	}

	if f.moonlightRatio >= schema.MoonlightingFlagRatio {
		score += moonlightingPts
		reasons = append(reasons, fmt.Sprintf("%.0f%% of daytime+evening activity lands in the evening", f.moonlightRatio*100))
	}

	var verdict schema.ClassificationResult
	switch {
	case score >= schema.CommunityScoreThreshold:
		verdict = newResult(schema.CommunityProject, min(95, 50+score/2), f)
	case score >= schema.UncertainScoreThreshold:
		verdict = newResult(schema.UncertainProject, 50, f)
	default:
		verdict = newResult(schema.OrganizationalProject, min(95, 80-score), f)
	}
	verdict.CommunityScore = score
	verdict.Reasons = reasons
	return verdict
}

// newResult builds a ClassificationResult carrying the scored dimensions.
func newResult(category schema.ProjectCategory, confidence int, f classifierFacts) schema.ClassificationResult {
	return schema.ClassificationResult{
		Category:       category,
		Confidence:     confidence,
		Regularity:     f.regularity,
		WeekendRatio:   f.weekendRatio,
		MoonlightRatio: f.moonlightRatio,
		Contributors:   f.contributors,
	}
}

// avgHourRange averages hourly counts over [start, end).
func avgHourRange(hourly schema.TimeBucketSeries, start, end int) float64 {
	if end <= start {
		return 0
	}
	return float64(sumHourRange(hourly, start, end)) / float64(end-start)
}

// sumHourRange sums hourly counts over [start, end).
func sumHourRange(hourly schema.TimeBucketSeries, start, end int) int {
	sum := 0
	for h := start; h < end && h < len(hourly.Counts); h++ {
		if h >= 0 {
			sum += hourly.Counts[h]
		}
	}
	return sum
}
