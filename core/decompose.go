package core

import (
	"context"
	"math"
	"slices"
	"time"

	"github.com/huangsam/workpulse/internal/contract"
	"github.com/huangsam/workpulse/schema"
)

// Late-night band boundaries in minutes of day.
const (
	lateBandStartMinute     = schema.LateBandStartHour * 60
	midnightBandStartMinute = schema.MidnightBandStartHour * 60
	dawnBandEndMinute       = schema.DawnBandEndHour * 60
)

// AnalyzeWeekdayOvertime tallies after-shift events per weekday from the
// sparse (weekday, hour) matrix. The weekday with the highest sum is the
// peak; any weekday reaching 90% of the peak is flagged. Sunday-first
// iteration gives the first-encountered tie-break a fixed order.
func AnalyzeWeekdayOvertime(entries []schema.DayHourCount, endHour float64) schema.WeekdayOvertime {
	cut := int(math.Ceil(endHour))
	totals := make(map[time.Weekday]int)
	for _, e := range entries {
		if e.Hour >= cut {
			totals[e.Weekday] += e.Count
		}
	}

	result := schema.WeekdayOvertime{Totals: totals}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if totals[wd] > result.PeakCount {
			result.Peak = wd
			result.PeakCount = totals[wd]
		}
	}
	if result.PeakCount == 0 {
		return result
	}

	threshold := float64(result.PeakCount) * schema.WeekdayOvertimeFlagShare
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if totals[wd] > 0 && float64(totals[wd]) >= threshold {
			result.Flagged = append(result.Flagged, wd)
		}
	}
	return result
}

// AnalyzeWeekendOvertime classifies every non-workday with activity as either
// a real-overtime day (3+ distinct active hours) or a brief quick-fix day.
// Lookups are batched by unique date; oracle failure degrades to the plain
// Saturday/Sunday rule without failing the run.
func AnalyzeWeekendOvertime(ctx context.Context, summary *schema.ActivitySummary, oracle contract.WorkdayOracle) schema.WeekendOvertime {
	dates := sortedDates(summary.ActiveHours)
	workdays := classifyDates(ctx, oracle, dates)

	var result schema.WeekendOvertime
	for _, date := range dates {
		if workdays[date] {
			continue
		}
		day, err := time.Parse(schema.DateFormat, date)
		if err != nil {
			continue
		}
		real := summary.ActiveHours[date] >= schema.RealOvertimeMinActiveHours
		switch day.Weekday() {
		case time.Saturday:
			if real {
				result.SaturdayReal++
			} else {
				result.SaturdayQuick++
			}
		case time.Sunday:
			if real {
				result.SundayReal++
			} else {
				result.SundayQuick++
			}
		default: // a weekday holiday
			if real {
				result.HolidayReal++
			} else {
				result.HolidayQuick++
			}
		}
	}
	return result
}

// AnalyzeLateNight buckets each day's latest event into four disjoint bands
// and derives weekly/monthly averages over the analysis span. Days ending in
// the midnight or dawn bands are marked as midnight days, rated against the
// inferred workday count.
func AnalyzeLateNight(ctx context.Context, summary *schema.ActivitySummary, est schema.WorkScheduleEstimate, oracle contract.WorkdayOracle) schema.LateNightProfile {
	var profile schema.LateNightProfile
	endMinute := est.EndHour * 60

	for _, last := range summary.DailyLasts {
		minute := float64(last.Minute)
		switch {
		case minute < dawnBandEndMinute:
			profile.Dawn.Days++
			profile.MidnightDays++
		case minute >= midnightBandStartMinute:
			profile.Midnight.Days++
			profile.MidnightDays++
		case minute >= lateBandStartMinute:
			profile.Late.Days++
		case minute >= endMinute:
			profile.Evening.Days++
		}
	}

	profile.Workdays = countWorkdays(ctx, summary, oracle)
	if profile.Workdays > 0 {
		profile.MidnightDayRate = float64(profile.MidnightDays) / float64(profile.Workdays)
	}

	spanDays := summary.SpanDays()
	weeks := max(1, spanDays/7)
	months := max(1, spanDays/30)
	for _, band := range []*schema.NightBandStats{&profile.Evening, &profile.Late, &profile.Midnight, &profile.Dawn} {
		band.WeeklyAvg = float64(band.Days) / float64(weeks)
		band.MonthlyAvg = float64(band.Days) / float64(months)
	}
	return profile
}

// countWorkdays counts inferred workdays across the analysis span. Dates the
// oracle classified are honored; the rest follow the Mon-Fri rule.
func countWorkdays(ctx context.Context, summary *schema.ActivitySummary, oracle contract.WorkdayOracle) int {
	if summary.FirstEvent.IsZero() || summary.LastEvent.IsZero() {
		return 0
	}

	classified := classifyDates(ctx, oracle, sortedDates(summary.ActiveHours))
	count := 0
	// Span bounds come from the events' own calendar days so they line up
	// with the local-day date keys, not with UTC day boundaries.
	fy, fm, fd := summary.FirstEvent.Date()
	ly, lm, ld := summary.LastEvent.Date()
	first := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	last := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		isWork, ok := classified[d.Format(schema.DateFormat)]
		if !ok {
			wd := d.Weekday()
			isWork = wd != time.Saturday && wd != time.Sunday
		}
		if isWork {
			count++
		}
	}
	return count
}

// classifyDates batches one oracle lookup for the unique dates. A nil or
// failing oracle substitutes the fixed Mon-Fri rule.
func classifyDates(ctx context.Context, oracle contract.WorkdayOracle, dates []string) map[string]bool {
	if oracle != nil {
		classified, err := oracle.Classify(ctx, dates)
		if err == nil {
			return classified
		}
		contract.LogWarn("Workday oracle unavailable, using fixed calendar", err)
	}

	classified := make(map[string]bool, len(dates))
	for _, date := range dates {
		if day, err := time.Parse(schema.DateFormat, date); err == nil {
			wd := day.Weekday()
			classified[date] = wd != time.Saturday && wd != time.Sunday
		}
	}
	return classified
}

// sortedDates returns the map keys in ascending order for deterministic passes.
func sortedDates(byDate map[string]int) []string {
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	slices.Sort(dates)
	return dates
}
