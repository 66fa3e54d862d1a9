package core

import (
	"math"
	"time"

	"github.com/huangsam/workpulse/schema"
)

// DetectSchedule infers the daily work schedule from the activity summary.
// A non-nil manual range bypasses detection entirely and is reported with
// full confidence.
func DetectSchedule(summary *schema.ActivitySummary, manual *schema.HourRange) schema.WorkScheduleEstimate {
	if manual != nil {
		return schema.WorkScheduleEstimate{
			StartHour:   manual.Start,
			EndHour:     manual.End,
			Confidence:  100,
			SampleCount: summary.TotalEvents,
			Method:      schema.ManualMethod,
			StartRange:  schema.HourRange{Start: manual.Start, End: manual.Start},
			EndRange:    schema.HourRange{Start: manual.End, End: manual.End},
		}
	}

	startHour, startRange, samples := DetectStartTime(summary.DailyFirsts)
	endHour, endRange, method := DetectEndTime(summary.Hourly, startHour)

	return schema.WorkScheduleEstimate{
		StartHour:   startHour,
		EndHour:     endHour,
		Confidence:  sampleConfidence(samples),
		SampleCount: samples,
		Method:      method,
		StartRange:  startRange,
		EndRange:    endRange,
	}
}

// DetectStartTime infers the workday start from per-day earliest event minutes.
// Samples are restricted to weekdays within the plausible 05:00-12:00 band.
// A percentile window is used rather than the single minimum so one early
// outlier cannot dominate the estimate.
func DetectStartTime(firsts []schema.DailyEventExtreme) (float64, schema.HourRange, int) {
	bandLo := schema.StartBandMinHour * 60
	bandHi := schema.StartBandMaxHour * 60

	samples := make([]float64, 0, len(firsts))
	for _, f := range firsts {
		day, err := time.Parse(schema.DateFormat, f.Date)
		if err != nil {
			continue
		}
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		minute := float64(f.Minute)
		if minute < bandLo || minute > bandHi {
			continue
		}
		samples = append(samples, minute)
	}

	if len(samples) == 0 {
		fallback := schema.HourRange{Start: schema.DefaultStartHour, End: schema.DefaultStartRangeHi}
		return schema.DefaultStartHour, fallback, 0
	}

	lo := percentile(samples, schema.StartPercentileLow)
	hi := percentile(samples, schema.StartPercentileHigh)

	// Round down to 30-minute marks, then clamp to the plausible band.
	lo = math.Floor(lo/schema.StartRoundMinutes) * schema.StartRoundMinutes
	hi = math.Floor(hi/schema.StartRoundMinutes) * schema.StartRoundMinutes
	lo = clampFloat(lo, bandLo, bandHi)
	hi = clampFloat(hi, bandLo, bandHi)

	// Cap the interval width at one hour; the lower bound is the estimate.
	if hi-lo > schema.StartRangeCapHours*60 {
		hi = lo + schema.StartRangeCapHours*60
	}
	if hi < lo {
		hi = lo
	}

	startHour := lo / 60
	return startHour, schema.HourRange{Start: startHour, End: hi / 60}, len(samples)
}

// DetectEndTime computes the workday end. The standard-shift candidate is
// start + 9 hours; the observed candidate comes from a backward decay scan of
// the hourly histogram and wins only when the scan signals a reliable
// breakpoint. The returned method records which candidate was used.
func DetectEndTime(hourly schema.TimeBucketSeries, startHour float64) (float64, schema.HourRange, schema.DetectionMethod) {
	if observed, ok := scanObservedEnd(hourly, startHour); ok {
		return observed, schema.HourRange{Start: observed - 1, End: observed}, schema.ObservedMethod
	}
	standard := math.Min(startHour+schema.StandardShiftHours, 24)
	return standard, schema.HourRange{Start: standard - 1, End: standard}, schema.StandardMethod
}

// scanObservedEnd walks the hourly histogram backward from the 23:00 cutoff
// looking for the latest hour that still sustains a quarter of the
// working-window peak. It reports ok=false when the window is too sparse to
// trust the scan.
func scanObservedEnd(hourly schema.TimeBucketSeries, startHour float64) (float64, bool) {
	startSlot := int(startHour)
	if startSlot < 0 || startSlot >= schema.ObservedEndCutoffHour || len(hourly.Counts) < 24 {
		return 0, false
	}

	peak, inWindow := 0, 0
	for h := startSlot; h < schema.ObservedEndCutoffHour; h++ {
		c := hourly.Counts[h]
		inWindow += c
		if c > peak {
			peak = c
		}
	}
	if peak == 0 || inWindow < schema.MinObservedEndSamples {
		return 0, false
	}

	threshold := float64(peak) * schema.ObservedEndPeakShare
	for h := schema.ObservedEndCutoffHour - 1; h >= startSlot; h-- {
		if float64(hourly.Counts[h]) >= threshold {
			return float64(h + 1), true
		}
	}
	return 0, false
}
