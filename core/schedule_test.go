package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/huangsam/workpulse/schema"
)

// weekdayFirsts builds per-day earliest minutes for Mon-Fri 2024-01-01..05.
func weekdayFirsts(minutes ...int) []schema.DailyEventExtreme {
	dates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}
	firsts := make([]schema.DailyEventExtreme, 0, len(minutes))
	for i, m := range minutes {
		firsts = append(firsts, schema.DailyEventExtreme{Date: dates[i%len(dates)], Minute: m})
	}
	return firsts
}

func TestDetectStartTimeUniformMornings(t *testing.T) {
	// Five weekdays, all starting at 09:00.
	start, rng, samples := DetectStartTime(weekdayFirsts(540, 540, 540, 540, 540))

	assert.Equal(t, 9.0, start)
	assert.Equal(t, 9.0, rng.Start)
	assert.Equal(t, 9.0, rng.End)
	assert.Equal(t, 5, samples)
}

func TestDetectStartTimeFiltersWeekendsAndBand(t *testing.T) {
	firsts := []schema.DailyEventExtreme{
		{Date: "2024-01-01", Minute: 540}, // Monday 09:00
		{Date: "2024-01-02", Minute: 555}, // Tuesday 09:15
		{Date: "2024-01-03", Minute: 200}, // Wednesday 03:20, below band
		{Date: "2024-01-04", Minute: 800}, // Thursday 13:20, above band
		{Date: "2024-01-06", Minute: 300}, // Saturday, dropped
		{Date: "not-a-date", Minute: 540}, // unparsable, dropped
	}

	start, _, samples := DetectStartTime(firsts)

	assert.Equal(t, 2, samples)
	assert.Equal(t, 9.0, start) // both samples round down to 09:00
}

func TestDetectStartTimeZeroSamplesFallsBack(t *testing.T) {
	start, rng, samples := DetectStartTime(nil)

	assert.Equal(t, schema.DefaultStartHour, start)
	assert.Equal(t, schema.DefaultStartHour, rng.Start)
	assert.Equal(t, schema.DefaultStartRangeHi, rng.End)
	assert.Equal(t, 0, samples)
}

func TestDetectStartTimeRangeCappedAtOneHour(t *testing.T) {
	// Spread enough that P10 and P20 land over an hour apart before capping.
	minutes := []int{330, 330, 600, 610, 620, 630, 640, 650, 660, 670}
	_, rng, _ := DetectStartTime(weekdayFirsts(minutes...))

	assert.LessOrEqual(t, rng.Width(), schema.StartRangeCapHours)
}

func TestDetectEndTimeObservedDecay(t *testing.T) {
	hourly := schema.NewTimeBucketSeries(schema.Hourly24Domain)
	for h := 9; h <= 17; h++ {
		hourly.Observe(h, 10)
	}
	hourly.Observe(20, 5) // lingering evening work above the 25% threshold

	end, rng, method := DetectEndTime(hourly, 9)

	assert.Equal(t, 21.0, end)
	assert.Equal(t, schema.ObservedMethod, method)
	assert.Equal(t, 20.0, rng.Start)
	assert.Equal(t, 21.0, rng.End)
}

func TestDetectEndTimeSparseWindowFallsBackToStandard(t *testing.T) {
	hourly := schema.NewTimeBucketSeries(schema.Hourly24Domain)
	for h := 9; h <= 17; h++ {
		hourly.Observe(h, 1) // 9 in-window events, below the trust floor
	}

	end, _, method := DetectEndTime(hourly, 9)

	assert.Equal(t, 18.0, end)
	assert.Equal(t, schema.StandardMethod, method)
}

func TestDetectEndTimeEmptyHistogram(t *testing.T) {
	end, _, method := DetectEndTime(schema.NewTimeBucketSeries(schema.Hourly24Domain), 9)

	assert.Equal(t, 18.0, end)
	assert.Equal(t, schema.StandardMethod, method)
}

func TestDetectScheduleManualOverride(t *testing.T) {
	summary := &schema.ActivitySummary{TotalEvents: 42}
	manual := &schema.HourRange{Start: 9.5, End: 18.5}

	est := DetectSchedule(summary, manual)

	assert.Equal(t, 9.5, est.StartHour)
	assert.Equal(t, 18.5, est.EndHour)
	assert.Equal(t, 100, est.Confidence)
	assert.Equal(t, 42, est.SampleCount)
	assert.Equal(t, schema.ManualMethod, est.Method)
}

func TestDetectScheduleConfidenceGrowsWithSamples(t *testing.T) {
	small := &schema.ActivitySummary{
		Hourly:      schema.NewTimeBucketSeries(schema.Hourly24Domain),
		DailyFirsts: weekdayFirsts(540, 540),
	}
	large := &schema.ActivitySummary{
		Hourly:      schema.NewTimeBucketSeries(schema.Hourly24Domain),
		DailyFirsts: weekdayFirsts(540, 540, 540, 540, 540),
	}

	estSmall := DetectSchedule(small, nil)
	estLarge := DetectSchedule(large, nil)

	assert.Less(t, estSmall.Confidence, estLarge.Confidence)
}
