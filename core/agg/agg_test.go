package agg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/workpulse/schema"
)

func TestParseActivityLogBuckets(t *testing.T) {
	out := []byte(
		"--a1|alice|2024-03-04T09:15:00+02:00\n" +
			"--a2|alice|2024-03-04T17:45:00+02:00\n" +
			"--b1|bob|2024-03-05T22:10:00-05:00\n",
	)

	summary := ParseActivityLog(out)

	assert.Equal(t, 3, summary.TotalEvents)
	assert.Equal(t, 2, summary.Contributors)

	// Hour buckets keep the author-local clock.
	assert.Equal(t, 1, summary.Hourly.Counts[9])
	assert.Equal(t, 1, summary.Hourly.Counts[17])
	assert.Equal(t, 1, summary.Hourly.Counts[22])
	assert.Equal(t, 1, summary.HalfHourly.Counts[18]) // 09:15
	assert.Equal(t, 1, summary.HalfHourly.Counts[35]) // 17:45

	// March 4th 2024 is a Monday, the 5th a Tuesday.
	assert.Equal(t, 2, summary.Weekdays.Counts[int(time.Monday)])
	assert.Equal(t, 1, summary.Weekdays.Counts[int(time.Tuesday)])

	assert.Equal(t, 2, summary.ActiveHours["2024-03-04"])
	assert.Equal(t, 1, summary.ActiveHours["2024-03-05"])
	assert.Equal(t, 2, summary.DailyTotals["2024-03-04"])
}

func TestParseActivityLogDailyExtremes(t *testing.T) {
	out := []byte(
		"--a1|alice|2024-03-04T09:15:00+02:00\n" +
			"--a2|alice|2024-03-04T17:45:00+02:00\n" +
			"--a3|alice|2024-03-04T12:00:00+02:00\n",
	)

	summary := ParseActivityLog(out)

	require.Len(t, summary.DailyFirsts, 1)
	require.Len(t, summary.DailyLasts, 1)
	assert.Equal(t, schema.DailyEventExtreme{Date: "2024-03-04", Minute: 9*60 + 15}, summary.DailyFirsts[0])
	assert.Equal(t, schema.DailyEventExtreme{Date: "2024-03-04", Minute: 17*60 + 45}, summary.DailyLasts[0])
}

func TestParseActivityLogOffsetsSortedByCount(t *testing.T) {
	out := []byte(
		"--a1|alice|2024-03-04T09:15:00+02:00\n" +
			"--a2|alice|2024-03-04T17:45:00+02:00\n" +
			"--b1|bob|2024-03-05T22:10:00-05:00\n",
	)

	summary := ParseActivityLog(out)

	require.Len(t, summary.Offsets, 2)
	assert.Equal(t, schema.OffsetGroup{OffsetMinutes: 120, Count: 2, Share: 2.0 / 3.0}, summary.Offsets[0])
	assert.Equal(t, -300, summary.Offsets[1].OffsetMinutes)
	assert.Equal(t, 1, summary.Offsets[1].Count)
}

func TestParseActivityLogPerContributorSubsets(t *testing.T) {
	out := []byte(
		"--a1|alice|2024-03-04T09:15:00+02:00\n" +
			"--a2|alice|2024-03-04T17:45:00+02:00\n" +
			"--b1|bob|2024-03-05T22:10:00-05:00\n",
	)

	summary := ParseActivityLog(out)

	require.Contains(t, summary.ByContributor, "alice")
	require.Contains(t, summary.ByContributor, "bob")
	assert.Equal(t, 2, summary.ByContributor["alice"].TotalEvents)
	assert.Equal(t, 1, summary.ByContributor["bob"].TotalEvents)
	assert.Equal(t, 1, summary.ByContributor["bob"].Hourly.Counts[22])
}

func TestParseActivityLogSkipsMalformedLines(t *testing.T) {
	out := []byte(
		"warning: some git noise\n" +
			"--x\n" +
			"--c1|carol|not-a-date\n" +
			"'--a1|alice|2024-03-04T09:15:00+02:00'\n" +
			"\n",
	)

	summary := ParseActivityLog(out)

	// Only the quoted but well-formed line survives.
	assert.Equal(t, 1, summary.TotalEvents)
	assert.Equal(t, 1, summary.Contributors)
}

func TestParseActivityLogEmptyInput(t *testing.T) {
	summary := ParseActivityLog(nil)

	assert.Equal(t, 0, summary.TotalEvents)
	assert.Equal(t, 0, summary.Contributors)
	assert.Empty(t, summary.DailyFirsts)
	assert.Empty(t, summary.Offsets)
	assert.True(t, summary.FirstEvent.IsZero())
}

func TestParseActivityLogEventSpan(t *testing.T) {
	out := []byte(
		"--a1|alice|2024-03-04T09:15:00+02:00\n" +
			"--b1|bob|2024-03-05T22:10:00-05:00\n",
	)

	summary := ParseActivityLog(out)

	// Span comparisons happen on the absolute instant, not the local clock.
	first, _ := time.Parse(time.RFC3339, "2024-03-04T09:15:00+02:00")
	last, _ := time.Parse(time.RFC3339, "2024-03-05T22:10:00-05:00")
	assert.True(t, summary.FirstEvent.Equal(first))
	assert.True(t, summary.LastEvent.Equal(last))
}

func TestParseActivityLogWeekdayHoursSorted(t *testing.T) {
	out := []byte(
		"--b1|bob|2024-03-05T22:10:00-05:00\n" +
			"--a1|alice|2024-03-04T09:15:00+02:00\n" +
			"--a2|alice|2024-03-04T09:40:00+02:00\n",
	)

	summary := ParseActivityLog(out)

	require.Len(t, summary.WeekdayHours, 2)
	assert.Equal(t, schema.DayHourCount{Weekday: time.Monday, Hour: 9, Count: 2}, summary.WeekdayHours[0])
	assert.Equal(t, schema.DayHourCount{Weekday: time.Tuesday, Hour: 22, Count: 1}, summary.WeekdayHours[1])
}
