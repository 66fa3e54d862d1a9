package outwriter

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/workpulse/internal/contract"
	"github.com/huangsam/workpulse/schema"
)

func TestCreateFloatFormatter(t *testing.T) {
	assert.Equal(t, "9.5", createFloatFormatter(1)(9.5))
	assert.Equal(t, "9.50", createFloatFormatter(2)(9.5))
	assert.Equal(t, "10.0", createFloatFormatter(1)(9.99))
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", truncateName("short", 20))
	assert.Equal(t, "exactly-ten", truncateName("exactly-ten", 11))
	assert.Equal(t, "a-very-...", truncateName("a-very-long-contributor-name", 10))
	// Below the minimum budget nothing is cut.
	assert.Equal(t, "abcdef", truncateName("abcdef", 3))
}

func TestMaxNameWidth(t *testing.T) {
	assert.Equal(t, 15, maxNameWidth(60))  // narrow terminals clamp low
	assert.Equal(t, 20, maxNameWidth(80))  // standard terminal
	assert.Equal(t, 40, maxNameWidth(200)) // wide terminals clamp high
}

func TestGetTerminalWidthOverride(t *testing.T) {
	assert.Equal(t, 120, getTerminalWidth(120))
}

func TestHeaderEmoji(t *testing.T) {
	assert.Equal(t, "🕘 Estimated work schedule", headerEmoji(true, "🕘", "Estimated work schedule"))
	assert.Equal(t, "Estimated work schedule", headerEmoji(false, "🕘", "Estimated work schedule"))
}

func TestFormatOffset(t *testing.T) {
	assert.Equal(t, "UTC+02:00", formatOffset(120))
	assert.Equal(t, "UTC-05:00", formatOffset(-300))
	assert.Equal(t, "UTC+05:30", formatOffset(330))
	assert.Equal(t, "UTC+00:00", formatOffset(0))
}

func TestBaselineLoadLabel(t *testing.T) {
	assert.Equal(t, "below", baselineLoadLabel(schema.BelowBaselineTier))
	assert.Equal(t, "within", baselineLoadLabel(schema.NearBaselineTier))
	assert.Equal(t, "above", baselineLoadLabel(schema.AboveBaselineTier))
	assert.Equal(t, "n/a", baselineLoadLabel(schema.NoTier))
}

func TestScheduleHours(t *testing.T) {
	start, end := scheduleHours(nil)
	assert.Equal(t, "-", start)
	assert.Equal(t, "-", end)

	start, end = scheduleHours(&schema.WorkScheduleEstimate{StartHour: 9.5, EndHour: 18})
	assert.Equal(t, "09:30", start)
	assert.Equal(t, "18:00", end)
}

func TestWriteScheduleCSV(t *testing.T) {
	est := schema.WorkScheduleEstimate{
		StartHour:   9,
		EndHour:     18.5,
		StartRange:  schema.HourRange{Start: 9, End: 9.5},
		EndRange:    schema.HourRange{Start: 18, End: 19},
		Method:      schema.ObservedMethod,
		Confidence:  72,
		SampleCount: 140,
	}

	var buf bytes.Buffer
	require.NoError(t, writeScheduleCSV(&buf, est))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "start_hour", records[0][0])
	assert.Equal(t, "09:00", records[1][0])
	assert.Equal(t, "18:30", records[1][1])
	assert.Equal(t, string(schema.ObservedMethod), records[1][6])
	assert.Equal(t, "72", records[1][7])
}

func TestWriteScheduleText(t *testing.T) {
	est := schema.WorkScheduleEstimate{
		StartHour:   9,
		EndHour:     18,
		StartRange:  schema.HourRange{Start: 9, End: 9.5},
		EndRange:    schema.HourRange{Start: 17.5, End: 18.5},
		Method:      schema.ObservedMethod,
		Confidence:  60,
		SampleCount: 80,
	}
	cfg := &contract.Config{Workers: 4, CacheBackend: schema.SQLiteBackend, UseEmojis: true}

	var buf bytes.Buffer
	require.NoError(t, writeScheduleText(&buf, est, cfg, time.Second))

	out := buf.String()
	assert.Contains(t, out, "Start: 09:00 (likely 09:00-09:30)")
	assert.Contains(t, out, "End:   18:00")
	assert.Contains(t, out, "confidence 60% from 80 samples")
}

func TestWriteTimezoneCSV(t *testing.T) {
	tz := schema.TimezoneAnalysis{
		CrossTimezone:  true,
		DiversityRatio: 0.0123,
		SleepRatio:     0.2,
		DominantOffset: 120,
		DominantShare:  0.9877,
		MethodsAgree:   false,
		Confidence:     85,
		SampleCount:    900,
	}

	var buf bytes.Buffer
	require.NoError(t, writeTimezoneCSV(&buf, tz))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "true", records[1][0])
	assert.Equal(t, "0.0123", records[1][1])
	assert.Equal(t, "120", records[1][3])
	assert.Equal(t, "85", records[1][6])
}

func TestWriteTeamCSV(t *testing.T) {
	team := schema.TeamAnalysis{
		Contributors: []schema.ContributorResult{
			{
				Name:      "alice",
				Events:    120,
				Schedule:  &schema.WorkScheduleEstimate{StartHour: 9, EndHour: 18},
				Intensity: schema.OvertimeIndexResult{Ratio: 12, Index: 36, Tier: schema.HeavyTier},
				Tier:      schema.NearBaselineTier,
			},
			{
				Name:      "drive-by",
				Events:    2,
				Intensity: schema.OvertimeIndexResult{Tier: schema.UnderUtilizedTier},
				Tier:      schema.NoTier,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeTeamCSV(&buf, team))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"1", "alice", "120", "09:00", "18:00", "12", "36", string(schema.HeavyTier), "within"}, records[1])
	assert.Equal(t, "-", records[2][3])
	assert.Equal(t, "n/a", records[2][8])
}

func TestWriteJSONIndented(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"events": 3}))
	assert.Contains(t, buf.String(), "  \"events\": 3")
}
