package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeBucketSeriesZeroFill(t *testing.T) {
	tests := []struct {
		name     string
		domain   BucketDomain
		expected int
	}{
		{name: "hourly", domain: Hourly24Domain, expected: 24},
		{name: "half hourly", domain: HalfHour48Domain, expected: 48},
		{name: "weekday", domain: Weekday7Domain, expected: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTimeBucketSeries(tt.domain)
			assert.Len(t, s.Counts, tt.expected)
			assert.Equal(t, 0, s.Total())
		})
	}
}

func TestTimeBucketSeriesObserve(t *testing.T) {
	s := NewTimeBucketSeries(Hourly24Domain)
	s.Observe(9, 3)
	s.Observe(17, 2)
	s.Observe(-1, 5) // dropped
	s.Observe(24, 5) // dropped

	assert.Equal(t, 5, s.Total())
	slot, count := s.Max()
	assert.Equal(t, 9, slot)
	assert.Equal(t, 3, count)
}

func TestTimeBucketSeriesMaxFirstSlotWinsTies(t *testing.T) {
	s := NewTimeBucketSeries(Weekday7Domain)
	s.Observe(2, 4)
	s.Observe(5, 4)

	slot, count := s.Max()
	assert.Equal(t, 2, slot)
	assert.Equal(t, 4, count)
}

func TestGetIntensityTier(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		expected IntensityTier
	}{
		{name: "negative under saturation", index: -40, expected: UnderUtilizedTier},
		{name: "zero", index: 0, expected: UnderUtilizedTier},
		{name: "balanced boundary", index: 21, expected: BalancedTier},
		{name: "mild", index: 30, expected: MildTier},
		{name: "moderate boundary", index: 63, expected: ModerateTier},
		{name: "heavy", index: 100, expected: HeavyTier},
		{name: "severe", index: 130, expected: SevereTier},
		{name: "extreme", index: 150, expected: ExtremeTier},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetIntensityTier(tt.index))
		})
	}
}

func TestIsWorkingHourCapsNormalWindow(t *testing.T) {
	// Detected end is 12 hours after start; the normal window still stops at 9.
	est := WorkScheduleEstimate{StartHour: 9, EndHour: 21}

	assert.True(t, est.IsWorkingHour(9))
	assert.True(t, est.IsWorkingHour(17.5))
	assert.False(t, est.IsWorkingHour(18))
	assert.False(t, est.IsWorkingHour(20))
	assert.False(t, est.IsWorkingHour(8.5))
	assert.Equal(t, 18.0, est.NormalEndHour())
}

func TestSpanDays(t *testing.T) {
	s := &ActivitySummary{
		FirstEvent: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		LastEvent:  time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 15, s.SpanDays())

	empty := &ActivitySummary{}
	assert.Equal(t, 1, empty.SpanDays())
}

func TestGetTeamHealth(t *testing.T) {
	assert.Equal(t, HealthyTeam, GetTeamHealth(10))
	assert.Equal(t, StableTeam, GetTeamHealth(50))
	assert.Equal(t, StrainedTeam, GetTeamHealth(90))
	assert.Equal(t, OverloadedTeam, GetTeamHealth(120))
}
