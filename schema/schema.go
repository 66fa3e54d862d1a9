// Package schema has models, constants and global variables for all parts of workpulse.
package schema

import "time"

// DailyEventExtreme is a per-calendar-day earliest or latest event minute-of-day.
// The date key is only used for grouping; no ordering is guaranteed.
type DailyEventExtreme struct {
	Date   string `json:"date"`   // Calendar day formatted as 2006-01-02
	Minute int    `json:"minute"` // Minute of day in [0, 1440)
}

// DayHourCount is a sparse (weekday, hour) activity matrix entry.
type DayHourCount struct {
	Weekday time.Weekday `json:"weekday"`
	Hour    int          `json:"hour"`
	Count   int          `json:"count"`
}

// OffsetGroup is one commit-timezone offset with its event count and share.
type OffsetGroup struct {
	OffsetMinutes int     `json:"offset_minutes"` // UTC offset in minutes, e.g. -480 for UTC-8
	Count         int     `json:"count"`
	Share         float64 `json:"share"` // Count / total events
}

// ActivitySummary is the aggregation of all things from the one-pass Git operation.
// It is the sole input consumed by the inference core and is JSON-serializable
// so the collector output can be cached between runs.
type ActivitySummary struct {
	Hourly       TimeBucketSeries    `json:"hourly"`
	HalfHourly   TimeBucketSeries    `json:"half_hourly"`
	Weekdays     TimeBucketSeries    `json:"weekdays"`
	DailyFirsts  []DailyEventExtreme `json:"daily_firsts"`
	DailyLasts   []DailyEventExtreme `json:"daily_lasts"`
	WeekdayHours []DayHourCount      `json:"weekday_hours"`
	ActiveHours  map[string]int      `json:"active_hours"` // Date -> distinct active hour count
	DailyTotals  map[string]int      `json:"daily_totals"` // Date -> event count
	Contributors int                 `json:"contributors"`
	Offsets      []OffsetGroup       `json:"offsets"` // Sorted by count descending
	FirstEvent   time.Time           `json:"first_event"`
	LastEvent    time.Time           `json:"last_event"`
	TotalEvents  int                 `json:"total_events"`

	// ByContributor holds one summary per author name. Only populated on the
	// repo-wide summary; nested summaries leave it nil.
	ByContributor map[string]*ActivitySummary `json:"by_contributor,omitempty"`
}

// SpanDays returns the number of calendar days covered by the summary, minimum 1.
func (s *ActivitySummary) SpanDays() int {
	if s.FirstEvent.IsZero() || s.LastEvent.IsZero() {
		return 1
	}
	days := int(s.LastEvent.Sub(s.FirstEvent).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// DiagnosisOutput bundles every result the pipeline produces for one repository.
type DiagnosisOutput struct {
	Schedule       WorkScheduleEstimate `json:"schedule"`
	Intensity      OvertimeIndexResult  `json:"intensity"`
	Weekday        WeekdayOvertime      `json:"weekday_overtime"`
	Weekend        WeekendOvertime      `json:"weekend_overtime"`
	LateNight      LateNightProfile     `json:"late_night"`
	Timezone       TimezoneAnalysis     `json:"timezone"`
	Classification ClassificationResult `json:"classification"`
}
