package schema

import "time"

// OvertimeIndexResult is the normalized work-intensity metric.
// Ratio keeps its sign: a negative value comes from the under-saturation
// path and signals an under-utilized schedule, not overtime.
type OvertimeIndexResult struct {
	Ratio          int           `json:"ratio"`
	Index          int           `json:"index"` // Ratio * 3
	Tier           IntensityTier `json:"tier"`
	UnderSaturated bool          `json:"under_saturated"`
	NormalCount    int           `json:"normal_count"`
	OvertimeCount  int           `json:"overtime_count"`
}

// WeekdayOvertime tallies after-hours events per weekday.
type WeekdayOvertime struct {
	Totals    map[time.Weekday]int `json:"totals"`
	Peak      time.Weekday         `json:"peak"`
	PeakCount int                  `json:"peak_count"`
	Flagged   []time.Weekday       `json:"flagged"` // weekdays at >= 90% of the peak
}

// WeekendOvertime splits non-workday activity into real-overtime days
// (>= 3 distinct active hours) and brief quick-fix days.
type WeekendOvertime struct {
	SaturdayReal  int `json:"saturday_real"`
	SaturdayQuick int `json:"saturday_quick"`
	SundayReal    int `json:"sunday_real"`
	SundayQuick   int `json:"sunday_quick"`
	HolidayReal   int `json:"holiday_real"`
	HolidayQuick  int `json:"holiday_quick"`
}

// RealDays returns the total count of real-overtime days.
func (w WeekendOvertime) RealDays() int {
	return w.SaturdayReal + w.SundayReal + w.HolidayReal
}

// QuickDays returns the total count of quick-fix days.
func (w WeekendOvertime) QuickDays() int {
	return w.SaturdayQuick + w.SundayQuick + w.HolidayQuick
}

// OvertimeReport bundles the schedule with the intensity index and the
// full overtime decomposition for presentation.
type OvertimeReport struct {
	Schedule  WorkScheduleEstimate `json:"schedule"`
	Intensity OvertimeIndexResult  `json:"intensity"`
	Weekday   WeekdayOvertime      `json:"weekday"`
	Weekend   WeekendOvertime      `json:"weekend"`
	LateNight LateNightProfile     `json:"late_night"`
}

// NightBandStats holds the day count and per-week/per-month averages for one band.
type NightBandStats struct {
	Days       int     `json:"days"`
	WeeklyAvg  float64 `json:"weekly_avg"`
	MonthlyAvg float64 `json:"monthly_avg"`
}

// LateNightProfile buckets each day's latest event into four disjoint bands.
type LateNightProfile struct {
	Evening  NightBandStats `json:"evening"`  // [endHour, 21:00)
	Late     NightBandStats `json:"late"`     // [21:00, 23:00)
	Midnight NightBandStats `json:"midnight"` // [23:00, 24:00)
	Dawn     NightBandStats `json:"dawn"`     // [00:00, 06:00)

	MidnightDays    int     `json:"midnight_days"`     // days in the midnight or dawn bands
	MidnightDayRate float64 `json:"midnight_day_rate"` // against inferred workdays
	Workdays        int     `json:"workdays"`          // inferred workdays in the span
}
