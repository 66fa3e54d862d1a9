package core

import (
	"math"
	"time"

	"github.com/huangsam/workpulse/schema"
)

// IntensityInputs are the bucket tallies feeding the index formula.
type IntensityInputs struct {
	Normal            int // y: events inside the normal window
	Overtime          int // x: events outside the normal window
	Weekday           int // m: events on weekdays
	Weekend           int // n: events on weekends
	ActiveHourBuckets int // hourly buckets with any activity
}

// ClassifyActivity splits hourly events into normal and overtime counts
// against the schedule's normal window. Conservation holds: the two counts
// always sum to the series total.
func ClassifyActivity(hourly schema.TimeBucketSeries, est schema.WorkScheduleEstimate) (normal, overtime int) {
	for h, c := range hourly.Counts {
		if est.IsWorkingHour(float64(h)) {
			normal += c
		} else {
			overtime += c
		}
	}
	return normal, overtime
}

// ComputeIntensity derives the work-intensity index for the summary.
func ComputeIntensity(summary *schema.ActivitySummary, est schema.WorkScheduleEstimate) schema.OvertimeIndexResult {
	normal, overtime := ClassifyActivity(summary.Hourly, est)

	weekend := 0
	if len(summary.Weekdays.Counts) == 7 {
		weekend = summary.Weekdays.Counts[time.Saturday] + summary.Weekdays.Counts[time.Sunday]
	}
	weekday := summary.Weekdays.Total() - weekend

	return ComputeIntensityFromCounts(IntensityInputs{
		Normal:            normal,
		Overtime:          overtime,
		Weekday:           weekday,
		Weekend:           weekend,
		ActiveHourBuckets: countActiveBuckets(summary.Hourly),
	})
}

// ComputeIntensityFromCounts applies the index formula to raw tallies.
//
// correction redistributes a share of normal-hour events proportional to the
// weekend share, since weekend activity is overtime regardless of clock hour.
// When the primary ratio lands on zero with fewer than 9 active hour buckets,
// the under-saturation path substitutes a negative ratio comparing actual
// volume against a synthetic full 9-hour day at the observed pace. The sign
// distinction is preserved all the way to the caller.
func ComputeIntensityFromCounts(in IntensityInputs) schema.OvertimeIndexResult {
	result := schema.OvertimeIndexResult{
		NormalCount:   in.Normal,
		OvertimeCount: in.Overtime,
	}

	total := in.Normal + in.Overtime
	if total == 0 {
		result.Tier = schema.GetIntensityTier(0)
		return result
	}

	x, y := float64(in.Overtime), float64(in.Normal)
	var ratio int
	if allDays := in.Weekday + in.Weekend; allDays > 0 {
		correction := math.Round(x + y*float64(in.Weekend)/float64(allDays))
		ratio = int(math.Ceil(correction / float64(total) * 100))
	} else {
		ratio = int(math.Ceil(x / float64(total) * 100))
	}

	if ratio == 0 && in.ActiveHourBuckets > 0 && in.ActiveHourBuckets < schema.NormalWindowHours {
		perHour := float64(total) / float64(in.ActiveHourBuckets)
		synthetic := perHour * schema.NormalWindowHours
		ratio = int(math.Ceil(float64(total)/synthetic*100)) - 100
		result.UnderSaturated = true
	}

	result.Ratio = ratio
	result.Index = ratio * schema.IndexMultiplier
	result.Tier = schema.GetIntensityTier(result.Index)
	return result
}

// countActiveBuckets returns the number of hourly buckets with any activity.
func countActiveBuckets(hourly schema.TimeBucketSeries) int {
	active := 0
	for _, c := range hourly.Counts {
		if c > 0 {
			active++
		}
	}
	return active
}
