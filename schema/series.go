package schema

// BucketDomain identifies the fixed periodic domain of a TimeBucketSeries.
type BucketDomain string

// All bucket domains supported.
const (
	Hourly24Domain   BucketDomain = "hourly24"   // 24 hour-of-day slots
	HalfHour48Domain BucketDomain = "halfhour48" // 48 half-hour-of-day slots
	Weekday7Domain   BucketDomain = "weekday7"   // 7 day-of-week slots, Sunday first
)

// Size returns the number of slots in the domain.
func (d BucketDomain) Size() int {
	switch d {
	case HalfHour48Domain:
		return 48
	case Weekday7Domain:
		return 7
	default: // Hourly24Domain
		return 24
	}
}

// TimeBucketSeries is a zero-filled count series over a fixed periodic domain.
// Invariant: len(Counts) always equals the domain size, and the sum of counts
// equals the total number of observed events.
type TimeBucketSeries struct {
	Domain BucketDomain `json:"domain"`
	Counts []int        `json:"counts"`
}

// NewTimeBucketSeries creates an empty, zero-filled series for the domain.
func NewTimeBucketSeries(domain BucketDomain) TimeBucketSeries {
	return TimeBucketSeries{
		Domain: domain,
		Counts: make([]int, domain.Size()),
	}
}

// Observe adds n events to the given slot. Out-of-range slots are dropped.
func (s *TimeBucketSeries) Observe(slot, n int) {
	if slot < 0 || slot >= len(s.Counts) {
		return
	}
	s.Counts[slot] += n
}

// Total returns the sum of all bucket counts.
func (s TimeBucketSeries) Total() int {
	total := 0
	for _, c := range s.Counts {
		total += c
	}
	return total
}

// Max returns the highest bucket count and its slot index.
// The first slot wins ties.
func (s TimeBucketSeries) Max() (slot, count int) {
	for i, c := range s.Counts {
		if c > count {
			slot, count = i, c
		}
	}
	return slot, count
}
