// Package agg has aggregation logic for commit-timing activity data.
package agg

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/huangsam/workpulse/internal/contract"
	"github.com/huangsam/workpulse/schema"
)

// AggregateActivity performs a single repository-wide git log pass and
// bucketizes every commit by its author-local clock time. It runs over the
// entire history if cfg.StartTime is zero, or since cfg.StartTime otherwise.
func AggregateActivity(ctx context.Context, cfg *contract.Config, client contract.GitClient) (*schema.ActivitySummary, error) {
	out, err := client.GetActivityLog(ctx, cfg.RepoPath, cfg.GetAnalysisStartTime(), cfg.GetAnalysisEndTime())
	if err != nil {
		return nil, err
	}
	return ParseActivityLog(out), nil
}

// ParseActivityLog turns raw commit-header log output into the bucketed
// summary. Each line has the form "--<hash>|<author>|<iso-strict date>"; the
// date keeps the author's original UTC offset so clock hours reflect the
// author's local day.
func ParseActivityLog(out []byte) *schema.ActivitySummary {
	repo := newSummaryBuilder()
	authors := make(map[string]*summaryBuilder)

	for line := range strings.SplitSeq(string(out), "\n") {
		line = strings.Trim(line, " \t\r\n'")
		if !strings.HasPrefix(line, "--") {
			continue
		}
		author, eventTime, ok := parseCommitHeader(line)
		if !ok {
			continue
		}

		repo.observe(eventTime)
		builder := authors[author]
		if builder == nil {
			builder = newSummaryBuilder()
			authors[author] = builder
		}
		builder.observe(eventTime)
	}

	summary := repo.finalize()
	summary.ByContributor = make(map[string]*schema.ActivitySummary, len(authors))
	for author, builder := range authors {
		summary.ByContributor[author] = builder.finalize()
	}
	summary.Contributors = len(authors)
	return summary
}

// parseCommitHeader extracts author and date from a commit header line.
func parseCommitHeader(line string) (string, time.Time, bool) {
	if len(line) < 5 { // --x|y|z minimum
		return "", time.Time{}, false
	}
	parts := strings.SplitN(line[2:], "|", 3) // commit|author|date
	if len(parts) != 3 {
		return "", time.Time{}, false
	}
	date, err := time.Parse(time.RFC3339, parts[2])
	if err != nil {
		return "", time.Time{}, false
	}
	return parts[1], date, true
}

// weekdayHour is the internal map key for the sparse (weekday, hour) matrix.
type weekdayHour struct {
	weekday time.Weekday
	hour    int
}

// summaryBuilder accumulates one pass of events before finalizing into the
// immutable ActivitySummary shape.
type summaryBuilder struct {
	hourly     schema.TimeBucketSeries
	halfHourly schema.TimeBucketSeries
	weekdays   schema.TimeBucketSeries

	firstMinute  map[string]int
	lastMinute   map[string]int
	weekdayHours map[weekdayHour]int
	activeHours  map[string]map[int]struct{}
	dailyTotals  map[string]int
	offsets      map[int]int

	firstEvent time.Time
	lastEvent  time.Time
	total      int
}

func newSummaryBuilder() *summaryBuilder {
	return &summaryBuilder{
		hourly:       schema.NewTimeBucketSeries(schema.Hourly24Domain),
		halfHourly:   schema.NewTimeBucketSeries(schema.HalfHour48Domain),
		weekdays:     schema.NewTimeBucketSeries(schema.Weekday7Domain),
		firstMinute:  make(map[string]int),
		lastMinute:   make(map[string]int),
		weekdayHours: make(map[weekdayHour]int),
		activeHours:  make(map[string]map[int]struct{}),
		dailyTotals:  make(map[string]int),
		offsets:      make(map[int]int),
	}
}

// observe folds one event time into every bucket family.
func (b *summaryBuilder) observe(t time.Time) {
	hour := t.Hour()
	minute := hour*60 + t.Minute()
	date := t.Format(schema.DateFormat)
	wd := t.Weekday()

	b.hourly.Observe(hour, 1)
	b.halfHourly.Observe(hour*2+t.Minute()/30, 1)
	b.weekdays.Observe(int(wd), 1)
	b.weekdayHours[weekdayHour{weekday: wd, hour: hour}]++
	b.dailyTotals[date]++

	if existing, ok := b.firstMinute[date]; !ok || minute < existing {
		b.firstMinute[date] = minute
	}
	if existing, ok := b.lastMinute[date]; !ok || minute > existing {
		b.lastMinute[date] = minute
	}

	hours := b.activeHours[date]
	if hours == nil {
		hours = make(map[int]struct{})
		b.activeHours[date] = hours
	}
	hours[hour] = struct{}{}

	_, offsetSeconds := t.Zone()
	b.offsets[offsetSeconds/60]++

	if b.firstEvent.IsZero() || t.Before(b.firstEvent) {
		b.firstEvent = t
	}
	if t.After(b.lastEvent) {
		b.lastEvent = t
	}
	b.total++
}

// finalize reduces the accumulator maps into the serializable summary. The
// per-day active hour sets collapse to their cardinality; only the count is
// ever consumed downstream.
func (b *summaryBuilder) finalize() *schema.ActivitySummary {
	summary := &schema.ActivitySummary{
		Hourly:      b.hourly,
		HalfHourly:  b.halfHourly,
		Weekdays:    b.weekdays,
		ActiveHours: make(map[string]int, len(b.activeHours)),
		DailyTotals: b.dailyTotals,
		FirstEvent:  b.firstEvent,
		LastEvent:   b.lastEvent,
		TotalEvents: b.total,
	}

	summary.DailyFirsts = extremesFromMap(b.firstMinute)
	summary.DailyLasts = extremesFromMap(b.lastMinute)

	for date, hours := range b.activeHours {
		summary.ActiveHours[date] = len(hours)
	}

	summary.WeekdayHours = make([]schema.DayHourCount, 0, len(b.weekdayHours))
	for key, count := range b.weekdayHours {
		summary.WeekdayHours = append(summary.WeekdayHours, schema.DayHourCount{
			Weekday: key.weekday,
			Hour:    key.hour,
			Count:   count,
		})
	}
	slices.SortFunc(summary.WeekdayHours, func(a, b schema.DayHourCount) int {
		if a.Weekday != b.Weekday {
			return int(a.Weekday) - int(b.Weekday)
		}
		return a.Hour - b.Hour
	})

	summary.Offsets = make([]schema.OffsetGroup, 0, len(b.offsets))
	for offset, count := range b.offsets {
		group := schema.OffsetGroup{OffsetMinutes: offset, Count: count}
		if b.total > 0 {
			group.Share = float64(count) / float64(b.total)
		}
		summary.Offsets = append(summary.Offsets, group)
	}
	slices.SortFunc(summary.Offsets, func(a, b schema.OffsetGroup) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return a.OffsetMinutes - b.OffsetMinutes
	})

	return summary
}

// extremesFromMap converts a date->minute map into a date-sorted slice.
func extremesFromMap(byDate map[string]int) []schema.DailyEventExtreme {
	extremes := make([]schema.DailyEventExtreme, 0, len(byDate))
	for date, minute := range byDate {
		extremes = append(extremes, schema.DailyEventExtreme{Date: date, Minute: minute})
	}
	slices.SortFunc(extremes, func(a, b schema.DailyEventExtreme) int {
		return strings.Compare(a.Date, b.Date)
	})
	return extremes
}
