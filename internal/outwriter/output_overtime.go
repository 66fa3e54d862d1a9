package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/workpulse/internal/contract"
	"github.com/huangsam/workpulse/schema"
)

// PrintOvertime outputs the full overtime report, dispatching on the configured format.
func PrintOvertime(report schema.OvertimeReport, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOvertimeCSV(w, report)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOvertimeText(w, report, cfg, duration)
		}, "Wrote report")
	}
}

// writeOvertimeCSV flattens the report into a single CSV row.
func writeOvertimeCSV(w io.Writer, report schema.OvertimeReport) error {
	header := []string{
		"start_hour",
		"end_hour",
		"method",
		"ratio",
		"index",
		"tier",
		"normal_count",
		"overtime_count",
		"weekend_real_days",
		"weekend_quick_days",
		"midnight_days",
		"midnight_day_rate",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		rec := []string{
			contract.FormatClockHour(report.Schedule.StartHour),
			contract.FormatClockHour(report.Schedule.EndHour),
			string(report.Schedule.Method),
			strconv.Itoa(report.Intensity.Ratio),
			strconv.Itoa(report.Intensity.Index),
			contract.GetPlainTierLabel(report.Intensity.Tier),
			strconv.Itoa(report.Intensity.NormalCount),
			strconv.Itoa(report.Intensity.OvertimeCount),
			strconv.Itoa(report.Weekend.RealDays()),
			strconv.Itoa(report.Weekend.QuickDays()),
			strconv.Itoa(report.LateNight.MidnightDays),
			fmt.Sprintf("%.2f", report.LateNight.MidnightDayRate),
		}
		return cw.Write(rec)
	})
}

// writeOvertimeText writes the multi-section human-readable report.
func writeOvertimeText(w io.Writer, report schema.OvertimeReport, cfg *contract.Config, duration time.Duration) error {
	if err := writeIntensitySection(w, report, cfg); err != nil {
		return err
	}
	if err := writeWeekdaySection(w, report.Weekday, cfg); err != nil {
		return err
	}
	if err := writeWeekendSection(w, report.Weekend, cfg); err != nil {
		return err
	}
	if err := writeLateNightSection(w, report.LateNight, cfg); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Analysis completed in %v with %d workers. Cache backend: %s\n",
		duration, cfg.Workers, cfg.CacheBackend)
	return err
}

// writeIntensitySection covers the schedule and the headline index.
func writeIntensitySection(w io.Writer, report schema.OvertimeReport, cfg *contract.Config) error {
	header := headerEmoji(cfg.UseEmojis, "🔥", "Work intensity")
	if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Schedule: %s-%s (%s, confidence %d%%)\n",
		contract.FormatClockHour(report.Schedule.StartHour),
		contract.FormatClockHour(report.Schedule.EndHour),
		report.Schedule.Method,
		report.Schedule.Confidence); err != nil {
		return err
	}

	tierLabel := contract.GetPlainTierLabel(report.Intensity.Tier)
	if cfg.UseColors {
		tierLabel = contract.GetColorTierLabel(report.Intensity.Tier)
	}
	if _, err := fmt.Fprintf(w, "Index: %d (ratio %d%%, tier %s)\n",
		report.Intensity.Index, report.Intensity.Ratio, tierLabel); err != nil {
		return err
	}
	if report.Intensity.UnderSaturated {
		if _, err := fmt.Fprintln(w, "Activity covers fewer hour buckets than a standard shift; the index reflects under-utilization."); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Events: %d in normal hours, %d outside\n\n",
		report.Intensity.NormalCount, report.Intensity.OvertimeCount)
	return err
}

// writeWeekdaySection renders the after-hours weekday table.
func writeWeekdaySection(w io.Writer, weekday schema.WeekdayOvertime, cfg *contract.Config) error {
	header := headerEmoji(cfg.UseEmojis, "📅", "After-hours events by weekday")
	if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Weekday", "Events", "Hot"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		hot := ""
		if slices.Contains(weekday.Flagged, wd) {
			hot = "*"
		}
		data = append(data, []string{
			wd.String(),
			strconv.Itoa(weekday.Totals[wd]),
			hot,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Peak: %s with %d events\n\n", weekday.Peak, weekday.PeakCount)
	return err
}

// writeWeekendSection summarizes non-workday activity.
func writeWeekendSection(w io.Writer, weekend schema.WeekendOvertime, cfg *contract.Config) error {
	header := headerEmoji(cfg.UseEmojis, "🛌", "Weekend and holiday work")
	if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Saturday: %d real, %d quick-fix\n", weekend.SaturdayReal, weekend.SaturdayQuick); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Sunday:   %d real, %d quick-fix\n", weekend.SundayReal, weekend.SundayQuick); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Holiday:  %d real, %d quick-fix\n", weekend.HolidayReal, weekend.HolidayQuick); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total: %d real-overtime days, %d quick-fix days\n\n",
		weekend.RealDays(), weekend.QuickDays())
	return err
}

// writeLateNightSection summarizes the latest-event bands.
func writeLateNightSection(w io.Writer, late schema.LateNightProfile, cfg *contract.Config) error {
	header := headerEmoji(cfg.UseEmojis, "🌙", "Late-night pattern")
	if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
		return err
	}

	bands := []struct {
		name  string
		stats schema.NightBandStats
	}{
		{"Evening (to 21:00)", late.Evening},
		{"Late (21:00-23:00)", late.Late},
		{"Midnight (23:00-24:00)", late.Midnight},
		{"Dawn (00:00-06:00)", late.Dawn},
	}
	for _, band := range bands {
		if _, err := fmt.Fprintf(w, "%-24s %d days (%.1f/week, %.1f/month)\n",
			band.name, band.stats.Days, band.stats.WeeklyAvg, band.stats.MonthlyAvg); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Past-midnight days: %d of %d workdays (%.0f%%)\n\n",
		late.MidnightDays, late.Workdays, late.MidnightDayRate*100)
	return err
}
