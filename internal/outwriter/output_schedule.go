package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/workpulse/internal/contract"
	"github.com/huangsam/workpulse/schema"
)

// PrintSchedule outputs the schedule estimate, dispatching on the configured format.
func PrintSchedule(est schema.WorkScheduleEstimate, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, est)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScheduleCSV(w, est)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScheduleText(w, est, cfg, duration)
		}, "Wrote schedule")
	}
}

// writeScheduleCSV writes the schedule estimate as a single CSV row.
func writeScheduleCSV(w io.Writer, est schema.WorkScheduleEstimate) error {
	header := []string{
		"start_hour",
		"end_hour",
		"start_range_lo",
		"start_range_hi",
		"end_range_lo",
		"end_range_hi",
		"method",
		"confidence",
		"sample_count",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		rec := []string{
			contract.FormatClockHour(est.StartHour),
			contract.FormatClockHour(est.EndHour),
			contract.FormatClockHour(est.StartRange.Start),
			contract.FormatClockHour(est.StartRange.End),
			contract.FormatClockHour(est.EndRange.Start),
			contract.FormatClockHour(est.EndRange.End),
			string(est.Method),
			strconv.Itoa(est.Confidence),
			strconv.Itoa(est.SampleCount),
		}
		return cw.Write(rec)
	})
}

// writeScheduleText writes the human-readable schedule summary.
func writeScheduleText(w io.Writer, est schema.WorkScheduleEstimate, cfg *contract.Config, duration time.Duration) error {
	header := headerEmoji(cfg.UseEmojis, "🕘", "Estimated work schedule")
	if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Start: %s (likely %s-%s)\n",
		contract.FormatClockHour(est.StartHour),
		contract.FormatClockHour(est.StartRange.Start),
		contract.FormatClockHour(est.StartRange.End)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "End:   %s (likely %s-%s)\n",
		contract.FormatClockHour(est.EndHour),
		contract.FormatClockHour(est.EndRange.Start),
		contract.FormatClockHour(est.EndRange.End)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Method: %s, confidence %d%% from %d samples\n",
		est.Method, est.Confidence, est.SampleCount); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Analysis completed in %v with %d workers. Cache backend: %s\n",
		duration, cfg.Workers, cfg.CacheBackend)
	return err
}
