package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/workpulse/internal/contract"
	"github.com/huangsam/workpulse/schema"
)

// PrintTimezone outputs the cross-timezone analysis, dispatching on the configured format.
func PrintTimezone(tz schema.TimezoneAnalysis, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, tz)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTimezoneCSV(w, tz)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTimezoneText(w, tz, cfg, duration)
		}, "Wrote analysis")
	}
}

// writeTimezoneCSV writes the analysis as a single CSV row.
func writeTimezoneCSV(w io.Writer, tz schema.TimezoneAnalysis) error {
	header := []string{
		"cross_timezone",
		"diversity_ratio",
		"sleep_ratio",
		"dominant_offset_minutes",
		"dominant_share",
		"methods_agree",
		"confidence",
		"sample_count",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		rec := []string{
			strconv.FormatBool(tz.CrossTimezone),
			fmt.Sprintf("%.4f", tz.DiversityRatio),
			fmt.Sprintf("%.4f", tz.SleepRatio),
			strconv.Itoa(tz.DominantOffset),
			fmt.Sprintf("%.4f", tz.DominantShare),
			strconv.FormatBool(tz.MethodsAgree),
			strconv.Itoa(tz.Confidence),
			strconv.Itoa(tz.SampleCount),
		}
		return cw.Write(rec)
	})
}

// formatOffset renders a UTC offset in minutes as a +HH:MM label.
func formatOffset(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, minutes/60, minutes%60)
}

// writeTimezoneText writes the human-readable timezone summary.
func writeTimezoneText(w io.Writer, tz schema.TimezoneAnalysis, cfg *contract.Config, duration time.Duration) error {
	header := headerEmoji(cfg.UseEmojis, "🌍", "Cross-timezone collaboration")
	if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
		return err
	}

	verdict := "single timezone"
	if tz.CrossTimezone {
		verdict = "cross-timezone"
	}
	if _, err := fmt.Fprintf(w, "Verdict: %s (confidence %d%%, %d samples)\n",
		verdict, tz.Confidence, tz.SampleCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Offset diversity: %.1f%% outside %s",
		tz.DiversityRatio*100, formatOffset(tz.DominantOffset)); err != nil {
		return err
	}
	if tz.DiversityFlag {
		if _, err := fmt.Fprint(w, " [flagged]"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Quietest 5h window: %s-%s holds %.1f%% of events",
		contract.FormatClockHour(tz.SleepWindow.Start),
		contract.FormatClockHour(tz.SleepWindow.End),
		tz.SleepRatio*100); err != nil {
		return err
	}
	if tz.SleepFlag {
		if _, err := fmt.Fprint(w, " [flagged]"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if len(tz.TopGroups) > 0 {
		table := tablewriter.NewWriter(w)
		table.Header([]string{"Offset", "Events", "Share"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})
		var data [][]string
		for _, group := range tz.TopGroups {
			data = append(data, []string{
				formatOffset(group.OffsetMinutes),
				strconv.Itoa(group.Count),
				fmt.Sprintf("%.1f%%", group.Share*100),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Analysis completed in %v with %d workers. Cache backend: %s\n",
		duration, cfg.Workers, cfg.CacheBackend)
	return err
}
