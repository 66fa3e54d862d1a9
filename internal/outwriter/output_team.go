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
	"github.com/huangsam/workpulse/internal/parquet"
	"github.com/huangsam/workpulse/schema"
)

// PrintTeam outputs the team roster and summary, dispatching on the configured format.
func PrintTeam(team schema.TeamAnalysis, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, team)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTeamCSV(w, team)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeTeamParquet(team, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTeamTable(w, team, cfg, duration)
		}, "Wrote roster")
	}
}

// baselineLoadLabel names the tier relative to the team baseline.
func baselineLoadLabel(tier schema.ContributorTier) string {
	switch tier {
	case schema.BelowBaselineTier:
		return "below"
	case schema.NearBaselineTier:
		return "within"
	case schema.AboveBaselineTier:
		return "above"
	default:
		return "n/a"
	}
}

// scheduleHours renders a contributor's detected hours, or dashes without one.
func scheduleHours(schedule *schema.WorkScheduleEstimate) (string, string) {
	if schedule == nil {
		return "-", "-"
	}
	return contract.FormatClockHour(schedule.StartHour), contract.FormatClockHour(schedule.EndHour)
}

// writeTeamCSV writes one row per contributor.
func writeTeamCSV(w io.Writer, team schema.TeamAnalysis) error {
	header := []string{
		"rank",
		"contributor",
		"events",
		"start_hour",
		"end_hour",
		"ratio",
		"index",
		"tier",
		"baseline_load",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, c := range team.Contributors {
			start, end := scheduleHours(c.Schedule)
			rec := []string{
				strconv.Itoa(i + 1),
				c.Name,
				strconv.Itoa(c.Events),
				start,
				end,
				strconv.Itoa(c.Intensity.Ratio),
				strconv.Itoa(c.Intensity.Index),
				contract.GetPlainTierLabel(c.Intensity.Tier),
				baselineLoadLabel(c.Tier),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeTeamParquet exports the roster with the columnar writer.
func writeTeamParquet(team schema.TeamAnalysis, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}

	now := time.Now()
	scores := make([]parquet.ContributorScore, len(team.Contributors))
	for i, c := range team.Contributors {
		score := parquet.ContributorScore{
			Contributor:  c.Name,
			AnalysisTime: now,
			Events:       int32(c.Events),
			Ratio:        int32(c.Intensity.Ratio),
			Index:        int32(c.Intensity.Index),
			Tier:         contract.GetPlainTierLabel(c.Intensity.Tier),
		}
		if c.Schedule != nil {
			score.StartHour = &c.Schedule.StartHour
			score.EndHour = &c.Schedule.EndHour
		}
		scores[i] = score
	}

	if err := parquet.WriteContributorScoresParquet(scores, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Printf("Exported %d contributor records to: %s\n", len(scores), cfg.OutputFile)
	return nil
}

// writeTeamTable renders the roster table plus the team summary footer.
func writeTeamTable(w io.Writer, team schema.TeamAnalysis, cfg *contract.Config, duration time.Duration) error {
	header := headerEmoji(cfg.UseEmojis, "👥", "Team intensity roster")
	if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
		return err
	}

	nameWidth := maxNameWidth(getTerminalWidth(cfg.Width))
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Contributor", "Events", "Start", "End", "Index", "Tier", "Load"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, c := range team.Contributors {
		start, end := scheduleHours(c.Schedule)
		tierLabel := contract.GetPlainTierLabel(c.Intensity.Tier)
		if cfg.UseColors {
			tierLabel = contract.GetColorTierLabel(c.Intensity.Tier)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			truncateName(c.Name, nameWidth),
			strconv.Itoa(c.Events),
			start,
			end,
			strconv.Itoa(c.Intensity.Index),
			tierLabel,
			baselineLoadLabel(c.Tier),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmtFloat := createFloatFormatter(cfg.Precision)
	if _, err := fmt.Fprintf(w, "Baseline end hour: %s. Health: %s\n",
		contract.FormatClockHour(team.BaselineEndHour), team.Health); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Index mean %s, median %s, P25 %s, P75 %s, P90 %s\n",
		fmtFloat(team.MeanIndex), fmtFloat(team.MedianIndex),
		fmtFloat(team.P25Index), fmtFloat(team.P75Index), fmtFloat(team.P90Index)); err != nil {
		return err
	}
	for _, warning := range team.Warnings {
		if _, err := fmt.Fprintf(w, "Warning: %s\n", warning); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Analysis completed in %v with %d workers. Cache backend: %s\n",
		duration, cfg.Workers, cfg.CacheBackend)
	return err
}
