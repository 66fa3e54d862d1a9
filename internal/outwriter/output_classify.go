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

// PrintClassification outputs the project-type verdict, dispatching on the configured format.
func PrintClassification(result schema.ClassificationResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeClassificationCSV(w, result)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeClassificationText(w, result, cfg, duration)
		}, "Wrote verdict")
	}
}

// writeClassificationCSV writes the verdict as a single CSV row.
func writeClassificationCSV(w io.Writer, result schema.ClassificationResult) error {
	header := []string{
		"category",
		"confidence",
		"regularity",
		"weekend_ratio",
		"moonlight_ratio",
		"contributors",
		"community_score",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		rec := []string{
			string(result.Category),
			strconv.Itoa(result.Confidence),
			strconv.Itoa(result.Regularity),
			fmt.Sprintf("%.4f", result.WeekendRatio),
			fmt.Sprintf("%.4f", result.MoonlightRatio),
			strconv.Itoa(result.Contributors),
			strconv.Itoa(result.CommunityScore),
		}
		return cw.Write(rec)
	})
}

// writeClassificationText writes the human-readable verdict with its reasoning trail.
func writeClassificationText(w io.Writer, result schema.ClassificationResult, cfg *contract.Config, duration time.Duration) error {
	header := headerEmoji(cfg.UseEmojis, "🏷️", "Project working style")
	if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
		return err
	}

	categoryLabel := string(result.Category)
	if cfg.UseColors {
		categoryLabel = contract.GetColorCategoryLabel(result.Category)
	}
	if _, err := fmt.Fprintf(w, "Category: %s (confidence %d%%)\n", categoryLabel, result.Confidence); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Regularity: %d/100, weekend share %.1f%%, evening share %.1f%%, %d contributors\n",
		result.Regularity, result.WeekendRatio*100, result.MoonlightRatio*100, result.Contributors); err != nil {
		return err
	}
	for _, reason := range result.Reasons {
		if _, err := fmt.Fprintf(w, "- %s\n", reason); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Analysis completed in %v with %d workers. Cache backend: %s\n",
		duration, cfg.Workers, cfg.CacheBackend)
	return err
}
