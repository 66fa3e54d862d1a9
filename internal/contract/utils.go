package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/huangsam/workpulse/schema"
)

// Color variables for console output.
var (
	ExtremeColor  = color.New(color.FgRed, color.Bold)     // extreme and severe tiers
	HeavyColor    = color.New(color.FgMagenta, color.Bold) // heavy tier
	ModerateColor = color.New(color.FgYellow)              // moderate and mild tiers
	CalmColor     = color.New(color.FgCyan)                // balanced and under-utilized tiers
)

// GetPlainTierLabel returns the plain text label for an intensity tier.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainTierLabel(tier schema.IntensityTier) string {
	return string(tier)
}

// GetColorTierLabel returns a colored tier label for console output (table).
func GetColorTierLabel(tier schema.IntensityTier) string {
	text := GetPlainTierLabel(tier)
	switch tier {
	case schema.ExtremeTier, schema.SevereTier:
		return ExtremeColor.Sprint(text)
	case schema.HeavyTier:
		return HeavyColor.Sprint(text)
	case schema.ModerateTier, schema.MildTier:
		return ModerateColor.Sprint(text)
	default: // balanced, under-utilized
		return CalmColor.Sprint(text)
	}
}

// GetColorCategoryLabel returns a colored project-category label for tables.
func GetColorCategoryLabel(category schema.ProjectCategory) string {
	switch category {
	case schema.OrganizationalProject:
		return HeavyColor.Sprint(string(category))
	case schema.CommunityProject:
		return CalmColor.Sprint(string(category))
	default:
		return ModerateColor.Sprint(string(category))
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".workpulse_cache.db"
	}
	return filepath.Join(homeDir, ".workpulse_cache.db")
}

// GetAnalysisDBFilePath returns the path to the SQLite DB file for analysis storage.
func GetAnalysisDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".workpulse_analysis.db"
	}
	return filepath.Join(homeDir, ".workpulse_analysis.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// FormatClockHour renders a fractional clock hour like 9.5 as "09:30".
func FormatClockHour(hour float64) string {
	h := int(hour)
	m := int((hour - float64(h)) * 60)
	if h >= 24 {
		h -= 24
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}
