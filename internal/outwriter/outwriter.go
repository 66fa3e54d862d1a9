// Package outwriter has output and writer logic.
package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/huangsam/workpulse/internal/contract"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFloatFormatter creates the formatter closure used across output types.
func createFloatFormatter(precision int) func(float64) string {
	return func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
}

// getTerminalWidth resolves the effective terminal width, honoring an
// absolute override from flag/env before falling back to detection.
func getTerminalWidth(override int) int {
	if override > 0 {
		return override
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Conservative default for narrow terminals and CI
		return 80
	}
	return detectedWidth
}

// truncateName shortens long contributor names for table output.
func truncateName(name string, maxWidth int) string {
	if maxWidth < 4 || len(name) <= maxWidth {
		return name
	}
	return name[:maxWidth-3] + "..."
}

// maxNameWidth computes the contributor column budget from the terminal width.
// The remaining columns (rank, events, hours, index, tier) are fixed-width.
func maxNameWidth(termWidth int) int {
	available := termWidth - 60
	if available < 15 {
		return 15
	}
	if available > 40 {
		return 40
	}
	return available
}

// headerEmoji prefixes a header with an emoji when emojis are enabled.
func headerEmoji(enabled bool, emoji, text string) string {
	if enabled {
		return emoji + " " + text
	}
	return text
}
