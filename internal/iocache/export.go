package iocache

import (
	"errors"
	"fmt"

	"github.com/huangsam/workpulse/internal/parquet"
)

// ExecuteAnalysisExport performs the actual export of analysis data to Parquet files.
func ExecuteAnalysisExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the analysis store
	store := Manager.GetAnalysisStore()
	if store == nil {
		return errors.New("no analysis store configured")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get analysis status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no analysis data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total analysis runs: %d\n", status.TotalRuns)
	fmt.Printf("Total contributor records: %d\n", status.TableSizes[contributorScoresTable])

	// Retrieve all analysis runs
	analysisRuns, err := store.GetAllAnalysisRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve analysis runs: %w", err)
	}

	// Retrieve all contributor scores
	contributorScores, err := store.GetAllContributorScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve contributor scores: %w", err)
	}

	// Convert to Parquet format
	parquetAnalysisRuns := parquet.ConvertAnalysisRunRecords(analysisRuns)
	parquetContributorScores := parquet.ConvertContributorScoreRecords(contributorScores)

	// Write analysis runs to Parquet
	analysisRunsFile := outputFile + ".analysis_runs.parquet"
	if err := parquet.WriteAnalysisRunsParquet(parquetAnalysisRuns, analysisRunsFile); err != nil {
		return fmt.Errorf("failed to write analysis runs: %w", err)
	}
	fmt.Printf("Exported %d analysis runs to: %s\n", len(parquetAnalysisRuns), analysisRunsFile)

	// Write contributor scores to Parquet
	contributorScoresFile := outputFile + ".contributor_scores.parquet"
	if err := parquet.WriteContributorScoresParquet(parquetContributorScores, contributorScoresFile); err != nil {
		return fmt.Errorf("failed to write contributor scores: %w", err)
	}
	fmt.Printf("Exported %d contributor score records to: %s\n", len(parquetContributorScores), contributorScoresFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
