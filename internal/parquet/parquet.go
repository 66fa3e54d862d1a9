// Package parquet provides data structures and functions for exporting
// analysis data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/huangsam/workpulse/schema"
)

// AnalysisRun represents a single analysis run with metadata.
// This struct maps to the workpulse_analysis_runs database table.
type AnalysisRun struct {
	// AnalysisID is the unique identifier for this analysis run
	AnalysisID int64 `parquet:"analysis_id,snappy"`

	// StartTime is when the analysis began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the analysis completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the analysis run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalRecords is the number of contributor records stored in this run
	TotalRecords int32 `parquet:"total_records,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// ContributorScore represents one contributor's schedule and intensity result.
// This struct maps to the workpulse_contributor_scores database table.
type ContributorScore struct {
	// AnalysisID references the parent analysis run
	AnalysisID int64 `parquet:"analysis_id,snappy"`

	// Contributor is the commit author name
	Contributor string `parquet:"contributor,snappy"`

	// AnalysisTime is when this contributor was scored (stored as TIMESTAMP with nanosecond precision)
	AnalysisTime time.Time `parquet:"analysis_time,snappy"`

	// Events is the number of commits attributed to this contributor
	Events int32 `parquet:"total_events,snappy"`

	// StartHour is the detected workday start as a fractional clock hour (nullable)
	StartHour *float64 `parquet:"start_hour,optional,snappy"`

	// EndHour is the detected workday end as a fractional clock hour (nullable)
	EndHour *float64 `parquet:"end_hour,optional,snappy"`

	// Ratio is the overtime ratio as a percentage of normal-hours activity
	Ratio int32 `parquet:"overtime_ratio,snappy"`

	// Index is the work intensity index derived from the ratio
	Index int32 `parquet:"intensity_index,snappy"`

	// Tier is the intensity tier label for the index
	Tier string `parquet:"intensity_tier,snappy"`
}

// WriteAnalysisRunsParquet writes a slice of AnalysisRun structs to a Parquet file.
func WriteAnalysisRunsParquet(data []AnalysisRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the AnalysisRun struct tags
	writer := parquet.NewGenericWriter[AnalysisRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteContributorScoresParquet writes a slice of ContributorScore structs to a Parquet file.
func WriteContributorScoresParquet(data []ContributorScore, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ContributorScore struct tags
	writer := parquet.NewGenericWriter[ContributorScore](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchAnalysisRuns generates sample AnalysisRun data for demonstration.
func MockFetchAnalysisRuns() []AnalysisRun {
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	end1 := base.Add(42 * time.Second)
	duration1 := int32(end1.Sub(base).Milliseconds())
	params1 := `{"workers":8,"limit":25}`

	end2 := base.Add(24*time.Hour + 18*time.Second)
	duration2 := int32(end2.Sub(base.Add(24 * time.Hour)).Milliseconds())

	return []AnalysisRun{
		{
			AnalysisID:    1,
			StartTime:     base,
			EndTime:       &end1,
			RunDurationMs: &duration1,
			TotalRecords:  42,
			ConfigParams:  &params1,
		},
		{
			AnalysisID:    2,
			StartTime:     base.Add(24 * time.Hour),
			EndTime:       &end2,
			RunDurationMs: &duration2,
			TotalRecords:  38,
		},
		{
			// A run that never finished has only the start marker.
			AnalysisID: 3,
			StartTime:  base.Add(48 * time.Hour),
		},
	}
}

// MockFetchContributorScores generates sample ContributorScore data for demonstration.
func MockFetchContributorScores() []ContributorScore {
	now := time.Date(2024, 6, 1, 9, 0, 42, 0, time.UTC)

	aliceStart, aliceEnd := 9.0, 19.5
	bobStart, bobEnd := 8.5, 17.0

	return []ContributorScore{
		{
			AnalysisID:   1,
			Contributor:  "alice",
			AnalysisTime: now,
			Events:       412,
			StartHour:    &aliceStart,
			EndHour:      &aliceEnd,
			Ratio:        24,
			Index:        72,
			Tier:         "severe",
		},
		{
			AnalysisID:   1,
			Contributor:  "bob",
			AnalysisTime: now,
			Events:       187,
			StartHour:    &bobStart,
			EndHour:      &bobEnd,
			Ratio:        4,
			Index:        12,
			Tier:         "balanced",
		},
		{
			// Too few commits for schedule detection, hours stay nil.
			AnalysisID:   1,
			Contributor:  "carol",
			AnalysisTime: now,
			Events:       3,
			Ratio:        0,
			Index:        0,
			Tier:         "under-utilized",
		},
	}
}

// ConvertAnalysisRunRecords converts schema.AnalysisRunRecord to AnalysisRun for Parquet export.
func ConvertAnalysisRunRecords(records []schema.AnalysisRunRecord) []AnalysisRun {
	result := make([]AnalysisRun, len(records))
	for i, record := range records {
		result[i] = AnalysisRun{
			AnalysisID:    record.AnalysisID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			TotalRecords:  record.TotalRecords,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertContributorScoreRecords converts schema.ContributorScoreRecord to ContributorScore for Parquet export.
func ConvertContributorScoreRecords(records []schema.ContributorScoreRecord) []ContributorScore {
	result := make([]ContributorScore, len(records))
	for i, record := range records {
		result[i] = ContributorScore{
			AnalysisID:   record.AnalysisID,
			Contributor:  record.Contributor,
			AnalysisTime: record.AnalysisTime,
			Events:       record.Events,
			StartHour:    record.StartHour,
			EndHour:      record.EndHour,
			Ratio:        record.Ratio,
			Index:        record.Index,
			Tier:         record.Tier,
		}
	}
	return result
}
