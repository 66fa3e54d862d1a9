package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/workpulse/schema"
)

func sampleAnalysisRuns() []AnalysisRun {
	endTime := time.Date(2024, 6, 1, 12, 5, 0, 0, time.UTC)
	durationMs := int32(4200)
	configParams := `{"workers":4}`
	return []AnalysisRun{
		{
			AnalysisID:    1,
			StartTime:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			EndTime:       &endTime,
			RunDurationMs: &durationMs,
			TotalRecords:  12,
			ConfigParams:  &configParams,
		},
		{
			// An unfinished run has nothing beyond the start marker.
			AnalysisID: 2,
			StartTime:  time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC),
		},
	}
}

func sampleContributorScores() []ContributorScore {
	startHour, endHour := 9.0, 18.5
	return []ContributorScore{
		{
			AnalysisID:   1,
			Contributor:  "alice",
			AnalysisTime: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			Events:       140,
			StartHour:    &startHour,
			EndHour:      &endHour,
			Ratio:        12,
			Index:        36,
			Tier:         "heavy",
		},
		{
			// No detected schedule, nullable hours stay nil.
			AnalysisID:   1,
			Contributor:  "bob",
			AnalysisTime: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			Events:       3,
			Ratio:        0,
			Index:        0,
			Tier:         "under-utilized",
		},
	}
}

func TestAnalysisRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(AnalysisRun))
	require.NotNil(t, schema)

	// Check that all expected columns exist
	expectedColumns := []string{
		"analysis_id",
		"start_time",
		"end_time",
		"run_duration_ms",
		"total_records",
		"config_params",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestContributorScoreStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(ContributorScore))
	require.NotNil(t, schema)

	// Check that all expected columns exist
	expectedColumns := []string{
		"analysis_id",
		"contributor",
		"analysis_time",
		"total_events",
		"start_hour",
		"end_hour",
		"overtime_ratio",
		"intensity_index",
		"intensity_tier",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteAnalysisRunsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "analysis_runs.parquet")

	data := sampleAnalysisRuns()
	err := WriteAnalysisRunsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	// Verify file was created
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[AnalysisRun](file)
	defer func() { _ = reader.Close() }()

	readData := make([]AnalysisRun, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].AnalysisID, readData[i].AnalysisID, "AnalysisID should match")
		assert.Equal(t, data[i].TotalRecords, readData[i].TotalRecords, "TotalRecords should match")

		// Check nullable fields
		if data[i].EndTime == nil {
			assert.Nil(t, readData[i].EndTime, "EndTime should be nil")
		} else {
			require.NotNil(t, readData[i].EndTime, "EndTime should not be nil")
			assert.WithinDuration(t, *data[i].EndTime, *readData[i].EndTime, time.Nanosecond, "EndTime should match within nanosecond precision")
		}

		if data[i].ConfigParams == nil {
			assert.Nil(t, readData[i].ConfigParams, "ConfigParams should be nil")
		} else {
			require.NotNil(t, readData[i].ConfigParams, "ConfigParams should not be nil")
			assert.Equal(t, *data[i].ConfigParams, *readData[i].ConfigParams, "ConfigParams should match")
		}
	}
}

func TestWriteContributorScoresParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "contributor_scores.parquet")

	data := sampleContributorScores()
	err := WriteContributorScoresParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[ContributorScore](file)
	defer func() { _ = reader.Close() }()

	readData := make([]ContributorScore, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].Contributor, readData[i].Contributor, "Contributor should match")
		assert.Equal(t, data[i].Events, readData[i].Events, "Events should match")
		assert.Equal(t, data[i].Ratio, readData[i].Ratio, "Ratio should match")
		assert.Equal(t, data[i].Index, readData[i].Index, "Index should match")
		assert.Equal(t, data[i].Tier, readData[i].Tier, "Tier should match")

		// Check nullable schedule hours
		if data[i].StartHour == nil {
			assert.Nil(t, readData[i].StartHour, "StartHour should be nil")
			assert.Nil(t, readData[i].EndHour, "EndHour should be nil")
		} else {
			require.NotNil(t, readData[i].StartHour, "StartHour should not be nil")
			assert.InDelta(t, *data[i].StartHour, *readData[i].StartHour, 0.001, "StartHour should match")
			assert.InDelta(t, *data[i].EndHour, *readData[i].EndHour, 0.001, "EndHour should match")
		}
	}
}

func TestWriteContributorScoresParquet_EmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_scores.parquet")

	err := WriteContributorScoresParquet([]ContributorScore{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteAnalysisRunsParquet_InvalidPath(t *testing.T) {
	err := WriteAnalysisRunsParquet(sampleAnalysisRuns(), filepath.Join(t.TempDir(), "missing", "out.parquet"))
	assert.Error(t, err, "Writing to a nonexistent directory should fail")
}

func TestConvertAnalysisRunRecords(t *testing.T) {
	durationMs := int32(1200)
	records := []schema.AnalysisRunRecord{
		{
			AnalysisID:    7,
			StartTime:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			RunDurationMs: &durationMs,
			TotalRecords:  5,
		},
	}

	converted := ConvertAnalysisRunRecords(records)

	require.Len(t, converted, 1)
	assert.Equal(t, int64(7), converted[0].AnalysisID)
	assert.Equal(t, int32(5), converted[0].TotalRecords)
	assert.Equal(t, &durationMs, converted[0].RunDurationMs)
	assert.Nil(t, converted[0].EndTime)
}

func TestConvertContributorScoreRecords(t *testing.T) {
	startHour := 9.5
	records := []schema.ContributorScoreRecord{
		{
			AnalysisID:  7,
			Contributor: "alice",
			Events:      42,
			StartHour:   &startHour,
			Ratio:       10,
			Index:       30,
			Tier:        "moderate",
		},
	}

	converted := ConvertContributorScoreRecords(records)

	require.Len(t, converted, 1)
	assert.Equal(t, "alice", converted[0].Contributor)
	assert.Equal(t, int32(42), converted[0].Events)
	assert.Equal(t, &startHour, converted[0].StartHour)
	assert.Nil(t, converted[0].EndHour)
}
