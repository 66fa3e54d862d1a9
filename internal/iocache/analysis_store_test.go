package iocache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/workpulse/schema"
)

func newSQLiteAnalysisStore(t *testing.T) *AnalysisStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "analysis.db")
	store, err := NewAnalysisStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*AnalysisStoreImpl)
}

func TestAnalysisStoreRunLifecycle(t *testing.T) {
	store := newSQLiteAnalysisStore(t)
	start := time.Now().Add(-2 * time.Second).UTC()

	id, err := store.BeginAnalysis(start, map[string]any{"workers": 4})
	require.NoError(t, err)
	assert.Positive(t, id)

	require.NoError(t, store.EndAnalysis(id, time.Now().UTC(), 3))

	runs, err := store.GetAllAnalysisRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].AnalysisID)
	assert.NotNil(t, runs[0].EndTime)
	assert.Equal(t, int32(3), runs[0].TotalRecords)
	require.NotNil(t, runs[0].RunDurationMs)
	assert.GreaterOrEqual(t, *runs[0].RunDurationMs, int32(0))
	require.NotNil(t, runs[0].ConfigParams)
	assert.Contains(t, *runs[0].ConfigParams, "workers")
}

func TestAnalysisStoreContributorScores(t *testing.T) {
	store := newSQLiteAnalysisStore(t)

	id, err := store.BeginAnalysis(time.Now().UTC(), nil)
	require.NoError(t, err)

	startHour, endHour := 9.0, 18.5
	record := schema.ContributorScoreRecord{
		Contributor:  "alice",
		AnalysisTime: time.Now().UTC(),
		Events:       120,
		StartHour:    &startHour,
		EndHour:      &endHour,
		Ratio:        12,
		Index:        36,
		Tier:         string(schema.HeavyTier),
	}
	require.NoError(t, store.RecordContributorScore(id, record))

	// Contributors without a detected schedule persist nil hours.
	require.NoError(t, store.RecordContributorScore(id, schema.ContributorScoreRecord{
		Contributor:  "bob",
		AnalysisTime: time.Now().UTC(),
		Events:       2,
		Tier:         string(schema.UnderUtilizedTier),
	}))

	scores, err := store.GetAllContributorScores()
	require.NoError(t, err)
	require.Len(t, scores, 2)

	assert.Equal(t, "alice", scores[0].Contributor)
	require.NotNil(t, scores[0].StartHour)
	assert.Equal(t, 9.0, *scores[0].StartHour)
	assert.Equal(t, 18.5, *scores[0].EndHour)
	assert.Equal(t, int32(36), scores[0].Index)

	assert.Equal(t, "bob", scores[1].Contributor)
	assert.Nil(t, scores[1].StartHour)
	assert.Nil(t, scores[1].EndHour)
}

func TestAnalysisStoreGetStatus(t *testing.T) {
	store := newSQLiteAnalysisStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalRuns)

	id, err := store.BeginAnalysis(time.Now().UTC(), nil)
	require.NoError(t, err)
	require.NoError(t, store.EndAnalysis(id, time.Now().UTC(), 5))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalRuns)
	assert.Equal(t, id, status.LastRunID)
	assert.Equal(t, 5, status.TotalRecords)
	assert.Contains(t, status.TableSizes, analysisRunsTable)
	assert.Contains(t, status.TableSizes, contributorScoresTable)
}

func TestAnalysisStoreNoneBackendIsNoop(t *testing.T) {
	store, err := NewAnalysisStore(schema.NoneBackend, "")
	require.NoError(t, err)

	id, err := store.BeginAnalysis(time.Now(), nil)
	require.NoError(t, err)
	assert.Zero(t, id)

	assert.NoError(t, store.EndAnalysis(id, time.Now(), 0))
	assert.NoError(t, store.RecordContributorScore(id, schema.ContributorScoreRecord{}))

	runs, err := store.GetAllAnalysisRuns()
	require.NoError(t, err)
	assert.Nil(t, runs)
	assert.NoError(t, store.Close())
}
