// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/workpulse/schema"
)

// GitClient defines the necessary operations for commit-timing analysis.
// This allows the collector to be tested without needing a real git executable.
type GitClient interface {
	// Run executes a git command and returns the combined output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetRepoHash returns the current HEAD commit hash of the repository.
	GetRepoHash(ctx context.Context, repoPath string) (string, error)

	// GetRepoRoot returns the absolute path to the root of the Git repository
	// containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)

	// GetActivityLog returns the raw commit log output needed for the
	// repository-wide timing aggregation. Author dates keep their original
	// UTC offsets.
	GetActivityLog(ctx context.Context, repoPath string, startTime, endTime time.Time) ([]byte, error)
}

// WorkdayOracle classifies calendar days as workdays or rest days.
// Implementations may consult regional holiday data; callers must batch
// lookups by unique date and tolerate failure by falling back to the
// fixed Mon-Fri rule.
type WorkdayOracle interface {
	// Classify reports, for each date key (2006-01-02), whether it is a workday.
	Classify(ctx context.Context, dates []string) (map[string]bool, error)
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetActivityStore() CacheStore
	GetAnalysisStore() AnalysisStore
}

// CacheStore defines the interface for cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// AnalysisStore defines the interface for tracking analysis runs and storing
// per-contributor scores.
type AnalysisStore interface {
	// BeginAnalysis creates a new analysis run and returns its unique ID
	BeginAnalysis(startTime time.Time, configParams map[string]any) (int64, error)

	// EndAnalysis updates the analysis run with completion data
	EndAnalysis(analysisID int64, endTime time.Time, totalRecords int) error

	// RecordContributorScore stores one contributor's schedule and index
	RecordContributorScore(analysisID int64, record schema.ContributorScoreRecord) error

	// GetStatus returns status information about the analysis store
	GetStatus() (schema.AnalysisStatus, error)

	// GetAllAnalysisRuns retrieves every recorded run, oldest first
	GetAllAnalysisRuns() ([]schema.AnalysisRunRecord, error)

	// GetAllContributorScores retrieves every contributor score row
	GetAllContributorScores() ([]schema.ContributorScoreRecord, error)

	// Close closes the underlying connection
	Close() error
}
