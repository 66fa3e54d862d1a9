package agg

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/workpulse/internal/contract"
	"github.com/huangsam/workpulse/schema"
)

// currentCacheVersion defines the version of the cache payload shape.
// Bump it whenever ActivitySummary changes incompatibly.
const currentCacheVersion = 1

// cacheStaleness bounds how long a cached aggregation stays usable.
const cacheStaleness = 7 * 24 * time.Hour

// CachedAggregateActivity wraps AggregateActivity with a persistent cache.
// A nil or store-less manager falls back to direct computation.
func CachedAggregateActivity(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.CacheManager) (*schema.ActivitySummary, error) {
	if mgr == nil {
		return AggregateActivity(ctx, cfg, client)
	}
	store := mgr.GetActivityStore()
	if store == nil {
		return AggregateActivity(ctx, cfg, client)
	}

	key := generateCacheKey(ctx, cfg, client)

	if result := checkCacheHit(store, key); result != nil {
		return result, nil
	}

	return computeAndStore(ctx, cfg, client, store, key)
}

// checkCacheHit attempts to retrieve and validate a cached result.
func checkCacheHit(store contract.CacheStore, key string) *schema.ActivitySummary {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= cacheStaleness {
			var result schema.ActivitySummary
			if err := json.Unmarshal(data, &result); err == nil {
				return &result // Cache hit
			}
		}
	}

	return nil // Cache miss (stale or version mismatch)
}

// computeAndStore computes the summary and stores it in cache. A failed
// store write is ignored; caching is best-effort.
func computeAndStore(ctx context.Context, cfg *contract.Config, client contract.GitClient, store contract.CacheStore, key string) (*schema.ActivitySummary, error) {
	result, err := AggregateActivity(ctx, cfg, client)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(result); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}

	return result, nil
}

// generateCacheKey creates a unique key based on analysis parameters.
func generateCacheKey(ctx context.Context, cfg *contract.Config, client contract.GitClient) string {
	// Use canonical helpers to keep time granularity consistent across runs
	startTime := cfg.GetAnalysisStartTime()
	endTime := cfg.GetAnalysisEndTime()

	// Include repo hash to invalidate cache when repository state changes
	repoHash, err := client.GetRepoHash(ctx, cfg.RepoPath)
	if err != nil {
		repoHash = ""
	}

	key := fmt.Sprintf("%s:%d:%d:%s",
		cfg.RepoPath,
		startTime.Unix(),
		endTime.Unix(),
		repoHash,
	)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}
