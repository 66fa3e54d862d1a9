package iocache

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/workpulse/schema"
)

func newSQLiteCacheStore(t *testing.T) *CacheStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore("test_cache", schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*CacheStoreImpl)
}

func TestCacheStoreRoundTrip(t *testing.T) {
	store := newSQLiteCacheStore(t)
	now := time.Now().Unix()

	require.NoError(t, store.Set("key1", []byte("payload"), 1, now))

	value, version, ts, err := store.Get("key1")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), value)
	assert.Equal(t, 1, version)
	assert.Equal(t, now, ts)
}

func TestCacheStoreOverwrite(t *testing.T) {
	store := newSQLiteCacheStore(t)

	require.NoError(t, store.Set("key1", []byte("old"), 1, 100))
	require.NoError(t, store.Set("key1", []byte("new"), 2, 200))

	value, version, ts, err := store.Get("key1")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
	assert.Equal(t, 2, version)
	assert.Equal(t, int64(200), ts)
}

func TestCacheStoreMiss(t *testing.T) {
	store := newSQLiteCacheStore(t)

	_, _, _, err := store.Get("absent")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestCacheStoreNoneBackendIsNoop(t *testing.T) {
	store, err := NewCacheStore("test_cache", schema.NoneBackend, "")
	require.NoError(t, err)

	assert.NoError(t, store.Set("key1", []byte("payload"), 1, 100))
	_, _, _, err = store.Get("key1")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.NoError(t, store.Close())
}

func TestCacheStoreRejectsBadTableName(t *testing.T) {
	_, err := NewCacheStore("bad name;", schema.SQLiteBackend, filepath.Join(t.TempDir(), "cache.db"))
	assert.Error(t, err)
}

func TestCacheStoreGetStatus(t *testing.T) {
	store := newSQLiteCacheStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalEntries)

	require.NoError(t, store.Set("a", []byte("x"), 1, 100))
	require.NoError(t, store.Set("b", []byte("y"), 1, 300))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalEntries)
	assert.Equal(t, time.Unix(100, 0), status.OldestEntryTime)
	assert.Equal(t, time.Unix(300, 0), status.LastEntryTime)
	assert.Positive(t, status.TableSizeBytes)
}

func TestClearCacheSQLiteRemovesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore("test_cache", schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())
	require.FileExists(t, dbPath)

	require.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))
	_, err = os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-missing file is fine.
	assert.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))
}

func TestClearCacheSQLiteRequiresPath(t *testing.T) {
	assert.Error(t, ClearCache(schema.SQLiteBackend, "", ""))
}
