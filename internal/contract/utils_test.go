package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/workpulse/schema"
)

func TestParseBoolString(t *testing.T) {
	for _, input := range []string{"yes", "YES", "true", "True", "1"} {
		v, err := ParseBoolString(input)
		require.NoError(t, err, "input=%q", input)
		assert.True(t, v, "input=%q", input)
	}
	for _, input := range []string{"no", "NO", "false", "False", "0"} {
		v, err := ParseBoolString(input)
		require.NoError(t, err, "input=%q", input)
		assert.False(t, v, "input=%q", input)
	}
	for _, input := range []string{"", "maybe", "y", "on"} {
		_, err := ParseBoolString(input)
		assert.Error(t, err, "input=%q", input)
	}
}

func TestFormatClockHour(t *testing.T) {
	tests := []struct {
		hour     float64
		expected string
	}{
		{hour: 9, expected: "09:00"},
		{hour: 9.5, expected: "09:30"},
		{hour: 0, expected: "00:00"},
		{hour: 23.5, expected: "23:30"},
		{hour: 24, expected: "00:00"}, // midnight wraps
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatClockHour(tt.hour), "hour=%v", tt.hour)
	}
}

func TestGetPlainTierLabel(t *testing.T) {
	assert.Equal(t, string(schema.ExtremeTier), GetPlainTierLabel(schema.ExtremeTier))
	assert.Equal(t, string(schema.BalancedTier), GetPlainTierLabel(schema.BalancedTier))
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "out.csv")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, path, f.Name())
}

func TestDBFilePathsDiffer(t *testing.T) {
	assert.NotEqual(t, GetCacheDBFilePath(), GetAnalysisDBFilePath())
}
