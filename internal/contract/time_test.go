package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{name: "years", input: "2 years ago", expected: time.Date(2022, 6, 15, 12, 0, 0, 0, time.UTC)},
		{name: "single month", input: "1 month ago", expected: time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)},
		{name: "weeks", input: "3 weeks ago", expected: now.Add(-3 * 7 * 24 * time.Hour)},
		{name: "days", input: "10 days ago", expected: now.Add(-10 * 24 * time.Hour)},
		{name: "hours", input: "6 hours ago", expected: now.Add(-6 * time.Hour)},
		{name: "minutes", input: "45 minutes ago", expected: now.Add(-45 * time.Minute)},
		{name: "mixed case with padding", input: "  2 Days Ago ", expected: now.Add(-2 * 24 * time.Hour)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseRelativeTime(tt.input, now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, parsed)
		})
	}
}

func TestParseRelativeTimeInvalid(t *testing.T) {
	now := time.Now()
	for _, input := range []string{
		"",
		"yesterday",
		"2 fortnights ago",
		"two days ago",
		"2 days",
		"-3 days ago",
	} {
		_, err := ParseRelativeTime(input, now)
		assert.Error(t, err, "input=%q", input)
	}
}
