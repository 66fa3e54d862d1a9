package contract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedCalendarClassify(t *testing.T) {
	classified, err := FixedCalendar{}.Classify(context.Background(), []string{
		"2024-03-01", // Friday
		"2024-03-02", // Saturday
		"2024-03-03", // Sunday
		"2024-03-04", // Monday
	})

	require.NoError(t, err)
	assert.True(t, classified["2024-03-01"])
	assert.False(t, classified["2024-03-02"])
	assert.False(t, classified["2024-03-03"])
	assert.True(t, classified["2024-03-04"])
}

func TestFixedCalendarClassifyInvalidDate(t *testing.T) {
	_, err := FixedCalendar{}.Classify(context.Background(), []string{"March 1st"})
	assert.Error(t, err)
}

func TestNewWorkdayOracleSelection(t *testing.T) {
	oracle := NewWorkdayOracle(&Config{})
	assert.IsType(t, FixedCalendar{}, oracle)

	oracle = NewWorkdayOracle(&Config{HolidayRegion: "US"})
	assert.IsType(t, &HTTPOracle{}, oracle)
}
