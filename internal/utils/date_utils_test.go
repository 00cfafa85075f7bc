package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriodDefaults(t *testing.T) {
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)

	period := ResolvePeriod("", "", now)
	assert.Equal(t, "2025-03-01T12:00:00Z", period.StartDate)
	assert.Equal(t, "2025-03-31T12:00:00Z", period.EndDate)
}

func TestResolvePeriodKeepsExplicitDates(t *testing.T) {
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)

	period := ResolvePeriod("2025-01-01T00:00:00Z", "2025-01-31T23:59:59Z", now)
	assert.Equal(t, "2025-01-01T00:00:00Z", period.StartDate)
	assert.Equal(t, "2025-01-31T23:59:59Z", period.EndDate)
}

func TestGenerateDateRange(t *testing.T) {
	from := time.Date(2025, 2, 27, 10, 30, 0, 0, time.UTC)
	to := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)

	dates := GenerateDateRange(from, to)
	require.Len(t, dates, 4)
	assert.Equal(t, []string{"2025-02-27", "2025-02-28", "2025-03-01", "2025-03-02"}, dates)
}

func TestGenerateDateRangeInvalid(t *testing.T) {
	from := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, GenerateDateRange(from, to))
	assert.Empty(t, GenerateDateRange(time.Time{}, to))
}
