package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamtrack-hq/attendance-backend-go/internal/domain/report"
)

var fixedNow = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func TestResolve_ExplicitDate(t *testing.T) {
	date := time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC)
	r, err := Resolve(report.ExplicitDate(date), fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "2025-01-28T00:00:00Z", r.Start.Format(time.RFC3339))
	assert.Equal(t, "2025-01-28", r.End.Format("2006-01-02"))
	assert.Equal(t, 23, r.End.Hour())
}

func TestResolve_Lookback7Days(t *testing.T) {
	r, err := Resolve(report.LastNDays(7), fixedNow)
	require.NoError(t, err)

	// 7 calendar days inclusive of today: Mar 9 .. Mar 15.
	assert.Equal(t, "2025-03-09", r.Start.Format("2006-01-02"))
	assert.Equal(t, "2025-03-15", r.End.Format("2006-01-02"))

	days := int(r.End.Truncate(24*time.Hour).Sub(r.Start)/(24*time.Hour)) + 1
	assert.Equal(t, 7, days)
}

func TestResolve_Lookback1Day(t *testing.T) {
	r, err := Resolve(report.LastNDays(1), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", r.Start.Format("2006-01-02"))
	assert.Equal(t, "2025-03-15", r.End.Format("2006-01-02"))
}

func TestResolve_LookbackCrossesMonthBoundary(t *testing.T) {
	now := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)
	r, err := Resolve(report.LastNDays(5), now)
	require.NoError(t, err)
	assert.Equal(t, "2025-02-26", r.Start.Format("2006-01-02"))
}

func TestResolve_MonthYear(t *testing.T) {
	r, err := Resolve(report.MonthYear(2, 2024), fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "2024-02-01", r.Start.Format("2006-01-02"))
	// Leap year February.
	assert.Equal(t, "2024-02-29", r.End.Format("2006-01-02"))
}

func TestResolve_Default_CurrentMonth(t *testing.T) {
	r, err := Resolve(report.DefaultSelector(), fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01", r.Start.Format("2006-01-02"))
	assert.Equal(t, "2025-03-31", r.End.Format("2006-01-02"))
}

func TestResolve_InvalidSelectors(t *testing.T) {
	_, err := Resolve(report.LastNDays(0), fixedNow)
	assert.Error(t, err)

	_, err = Resolve(report.MonthYear(13, 2025), fixedNow)
	assert.Error(t, err)

	_, err = Resolve(report.MonthYear(0, 2025), fixedNow)
	assert.Error(t, err)

	_, err = Resolve(report.DateSelector{Kind: "bogus"}, fixedNow)
	assert.Error(t, err)
}

func TestResolve_StartNeverAfterEnd(t *testing.T) {
	selectors := []report.DateSelector{
		report.ExplicitDate(fixedNow),
		report.LastNDays(30),
		report.MonthYear(12, 2024),
		report.DefaultSelector(),
	}
	for _, sel := range selectors {
		r, err := Resolve(sel, fixedNow)
		require.NoError(t, err)
		assert.False(t, r.Start.After(r.End), "selector %s produced start after end", sel.Kind)
	}
}
